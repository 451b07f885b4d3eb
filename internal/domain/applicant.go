package domain

import (
	"context"
	"strings"
)

// TypedValue is a value/type pair the ATS uses for contact details
// (e.g. {"555-1212", "mobile"})
type TypedValue struct {
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// SocialMediaAddress carries a bare link or handle
type SocialMediaAddress struct {
	Value string `json:"value"`
}

// Employment is one entry in an applicant's work history
type Employment struct {
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
}

// ApplicantProfile mirrors the ATS candidate shape. It identifies who is
// acting in a request; handlers receive it through the request context
// rather than a process-wide current user.
type ApplicantProfile struct {
	ID                   int64                `json:"id"`
	FirstName            string               `json:"first_name"`
	LastName             string               `json:"last_name"`
	Company              string               `json:"company,omitempty"`
	Title                string               `json:"title,omitempty"`
	IsPrivate            bool                 `json:"is_private"`
	PhoneNumbers         []TypedValue         `json:"phone_numbers,omitempty"`
	Addresses            []TypedValue         `json:"addresses,omitempty"`
	EmailAddresses       []TypedValue         `json:"email_addresses,omitempty"`
	WebsiteAddresses     []TypedValue         `json:"website_addresses,omitempty"`
	SocialMediaAddresses []SocialMediaAddress `json:"social_media_addresses,omitempty"`
	Employments          []Employment         `json:"employments,omitempty"`
	Tags                 []string             `json:"tags,omitempty"`
}

// FullName returns the display name used by the submission confirmation gate
func (p *ApplicantProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ApplicantRepository defines access to applicant profiles
type ApplicantRepository interface {
	GetByID(ctx context.Context, id int64) (*ApplicantProfile, error)
	// Default returns the profile used when no session names an applicant
	Default(ctx context.Context) (*ApplicantProfile, error)
}

// ApplicantFromContext extracts the acting profile placed in the context by
// the identity middleware. Returns nil when identity resolution never ran.
func ApplicantFromContext(ctx context.Context) *ApplicantProfile {
	profile, _ := ctx.Value(KeyApplicant).(*ApplicantProfile)
	return profile
}
