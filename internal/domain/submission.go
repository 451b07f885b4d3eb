package domain

import "context"

// SubmissionState tracks one submission attempt through the pipeline
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateConfirming SubmissionState = "confirming"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// SubmissionPayload is the final package sent to the ATS: the applicant's
// identity fields plus the validated form values and attachments.
type SubmissionPayload struct {
	JobID                int64                  `json:"job_id"`
	FirstName            string                 `json:"first_name,omitempty"`
	LastName             string                 `json:"last_name,omitempty"`
	PhoneNumbers         []TypedValue           `json:"phone_numbers,omitempty"`
	Addresses            []TypedValue           `json:"addresses,omitempty"`
	EmailAddresses       []TypedValue           `json:"email_addresses,omitempty"`
	WebsiteAddresses     []TypedValue           `json:"website_addresses,omitempty"`
	SocialMediaAddresses []SocialMediaAddress   `json:"social_media_addresses,omitempty"`
	FieldValues          map[string]interface{} `json:"field_values,omitempty"`
	Attachments          []Attachment           `json:"attachments"`
}

// ATSApplication is the created-application representation the ATS returns,
// passed through without reinterpretation
type ATSApplication map[string]interface{}

// ATSGateway is a stateless translator between the portal's payload shape
// and the external ATS API
type ATSGateway interface {
	SubmitApplication(ctx context.Context, candidateID int64, payload *SubmissionPayload) (ATSApplication, error)
}

// SubmitRequest carries everything one submission attempt needs
type SubmitRequest struct {
	JobID       int64
	ConfirmName string
	Values      map[string]string
}

// SubmissionUsecase drives the full pipeline: validate, confirm, submit
type SubmissionUsecase interface {
	Submit(ctx context.Context, profile *ApplicantProfile, req *SubmitRequest) (ATSApplication, error)
}
