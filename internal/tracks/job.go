package tracks

import "go-apply-portal/internal/domain"

// jobFields mirrors the ATS candidate shape for generic job postings
var jobFields = []domain.Field{
	{Name: "first_name", Type: domain.FieldText, Label: "First Name", Required: true},
	{Name: "last_name", Type: domain.FieldText, Label: "Last Name", Required: true},
	{Name: "email_value", Type: domain.FieldText, Label: "Email", Required: true},
	{Name: "phone_value", Type: domain.FieldText, Label: "Phone", Required: false},
	{Name: "address_value", Type: domain.FieldText, Label: "Address", Required: false},
	{Name: "website_value", Type: domain.FieldText, Label: "Website", Required: false},
	{Name: "social_media", Type: domain.FieldText, Label: "Social Media", Required: false},
	{Name: "resume", Type: domain.FieldFile, Label: "Resume", Required: false},
	{Name: "coverLetter", Type: domain.FieldFile, Label: "Cover Letter", Required: false},
	{Name: "video", Type: domain.FieldFile, Label: "Video Introduction", Required: false},
}
