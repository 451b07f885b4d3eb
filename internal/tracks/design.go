package tracks

import "go-apply-portal/internal/domain"

var designFields = []domain.Field{
	{Name: "name", Type: domain.FieldText, Label: "Name", Required: true},
	{Name: "email", Type: domain.FieldText, Label: "Email", Required: true},
	{Name: "phone", Type: domain.FieldText, Label: "Phone", Required: false},
	{Name: "linkedin", Type: domain.FieldText, Label: "LinkedIn Profile", Required: false},
	{Name: "relevantLinks", Type: domain.FieldText, Label: "Relevant Links", Required: false},
	{
		Name:     "college",
		Type:     domain.FieldSelect,
		Label:    "College",
		Options:  collegeOptions,
		Required: false,
	},
	{Name: "major", Type: domain.FieldText, Label: "What is your major?", Required: false},
	{Name: "graduationDate", Type: domain.FieldText, Label: "Expected graduation date", Required: false},
	{
		Name:     "projectExperience",
		Type:     domain.FieldMultiLineText,
		Label:    "Describe a significant design project you have worked on",
		Required: false,
	},
	{
		Name:       "impactStatement",
		Type:       domain.FieldMultiLineText,
		Label:      "What impact do you want to have on the world and why? Please limit your statement to 250 words maximum.",
		Required:   false,
		Validation: &domain.FieldValidation{MaxLength: 2000},
	},
	{
		Name:       "meaningfulExperience",
		Type:       domain.FieldMultiLineText,
		Label:      "Describe your most meaningful experience(s) and why they matter to you. Please limit your statement to 250 words maximum.",
		Required:   false,
		Validation: &domain.FieldValidation{MaxLength: 2000},
	},
	{
		Name:     "additionalContent",
		Type:     domain.FieldText,
		Label:    "[Optional] Feel free to submit an additional link to content you've created that is representative of who you are and what you care about. This can be your Twitter handle, portfolio, Youtube Channel, etc.",
		Required: false,
	},
	{Name: "resume", Type: domain.FieldFile, Label: "Resume", Required: false},
	{Name: "coverLetter", Type: domain.FieldFile, Label: "Cover Letter", Required: false},
}
