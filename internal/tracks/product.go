package tracks

import "go-apply-portal/internal/domain"

var productFields = []domain.Field{
	{Name: "name", Type: domain.FieldText, Label: "Name", Required: true},
	{Name: "email", Type: domain.FieldText, Label: "Email", Required: true},
	{Name: "resume", Type: domain.FieldFile, Label: "Resume", Required: true},
	{Name: "phone", Type: domain.FieldText, Label: "Phone", Required: false},
	{Name: "coverLetter", Type: domain.FieldFile, Label: "Cover Letter", Required: false},
	{Name: "relevantLinks", Type: domain.FieldText, Label: "Relevant Links", Required: false},
	{Name: "college", Type: domain.FieldText, Label: "College", Required: false},
	{Name: "currentCompany", Type: domain.FieldText, Label: "What company are you currently working at?", Required: false},
	{Name: "currentRole", Type: domain.FieldText, Label: "What is your current role?", Required: false},
	{
		Name:     "idealCompanySize",
		Type:     domain.FieldCheckboxGroup,
		Label:    "What is the ideal size of company you'd like to work at?",
		Options:  opts("500+", "201-500", "101-200", "51-100", "1-50"),
		Required: false,
	},
	{
		Name:     "workAuthorization",
		Type:     domain.FieldRadio,
		Label:    "Are you authorized to work in the United States?",
		Options:  opts("Yes", "No"),
		Required: false,
	},
}
