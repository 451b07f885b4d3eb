package tracks

import "go-apply-portal/internal/domain"

var engineeringFields = []domain.Field{
	{Name: "name", Type: domain.FieldText, Label: "Name", Required: true},
	{Name: "email", Type: domain.FieldText, Label: "Email", Required: true},
	{Name: "phone", Type: domain.FieldText, Label: "Phone", Required: false},
	{Name: "linkedin", Type: domain.FieldText, Label: "LinkedIn Profile", Required: false},
	{Name: "github", Type: domain.FieldText, Label: "GitHub Profile", Required: false},
	{
		Name:     "relevantLinks",
		Type:     domain.FieldText,
		Label:    "(Optional) Feel free to submit an additional link to content you've created that is representative of who you are and what you care about. This can be your portfolio, X Handle, Youtube Channel, etc.",
		Required: false,
	},
	{
		Name:     "college",
		Type:     domain.FieldSelect,
		Label:    "College",
		Options:  collegeOptions,
		Required: false,
	},
	{Name: "major", Type: domain.FieldText, Label: "What is your major?", Required: false},
	{
		Name:     "graduationDate",
		Type:     domain.FieldSelect,
		Label:    "Expected graduation date",
		Options:  graduationYearOptions,
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
	{Name: "resume", Type: domain.FieldFile, Label: "Resume", Required: false},
	{Name: "video", Type: domain.FieldFile, Label: "Video Introduction", Required: false},
}

var collegeOptions = opts(
	"Carnegie Mellon University",
	"California Institute of Technology",
	"Cornell University",
	"Georgia Institute of Technology",
	"Harvard University",
	"Massachusetts Institute of Technology",
	"Princeton University",
	"Rhode Island School of Design",
	"Stanford University",
	"University of California, Berkeley",
	"University of California, Los Angeles",
	"University of Illinois Urbana-Champaign",
	"University of Michigan",
	"University of Texas at Austin",
	"University of Washington",
	"University of Waterloo",
	"Other",
)

var graduationYearOptions = opts(
	"2025", "2026", "2027", "2028", "2029", "2030",
)
