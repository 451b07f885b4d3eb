package form_test

import (
	"regexp"
	"strings"
	"testing"

	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/form"

	"github.com/stretchr/testify/assert"
)

func testFields() []domain.Field {
	return []domain.Field{
		{Name: "name", Type: domain.FieldText, Label: "Name", Required: true},
		{
			Name:       "email",
			Type:       domain.FieldText,
			Label:      "Email",
			Required:   true,
			Validation: &domain.FieldValidation{Pattern: regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)},
		},
		{
			Name:       "bio",
			Type:       domain.FieldMultiLineText,
			Label:      "Bio",
			Validation: &domain.FieldValidation{MaxLength: 20},
		},
		{
			Name:     "team",
			Type:     domain.FieldSelect,
			Label:    "Team",
			Options:  []domain.Option{{Value: "infra", Label: "Infra"}, {Value: "product", Label: "Product"}},
			Required: true,
		},
		{
			Name:    "interests",
			Type:    domain.FieldCheckboxGroup,
			Label:   "Interests",
			Options: []domain.Option{{Value: "go", Label: "Go"}, {Value: "rust", Label: "Rust"}},
		},
		{Name: "resume", Type: domain.FieldFile, Label: "Resume", Required: true},
	}
}

func TestEngineFieldStates(t *testing.T) {
	e := form.New(testFields())

	t.Run("Fields start untouched", func(t *testing.T) {
		assert.Equal(t, form.Untouched, e.State("name"))
		assert.False(t, e.Dirty())
		assert.True(t, e.CanSubmit()) // nothing Invalid yet
	})

	t.Run("Setting a value validates only that field", func(t *testing.T) {
		e.SetValue("name", "Ada Lovelace")
		assert.Equal(t, form.Valid, e.State("name"))
		assert.Equal(t, form.Untouched, e.State("email"))
		assert.True(t, e.Dirty())
	})

	t.Run("Clearing a required field flags it", func(t *testing.T) {
		e.SetValue("name", "")
		assert.Equal(t, form.Invalid, e.State("name"))
		assert.Equal(t, "Name is required", e.Error("name"))
		assert.False(t, e.CanSubmit())
	})
}

func TestEngineValidationRules(t *testing.T) {
	t.Run("Pattern mismatch", func(t *testing.T) {
		e := form.New(testFields())
		e.SetValue("email", "not-an-email")
		assert.Equal(t, form.Invalid, e.State("email"))
		assert.Equal(t, "Email is invalid", e.Error("email"))

		e.SetValue("email", "ada@example.com")
		assert.Equal(t, form.Valid, e.State("email"))
	})

	t.Run("Max length", func(t *testing.T) {
		e := form.New(testFields())
		e.SetValue("bio", strings.Repeat("x", 21))
		assert.Equal(t, form.Invalid, e.State("bio"))
		assert.Equal(t, "Bio must be at most 20 characters", e.Error("bio"))
	})

	t.Run("Select rejects values outside the option set", func(t *testing.T) {
		e := form.New(testFields())
		e.SetValue("team", "marketing")
		assert.Equal(t, form.Invalid, e.State("team"))

		e.SetValue("team", "infra")
		assert.Equal(t, form.Valid, e.State("team"))
	})

	t.Run("Checkbox group rejects unknown selections", func(t *testing.T) {
		e := form.New(testFields())
		e.SetChoices("interests", []string{"go", "cobol"})
		assert.Equal(t, form.Invalid, e.State("interests"))

		e.SetChoices("interests", []string{"go"})
		assert.Equal(t, form.Valid, e.State("interests"))
	})

	t.Run("Optional empty field is valid", func(t *testing.T) {
		e := form.New(testFields())
		e.SetValue("bio", "short")
		e.SetValue("bio", "")
		assert.Equal(t, form.Valid, e.State("bio"))
	})

	t.Run("Unknown field names are ignored", func(t *testing.T) {
		e := form.New(testFields())
		e.SetValue("nonexistent", "whatever")
		assert.Equal(t, form.Untouched, e.State("nonexistent"))
	})
}

func TestEngineFileFields(t *testing.T) {
	e := form.New(testFields())

	e.SetFile("resume", "cv.pdf", "resume-key")
	assert.Equal(t, form.Valid, e.State("resume"))

	// Clearing the content key makes a required file field invalid again
	e.SetFile("resume", "", "")
	assert.Equal(t, form.Invalid, e.State("resume"))
	assert.Equal(t, "Resume is required", e.Error("resume"))

	// SetFile on a non-file field is a no-op
	e.SetFile("name", "cv.pdf", "key")
	assert.Equal(t, form.Untouched, e.State("name"))
}

func TestEngineValidateAll(t *testing.T) {
	e := form.New(testFields())
	e.SetValue("name", "Ada Lovelace")

	// Untouched required fields must still block submission
	msgs := e.ValidateAll()
	assert.Equal(t, []string{"Email is required", "Team is required", "Resume is required"}, msgs)
	assert.False(t, e.CanSubmit())

	e.SetValue("email", "ada@example.com")
	e.SetValue("team", "infra")
	e.SetFile("resume", "cv.pdf", "resume-key")
	assert.Empty(t, e.ValidateAll())
	assert.True(t, e.CanSubmit())
}

func TestEngineValues(t *testing.T) {
	e := form.New(testFields())
	e.SetValue("name", "Ada Lovelace")
	e.SetChoices("interests", []string{"go"})
	e.SetFile("resume", "cv.pdf", "resume-key")

	values := e.Values()
	assert.Equal(t, "Ada Lovelace", values["name"])
	assert.Equal(t, []string{"go"}, values["interests"])
	assert.Equal(t, "resume-key", values["resume"]) // content key, not filename
	assert.NotContains(t, values, "email")          // untouched fields omitted
}
