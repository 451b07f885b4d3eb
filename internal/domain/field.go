package domain

import (
	"context"
	"regexp"
)

// Application track constants
const (
	TrackEngineering = "Engineering"
	TrackDesign      = "Design"
	TrackProduct     = "Product"
	TrackJob         = "job"
)

// FieldType enumerates the supported form input kinds
type FieldType string

const (
	FieldText          FieldType = "text"
	FieldMultiLineText FieldType = "multi-line-text"
	FieldSelect        FieldType = "select"
	FieldRadio         FieldType = "radio"
	FieldCheckboxGroup FieldType = "checkbox-group"
	FieldFile          FieldType = "file"
)

// Option is one selectable value/label pair for choice fields
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldValidation holds optional per-field constraints beyond Required.
// Custom returns ok=false with a message when the value is rejected.
type FieldValidation struct {
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Custom    func(value string) (ok bool, message string)
}

// Field describes one form input for an application track.
// Definitions are static per track and never mutated at runtime.
type Field struct {
	Name       string           `json:"name"`
	Type       FieldType        `json:"type"`
	Label      string           `json:"label"`
	Required   bool             `json:"required"`
	Options    []Option         `json:"options,omitempty"`
	Validation *FieldValidation `json:"-"`
}

// IsChoice reports whether the field selects from a fixed option set
func (f Field) IsChoice() bool {
	switch f.Type {
	case FieldSelect, FieldRadio, FieldCheckboxGroup:
		return true
	}
	return false
}

// TrackUsecase exposes the per-track field catalog
type TrackUsecase interface {
	FieldsForTrack(ctx context.Context, track string) []Field
}
