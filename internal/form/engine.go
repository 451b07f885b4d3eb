// Package form binds a track's field catalog to live values, validating each
// field as it changes and gating save/submit on the resulting state.
package form

import (
	"fmt"

	"go-apply-portal/internal/domain"
)

// FieldState is the per-field validation state
type FieldState int

const (
	Untouched FieldState = iota
	Valid
	Invalid
)

type fieldEntry struct {
	field   domain.Field
	state   FieldState
	value   string
	values  []string // checkbox-group selections
	fileKey string   // persisted content key for file fields
	errMsg  string
}

// Engine tracks field values for one form instance. Not safe for concurrent
// use; each request builds its own.
type Engine struct {
	order   []string
	entries map[string]*fieldEntry
	dirty   bool
}

// New builds an engine over an ordered field list. Every field starts
// Untouched.
func New(fields []domain.Field) *Engine {
	e := &Engine{
		entries: make(map[string]*fieldEntry, len(fields)),
	}
	for _, f := range fields {
		if _, exists := e.entries[f.Name]; exists {
			continue // names are unique per form; first definition wins
		}
		e.order = append(e.order, f.Name)
		e.entries[f.Name] = &fieldEntry{field: f}
	}
	return e
}

// SetValue updates a scalar field and revalidates that field only. Changes
// to other fields keep whatever state they already had.
func (e *Engine) SetValue(name, value string) {
	entry, ok := e.entries[name]
	if !ok {
		return
	}
	entry.value = value
	e.dirty = true
	e.validate(entry)
}

// SetChoices updates a checkbox-group field and revalidates it.
func (e *Engine) SetChoices(name string, values []string) {
	entry, ok := e.entries[name]
	if !ok {
		return
	}
	entry.values = values
	e.dirty = true
	e.validate(entry)
}

// SetFile updates a file field. A file change carries two pieces of
// information: the raw filename for display and the persisted content key
// used at submission. A nil key clears the field.
func (e *Engine) SetFile(name, filename, contentKey string) {
	entry, ok := e.entries[name]
	if !ok || entry.field.Type != domain.FieldFile {
		return
	}
	entry.value = filename
	entry.fileKey = contentKey
	e.dirty = true
	e.validate(entry)
}

// State returns the validation state of a field
func (e *Engine) State(name string) FieldState {
	if entry, ok := e.entries[name]; ok {
		return entry.state
	}
	return Untouched
}

// Error returns the current validation message for a field, if any
func (e *Engine) Error(name string) string {
	if entry, ok := e.entries[name]; ok {
		return entry.errMsg
	}
	return ""
}

// Dirty reports whether any field changed since the engine was built
func (e *Engine) Dirty() bool {
	return e.dirty
}

// CanSave gates the save action: only meaningful with unsaved changes
func (e *Engine) CanSave() bool {
	return e.dirty
}

// CanSubmit gates the submit action: no field may be Invalid
func (e *Engine) CanSubmit() bool {
	for _, name := range e.order {
		if e.entries[name].state == Invalid {
			return false
		}
	}
	return true
}

// ValidateAll forces validation of every field, including untouched ones,
// and returns the messages in field order. Used at submission time, where
// required fields that were never touched must still block.
func (e *Engine) ValidateAll() []string {
	var messages []string
	for _, name := range e.order {
		entry := e.entries[name]
		e.validate(entry)
		if entry.state == Invalid {
			messages = append(messages, entry.errMsg)
		}
	}
	return messages
}

// Values snapshots the current field values as a payload-ready map. File
// fields contribute their content key; untouched fields are omitted.
func (e *Engine) Values() map[string]interface{} {
	values := make(map[string]interface{})
	for _, name := range e.order {
		entry := e.entries[name]
		switch {
		case entry.field.Type == domain.FieldFile:
			if entry.fileKey != "" {
				values[name] = entry.fileKey
			}
		case entry.field.Type == domain.FieldCheckboxGroup:
			if len(entry.values) > 0 {
				values[name] = entry.values
			}
		default:
			if entry.value != "" {
				values[name] = entry.value
			}
		}
	}
	return values
}

func (e *Engine) validate(entry *fieldEntry) {
	entry.errMsg = ""

	empty := entry.value == "" && len(entry.values) == 0
	if entry.field.Type == domain.FieldFile {
		empty = entry.fileKey == ""
	}

	if entry.field.Required && empty {
		entry.state = Invalid
		entry.errMsg = fmt.Sprintf("%s is required", entry.field.Label)
		return
	}
	if empty {
		entry.state = Valid
		return
	}

	if entry.field.IsChoice() && !e.validChoices(entry) {
		entry.state = Invalid
		entry.errMsg = fmt.Sprintf("%s has an unsupported value", entry.field.Label)
		return
	}

	if v := entry.field.Validation; v != nil && entry.field.Type != domain.FieldFile {
		if v.MinLength > 0 && len(entry.value) < v.MinLength {
			entry.state = Invalid
			entry.errMsg = fmt.Sprintf("%s must be at least %d characters", entry.field.Label, v.MinLength)
			return
		}
		if v.MaxLength > 0 && len(entry.value) > v.MaxLength {
			entry.state = Invalid
			entry.errMsg = fmt.Sprintf("%s must be at most %d characters", entry.field.Label, v.MaxLength)
			return
		}
		if v.Pattern != nil && !v.Pattern.MatchString(entry.value) {
			entry.state = Invalid
			entry.errMsg = fmt.Sprintf("%s is invalid", entry.field.Label)
			return
		}
		if v.Custom != nil {
			if ok, msg := v.Custom(entry.value); !ok {
				entry.state = Invalid
				if msg == "" {
					msg = fmt.Sprintf("%s is invalid", entry.field.Label)
				}
				entry.errMsg = msg
				return
			}
		}
	}

	entry.state = Valid
}

func (e *Engine) validChoices(entry *fieldEntry) bool {
	allowed := make(map[string]bool, len(entry.field.Options))
	for _, opt := range entry.field.Options {
		allowed[opt.Value] = true
	}
	if entry.field.Type == domain.FieldCheckboxGroup {
		for _, v := range entry.values {
			if !allowed[v] {
				return false
			}
		}
		return true
	}
	return allowed[entry.value]
}
