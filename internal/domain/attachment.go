package domain

import (
	"encoding/base64"
	"strings"
)

// Attachment kind constants (the declared type of an uploaded file)
const (
	AttachmentResume      = "resume"
	AttachmentCoverLetter = "cover_letter"
	AttachmentVideo       = "video"
)

// Attachment is a file contributed to an application, held as a base64
// payload plus metadata until submitted or replaced.
type Attachment struct {
	Filename    string `json:"filename"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// NormalizeContent strips a data-URL prefix ("data:...;base64,") when the
// content arrives pre-encoded from a browser FileReader.
func (a *Attachment) NormalizeContent() {
	if !strings.HasPrefix(a.Content, "data:") {
		return
	}
	if idx := strings.IndexByte(a.Content, ','); idx >= 0 {
		a.Content = a.Content[idx+1:]
	}
}

// Valid reports whether the content decodes to a non-empty byte sequence.
// Invalid attachments must never reach a submission payload.
func (a Attachment) Valid() bool {
	if a.Content == "" {
		return false
	}
	decoded, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		return false
	}
	return len(decoded) > 0
}

// FilterValid returns only the attachments whose content decodes to a
// non-empty byte sequence, preserving order.
func FilterValid(attachments []Attachment) []Attachment {
	valid := make([]Attachment, 0, len(attachments))
	for _, a := range attachments {
		a.NormalizeContent()
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid
}
