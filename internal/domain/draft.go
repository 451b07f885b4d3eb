package domain

import (
	"context"
	"time"
)

// DraftApplication is a persisted partial application, keyed by job ID.
// One draft per job is meaningfully supported; saves overwrite in place.
type DraftApplication struct {
	ID          string                 `json:"id,omitempty"`
	JobID       int64                  `json:"job_id"`
	ApplicantID int64                  `json:"applicant_id,omitempty"`
	Fields      map[string]interface{} `json:"fields,omitempty"`
	Attachments []Attachment           `json:"attachments"`
	SavedAt     time.Time              `json:"saved_at,omitempty"`
}

// DraftRepository defines durable draft persistence
type DraftRepository interface {
	// Save upserts the draft for its job ID
	Save(ctx context.Context, draft *DraftApplication) error
	// Load returns the draft for a job ID, or ErrNotFound
	Load(ctx context.Context, jobID int64) (*DraftApplication, error)
}

// DraftUsecase defines business logic for draft persistence
type DraftUsecase interface {
	SaveDraft(ctx context.Context, draft *DraftApplication) (*DraftApplication, error)
	LoadDraft(ctx context.Context, jobID int64) (*DraftApplication, error)
	// AttachToDraft merges a freshly encoded attachment into the draft for
	// a job, creating the draft if none exists yet
	AttachToDraft(ctx context.Context, jobID int64, attachment Attachment) (*DraftApplication, error)
}
