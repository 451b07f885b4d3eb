package usecase

import (
	"context"
	"errors"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"
)

type draftUsecase struct {
	draftRepo domain.DraftRepository
}

func NewDraftUsecase(draftRepo domain.DraftRepository) domain.DraftUsecase {
	return &draftUsecase{draftRepo: draftRepo}
}

// SaveDraft persists an in-progress application. Attachments with empty or
// undecodable content are discarded before the save; a draft with nothing
// left to keep is rejected.
func (u *draftUsecase) SaveDraft(ctx context.Context, draft *domain.DraftApplication) (*domain.DraftApplication, error) {
	if draft.JobID == 0 {
		return nil, apperror.BadRequest("Job ID is required")
	}

	draft.Attachments = domain.FilterValid(draft.Attachments)
	if len(draft.Attachments) == 0 {
		return nil, apperror.BadRequest("At least one attachment is required")
	}

	if draft.ApplicantID == 0 {
		if profile := domain.ApplicantFromContext(ctx); profile != nil {
			draft.ApplicantID = profile.ID
		}
	}

	if err := u.draftRepo.Save(ctx, draft); err != nil {
		return nil, apperror.Internal(err)
	}
	return draft, nil
}

// LoadDraft retrieves the saved draft for a job. A miss is "start fresh"
// for the caller, surfaced as 404.
func (u *draftUsecase) LoadDraft(ctx context.Context, jobID int64) (*domain.DraftApplication, error) {
	if jobID == 0 {
		return nil, apperror.BadRequest("Job ID is required")
	}

	draft, err := u.draftRepo.Load(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No saved application found")
		}
		return nil, apperror.Internal(err)
	}
	return draft, nil
}

// AttachToDraft folds an encoded attachment into the job's draft so an
// upload survives a page reload. An attachment of the same type replaces
// the previous one; other types are kept.
func (u *draftUsecase) AttachToDraft(ctx context.Context, jobID int64, attachment domain.Attachment) (*domain.DraftApplication, error) {
	if jobID == 0 {
		return nil, apperror.BadRequest("Job ID is required")
	}

	draft, err := u.draftRepo.Load(ctx, jobID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		draft = &domain.DraftApplication{JobID: jobID, Fields: map[string]interface{}{}}
	}

	replaced := false
	for i, existing := range draft.Attachments {
		if existing.Type == attachment.Type {
			draft.Attachments[i] = attachment
			replaced = true
			break
		}
	}
	if !replaced {
		draft.Attachments = append(draft.Attachments, attachment)
	}

	if draft.ApplicantID == 0 {
		if profile := domain.ApplicantFromContext(ctx); profile != nil {
			draft.ApplicantID = profile.ID
		}
	}

	if err := u.draftRepo.Save(ctx, draft); err != nil {
		return nil, apperror.Internal(err)
	}
	return draft, nil
}
