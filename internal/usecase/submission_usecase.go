package usecase

import (
	"context"
	"errors"
	"strings"

	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/form"
	"go-apply-portal/internal/tracks"
	"go-apply-portal/pkg/apperror"
)

// Pipeline carries one submission attempt through its states:
// Idle -> Confirming -> Submitting -> Succeeded | Failed.
// A failed attempt keeps its payload so the applicant can re-confirm and
// retry without re-entering anything; nothing retries automatically.
type Pipeline struct {
	state   domain.SubmissionState
	gateway domain.ATSGateway
	profile *domain.ApplicantProfile
	jobID   int64
	engine  *form.Engine
	payload *domain.SubmissionPayload
}

func NewPipeline(gateway domain.ATSGateway, profile *domain.ApplicantProfile, jobID int64, engine *form.Engine) *Pipeline {
	return &Pipeline{
		state:   domain.StateIdle,
		gateway: gateway,
		profile: profile,
		jobID:   jobID,
		engine:  engine,
	}
}

func (p *Pipeline) State() domain.SubmissionState {
	return p.state
}

// Begin validates the form and assembles the payload, moving the pipeline
// to Confirming. Validation failures leave the state untouched.
func (p *Pipeline) Begin(attachments []domain.Attachment) error {
	if p.state != domain.StateIdle {
		return apperror.BadRequest("Submission already in progress")
	}

	attachments = domain.FilterValid(attachments)
	if len(attachments) == 0 {
		return apperror.BadRequest("At least one attachment is required")
	}

	if msgs := p.engine.ValidateAll(); len(msgs) > 0 {
		return apperror.BadRequest(msgs[0])
	}

	p.payload = &domain.SubmissionPayload{
		JobID:                p.jobID,
		FirstName:            p.profile.FirstName,
		LastName:             p.profile.LastName,
		PhoneNumbers:         p.profile.PhoneNumbers,
		Addresses:            p.profile.Addresses,
		EmailAddresses:       p.profile.EmailAddresses,
		WebsiteAddresses:     p.profile.WebsiteAddresses,
		SocialMediaAddresses: p.profile.SocialMediaAddresses,
		FieldValues:          p.engine.Values(),
		Attachments:          attachments,
	}
	p.state = domain.StateConfirming
	return nil
}

// Confirm checks the typed name against the applicant's full name and, on a
// match, submits through the gateway. A mismatch keeps the pipeline at its
// current retryable state; a gateway failure lands in Failed with the
// payload preserved.
func (p *Pipeline) Confirm(ctx context.Context, typedName string) (domain.ATSApplication, error) {
	if p.state != domain.StateConfirming && p.state != domain.StateFailed {
		return nil, apperror.BadRequest("No submission awaiting confirmation")
	}

	if !NameMatches(typedName, p.profile.FullName()) {
		return nil, apperror.BadRequest("The name you entered does not match your profile name")
	}

	p.state = domain.StateSubmitting
	application, err := p.gateway.SubmitApplication(ctx, p.profile.ID, p.payload)
	if err != nil {
		p.state = domain.StateFailed
		return nil, err
	}

	p.state = domain.StateSucceeded
	return application, nil
}

// NameMatches compares a typed confirmation name against the expected one,
// ignoring surrounding whitespace and letter case. Near-misses pass; a
// substantive mismatch blocks.
func NameMatches(typed, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(expected))
}

type submissionUsecase struct {
	gateway   domain.ATSGateway
	jobRepo   domain.JobRepository
	draftRepo domain.DraftRepository
}

func NewSubmissionUsecase(gateway domain.ATSGateway, jobRepo domain.JobRepository, draftRepo domain.DraftRepository) domain.SubmissionUsecase {
	return &submissionUsecase{
		gateway:   gateway,
		jobRepo:   jobRepo,
		draftRepo: draftRepo,
	}
}

// Submit drives a full pipeline run for one request: resolve the job's
// track, bind the submitted values, pull attachments from the saved draft,
// then validate, confirm and call the ATS.
func (u *submissionUsecase) Submit(ctx context.Context, profile *domain.ApplicantProfile, req *domain.SubmitRequest) (domain.ATSApplication, error) {
	if profile == nil {
		return nil, apperror.Unauthorized("Applicant identity is required")
	}

	job, err := u.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	engine := form.New(tracks.FieldsForTrack(job.Track))
	for name, value := range req.Values {
		engine.SetValue(name, value)
	}

	var attachments []domain.Attachment
	draft, err := u.draftRepo.Load(ctx, req.JobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if draft != nil {
		attachments = domain.FilterValid(draft.Attachments)
		for _, a := range attachments {
			engine.SetFile(fieldNameForKind(a.Type), a.Filename, a.Filename)
		}
	}

	pipeline := NewPipeline(u.gateway, profile, req.JobID, engine)
	if err := pipeline.Begin(attachments); err != nil {
		return nil, err
	}
	return pipeline.Confirm(ctx, req.ConfirmName)
}

func fieldNameForKind(kind string) string {
	switch kind {
	case domain.AttachmentCoverLetter:
		return "coverLetter"
	case domain.AttachmentVideo:
		return "video"
	default:
		return "resume"
	}
}
