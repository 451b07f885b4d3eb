package usecase

import (
	"context"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobListing, error) {
	return u.jobRepo.List(ctx)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobListing, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}
