package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// JobListing is one opening the portal accepts applications for
type JobListing struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Track       string `json:"track"`
}

// JobRepository defines data access for job listings
type JobRepository interface {
	List(ctx context.Context) ([]JobListing, error)
	GetByID(ctx context.Context, id int64) (*JobListing, error)
}

// JobUsecase defines business logic for job listings
type JobUsecase interface {
	ListJobs(ctx context.Context) ([]JobListing, error)
	GetJobDetails(ctx context.Context, id int64) (*JobListing, error)
}
