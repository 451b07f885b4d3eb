// Package memory holds the static reference data the portal serves: the job
// listings applicants browse and the applicant profiles it acts for.
package memory

import (
	"context"

	"go-apply-portal/internal/domain"
)

type jobRepository struct {
	jobs []domain.JobListing
}

// NewJobRepository returns a repository over the portal's openings
func NewJobRepository() domain.JobRepository {
	return &jobRepository{jobs: jobListings}
}

func (r *jobRepository) List(ctx context.Context) ([]domain.JobListing, error) {
	out := make([]domain.JobListing, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.JobListing, error) {
	for _, job := range r.jobs {
		if job.ID == id {
			found := job
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

var jobListings = []domain.JobListing{
	{
		ID:          4285367007,
		Title:       "Founding Engineer",
		Company:     "Paraform",
		Location:    "San Francisco",
		Type:        "Full-time",
		Description: "Join as a founding engineer and shape the product from the ground up.",
		Track:       domain.TrackJob,
	},
	{
		ID:          2,
		Title:       "Backend Engineer",
		Company:     "DataSystems",
		Location:    "New York, NY",
		Type:        "Full-time",
		Description: "Join our backend team to develop scalable APIs and microservices using Node.js and PostgreSQL.",
		Track:       domain.TrackEngineering,
	},
	{
		ID:          3,
		Title:       "UX Designer",
		Company:     "DesignHub",
		Location:    "San Francisco, CA",
		Type:        "Contract",
		Description: "We are looking for a talented UX Designer to create intuitive and visually appealing user interfaces for our clients.",
		Track:       domain.TrackDesign,
	},
	{
		ID:          4,
		Title:       "DevOps Specialist",
		Company:     "CloudOps",
		Location:    "Remote",
		Type:        "Part-time",
		Description: "Help us streamline our deployment processes and manage cloud infrastructure using AWS and Kubernetes.",
		Track:       domain.TrackEngineering,
	},
	{
		ID:          5,
		Title:       "Data Scientist",
		Company:     "AI Innovations",
		Location:    "Boston, MA",
		Type:        "Full-time",
		Description: "Join our data science team to develop machine learning models and analyze large datasets using Python and TensorFlow.",
		Track:       domain.TrackProduct,
	},
}
