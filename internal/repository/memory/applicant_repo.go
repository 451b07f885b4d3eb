package memory

import (
	"context"

	"go-apply-portal/internal/domain"
)

type applicantRepository struct {
	profiles  map[int64]domain.ApplicantProfile
	defaultID int64
}

// NewApplicantRepository returns a repository seeded with the portal's
// applicant profiles. The default profile is used when no session names an
// applicant.
func NewApplicantRepository(defaultID int64) domain.ApplicantRepository {
	profiles := make(map[int64]domain.ApplicantProfile, len(seedProfiles))
	for _, p := range seedProfiles {
		profiles[p.ID] = p
	}
	if _, ok := profiles[defaultID]; !ok {
		defaultID = seedProfiles[0].ID
	}
	return &applicantRepository{
		profiles:  profiles,
		defaultID: defaultID,
	}
}

func (r *applicantRepository) GetByID(ctx context.Context, id int64) (*domain.ApplicantProfile, error) {
	if p, ok := r.profiles[id]; ok {
		found := p
		return &found, nil
	}
	return nil, domain.ErrNotFound
}

func (r *applicantRepository) Default(ctx context.Context) (*domain.ApplicantProfile, error) {
	p := r.profiles[r.defaultID]
	return &p, nil
}

var seedProfiles = []domain.ApplicantProfile{
	{
		ID:        34555007007,
		FirstName: "John",
		LastName:  "Locke",
		Company:   "The Tustin Box Company",
		Title:     "Customer Success Representative",
		IsPrivate: false,
		PhoneNumbers: []domain.TypedValue{
			{Value: "555-1212", Type: "mobile"},
		},
		Addresses: []domain.TypedValue{
			{Value: "123 Fake St.", Type: "home"},
		},
		EmailAddresses: []domain.TypedValue{
			{Value: "john.locke+work@example.com", Type: "work"},
			{Value: "john.locke@example.com", Type: "personal"},
		},
		WebsiteAddresses: []domain.TypedValue{
			{Value: "johnlocke.example.com", Type: "personal"},
		},
		SocialMediaAddresses: []domain.SocialMediaAddress{
			{Value: "linkedin.example.com/john.locke"},
			{Value: "@johnlocke"},
		},
		Employments: []domain.Employment{
			{
				CompanyName: "Greenhouse",
				Title:       "Engineer",
				StartDate:   "2012-08-15T00:00:00.000Z",
				EndDate:     "2016-05-15T00:00:00.000Z",
			},
		},
	},
}
