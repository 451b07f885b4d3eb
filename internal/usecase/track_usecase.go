package usecase

import (
	"context"

	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/tracks"
)

type trackUsecase struct{}

func NewTrackUsecase() domain.TrackUsecase {
	return &trackUsecase{}
}

// FieldsForTrack returns the field catalog for a track. Unknown tracks get
// an empty list so the form renders nothing instead of failing.
func (u *trackUsecase) FieldsForTrack(ctx context.Context, track string) []domain.Field {
	return tracks.FieldsForTrack(track)
}
