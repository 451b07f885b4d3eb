// Package tracks holds the static field catalogs for each application track.
// Catalogs are defined at build time and never mutated.
package tracks

import (
	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/logger"
)

// FieldsForTrack returns the ordered field list for an application track.
// Unknown tracks yield an empty list and a diagnostic, never an error.
func FieldsForTrack(track string) []domain.Field {
	switch track {
	case domain.TrackDesign:
		return designFields
	case domain.TrackEngineering:
		return engineeringFields
	case domain.TrackProduct:
		return productFields
	case domain.TrackJob:
		return jobFields
	default:
		logger.Log.Warn("Unknown application track", "track", track)
		return []domain.Field{}
	}
}

// opts builds an option list where each value doubles as its label
func opts(values ...string) []domain.Option {
	options := make([]domain.Option, 0, len(values))
	for _, v := range values {
		options = append(options, domain.Option{Value: v, Label: v})
	}
	return options
}
