package report

import (
	"github.com/ppiankov/neolex/internal/model"
)

// Compute builds one genre's metrics. The normalization is exact:
// confirmed / total unique tokens × 100, no smoothing, no intervals.
// A zero confirmed count is a valid result, not an error.
func Compute(genre model.Genre, totalUniqueTokens, confirmedCount int) model.GenreMetrics {
	m := model.GenreMetrics{
		Genre:                   genre,
		TotalUniqueTokens:       totalUniqueTokens,
		ConfirmedNeologismCount: confirmedCount,
	}

	if totalUniqueTokens > 0 {
		m.FrequencyPercent = float64(confirmedCount) / float64(totalUniqueTokens) * 100
	}

	return m
}
