package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ppiankov/neolex/internal/model"
)

func TestCompute_RomanceStudyFigures(t *testing.T) {
	m := Compute(model.GenreRomance, 14181, 12)

	if math.Abs(m.FrequencyPercent-0.0846) > 0.0001 {
		t.Errorf("Romance frequency = %.4f%%, want ≈ 0.0846%%", m.FrequencyPercent)
	}
}

func TestCompute_SciFiStudyFigures(t *testing.T) {
	m := Compute(model.GenreSciFi, 13502, 59)

	if math.Abs(m.FrequencyPercent-0.4370) > 0.0001 {
		t.Errorf("SciFi frequency = %.4f%%, want ≈ 0.4370%%", m.FrequencyPercent)
	}
}

func TestCompute_ExactNormalization(t *testing.T) {
	cases := []struct {
		total, confirmed int
	}{
		{100, 1},
		{14181, 12},
		{13502, 59},
		{3, 3},
	}

	for _, tc := range cases {
		m := Compute(model.GenreSciFi, tc.total, tc.confirmed)
		want := float64(tc.confirmed) / float64(tc.total) * 100
		if m.FrequencyPercent != want {
			t.Errorf("Compute(%d, %d) = %v, want exact %v", tc.total, tc.confirmed, m.FrequencyPercent, want)
		}
	}
}

func TestCompute_ZeroConfirmedIsValid(t *testing.T) {
	m := Compute(model.GenreRomance, 5000, 0)

	if m.FrequencyPercent != 0 {
		t.Errorf("Expected 0%%, got %v", m.FrequencyPercent)
	}
}

func TestCompute_ZeroTotalAvoidsDivisionByZero(t *testing.T) {
	m := Compute(model.GenreRomance, 0, 0)

	if m.FrequencyPercent != 0 {
		t.Errorf("Expected 0%% for empty genre, got %v", m.FrequencyPercent)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []model.GenreMetrics{
		Compute(model.GenreSciFi, 13502, 59),
		Compute(model.GenreRomance, 14181, 12),
	})

	out := buf.String()
	if !strings.Contains(out, "Science Fiction") || !strings.Contains(out, "Romance") {
		t.Errorf("Expected both genres in table:\n%s", out)
	}
	if !strings.Contains(out, "0.4370%") {
		t.Errorf("Expected formatted scifi frequency in table:\n%s", out)
	}
	if !strings.Contains(out, "0.0846%") {
		t.Errorf("Expected formatted romance frequency in table:\n%s", out)
	}
}
