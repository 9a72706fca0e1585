package gaps

import (
	"strings"
	"testing"
)

func points(scores ...int) []ScorePoint {
	ps := make([]ScorePoint, 0, len(scores))
	for _, s := range scores {
		ps = append(ps, ScorePoint{Score: s})
	}
	return ps
}

func TestPredictFutureGapsShortHistory(t *testing.T) {
	t.Parallel()

	for _, history := range [][]ScorePoint{nil, points(50), points(50, 55)} {
		if got := PredictFutureGaps(history, "intermediate"); len(got) != 0 {
			t.Fatalf("expected no predictions for %d points, got %v", len(history), got)
		}
	}
}

func TestPredictFutureGapsStagnation(t *testing.T) {
	t.Parallel()

	got := PredictFutureGaps(points(55, 58, 56), "intermediate")
	if len(got) != 1 {
		t.Fatalf("expected exactly one warning, got %v", got)
	}
	if !strings.Contains(got[0], "intervention") {
		t.Fatalf("expected stagnation warning, got %q", got[0])
	}
}

func TestPredictFutureGapsDecline(t *testing.T) {
	t.Parallel()

	got := PredictFutureGaps(points(80, 70, 62), "advanced")
	if len(got) != 1 {
		t.Fatalf("expected exactly one warning, got %v", got)
	}
	if !strings.Contains(got[0], "decreasing") {
		t.Fatalf("expected decline warning, got %q", got[0])
	}
}

func TestPredictFutureGapsStagnationAndDecline(t *testing.T) {
	t.Parallel()

	got := PredictFutureGaps(points(58, 56, 55), "basic")
	if len(got) != 2 {
		t.Fatalf("expected both warnings, got %v", got)
	}
}

func TestPredictFutureGapsHealthyProgress(t *testing.T) {
	t.Parallel()

	if got := PredictFutureGaps(points(60, 70, 80), "intermediate"); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
}

func TestPredictFutureGapsUsesTrailingWindow(t *testing.T) {
	t.Parallel()

	// Early scores are irrelevant; only the last three count.
	got := PredictFutureGaps(points(10, 90, 55, 58, 56), "intermediate")
	if len(got) != 1 || !strings.Contains(got[0], "intervention") {
		t.Fatalf("expected stagnation from trailing window, got %v", got)
	}
}

func TestPredictFutureGapsStagnationRequiresLowLatest(t *testing.T) {
	t.Parallel()

	// Flat but high scores are fine.
	if got := PredictFutureGaps(points(88, 90, 89), "advanced"); len(got) != 0 {
		t.Fatalf("expected no warnings for flat high scores, got %v", got)
	}
}
