package gaps

import "time"

// ScorePoint is one assessment result in a student's progress history.
type ScorePoint struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

const (
	trendWindow      = 3
	stagnationSpread = 5
	stagnationScore  = 60
)

// PredictFutureGaps inspects the last three data points and returns advisory
// warnings: stagnation when the scores sit within stagnationSpread of each
// other and the latest is below stagnationScore, decline when the last score
// is lower than the first of the window. Advisory strings only, never
// findings, and never an error; fewer than three points yields nothing.
// difficulty does not affect the current rules; it is part of the call shape
// so difficulty-aware advisories can land without breaking callers.
func PredictFutureGaps(history []ScorePoint, _ string) []string {
	if len(history) < trendWindow {
		return nil
	}

	recent := history[len(history)-trendWindow:]

	var predictions []string

	lo, hi := recent[0].Score, recent[0].Score
	for _, p := range recent[1:] {
		if p.Score < lo {
			lo = p.Score
		}
		if p.Score > hi {
			hi = p.Score
		}
	}
	latest := recent[len(recent)-1].Score

	if hi-lo < stagnationSpread && latest < stagnationScore {
		predictions = append(predictions, "Student may need additional intervention or a different instructional approach")
	}
	if latest < recent[0].Score {
		predictions = append(predictions, "Alert: score is decreasing - check for comprehension issues")
	}

	return predictions
}
