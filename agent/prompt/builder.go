// Package prompt turns a learning request plus routing context into the
// instruction text sent to the generative service. Builders are pure; every
// template is embedded at compile time.
package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

// HistoryWindow caps the conversation context included in a tutor prompt:
// the most recent 3 exchanges, user and tutor turns interleaved.
const HistoryWindow = 6

const (
	defaultSubject    = "General"
	defaultStyle      = "visual"
	defaultLanguage   = "English"
	defaultDifficulty = "intermediate"
	defaultExamType   = "standard"
	defaultTimeLimit  = 30
)

func Classifier(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.Classifier,
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
		"{subject}", fallback(rc.Subject, "any"),
	)
}

func Content(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.Content,
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
		"{subject}", fallback(rc.Subject, defaultSubject),
		"{learning_style}", fallback(rc.LearningStyle, defaultStyle),
		"{language}", fallback(rc.Language, defaultLanguage),
		"{difficulty}", fallback(rc.Difficulty, defaultDifficulty),
	)
}

func GapAnalysis(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	topic := rc.CurrentTopic
	if strings.TrimSpace(topic) == "" {
		topic = request
	}
	return replace(templates.GapAnalysis,
		"{grade}", gradeString(rc.Grade),
		"{recent_scores}", jsonBlock(rc.RecentScores),
		"{recent_mistakes}", jsonBlock(rc.RecentMistakes),
		"{topic}", topic,
	)
}

func ConceptDependencies(topic string, grade int) string {
	return replace(templates.ConceptDependencies,
		"{topic}", topic,
		"{grade}", gradeString(grade),
	)
}

func Assessment(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	timeLimit := rc.TimeLimitMins
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimit
	}
	return replace(templates.Assessment,
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
		"{subject}", fallback(rc.Subject, defaultSubject),
		"{difficulty}", fallback(rc.Difficulty, defaultDifficulty),
		"{exam_type}", fallback(rc.ExamType, defaultExamType),
		"{time_limit}", strconv.Itoa(timeLimit),
	)
}

func AnswerEvaluation(question, studentAnswer, correctAnswer string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.AnswerEvaluation,
		"{question}", question,
		"{student_answer}", studentAnswer,
		"{correct_answer}", correctAnswer,
		"{grade}", gradeString(rc.Grade),
	)
}

func Motivation(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.Motivation,
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
		"{recent_average}", recentAverage(rc.RecentScores),
		"{mood}", fallback(rc.Mood, "neutral"),
		"{streak}", strconv.Itoa(rc.Streak),
	)
}

func DailyChallenge(grade int, subject string) string {
	return replace(templates.DailyChallenge,
		"{grade}", gradeString(grade),
		"{subject}", fallback(subject, defaultSubject),
	)
}

// Tutor includes at most the trailing HistoryWindow turns so prompt size
// stays bounded no matter how long the session runs.
func Tutor(request string, history []contractx.ConversationTurn, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.Tutor,
		"{history}", formatHistory(history),
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
		"{subject}", fallback(rc.Subject, defaultSubject),
		"{difficulty}", fallback(rc.Difficulty, defaultDifficulty),
	)
}

func General(request string, rc *contractx.RoutingContext) string {
	rc = orEmpty(rc)
	return replace(templates.General,
		"{request}", request,
		"{grade}", gradeString(rc.Grade),
	)
}

/* ------------------------------- helpers -------------------------------- */

func replace(template string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(template)
}

func orEmpty(rc *contractx.RoutingContext) *contractx.RoutingContext {
	if rc == nil {
		return &contractx.RoutingContext{}
	}
	return rc
}

func fallback(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}

func gradeString(grade int) string {
	if grade <= 0 {
		return "unspecified"
	}
	return strconv.Itoa(grade)
}

func jsonBlock(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil || string(b) == "null" {
		return "(none)"
	}
	return string(b)
}

func recentAverage(scores map[string]int) string {
	if len(scores) == 0 {
		return "N/A"
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return fmt.Sprintf("%d%%", total/len(scores))
}

func formatHistory(history []contractx.ConversationTurn) string {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	if len(history) == 0 {
		return "(none)"
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	return strings.Join(lines, "\n")
}
