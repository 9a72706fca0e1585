package prompt

import (
	"fmt"
	"strings"
	"testing"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

func TestContentSubstitutesContext(t *testing.T) {
	t.Parallel()

	rc := &contractx.RoutingContext{
		Grade:         6,
		Subject:       "Science",
		LearningStyle: "kinesthetic",
		Language:      "Tamil",
		Difficulty:    "beginner",
	}
	got := Content("explain photosynthesis", rc)

	for _, want := range []string{"Grade 6", "Science", "kinesthetic", "Tamil", "beginner", "explain photosynthesis"} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "{") && strings.Contains(got, "{request}") {
		t.Fatalf("unsubstituted placeholder left in prompt:\n%s", got)
	}
}

func TestContentDefaults(t *testing.T) {
	t.Parallel()

	got := Content("fractions", nil)
	for _, want := range []string{"General", "visual", "English", "intermediate", "unspecified"} {
		if !strings.Contains(got, want) {
			t.Fatalf("default %q missing from prompt:\n%s", want, got)
		}
	}
}

func TestGapAnalysisFallsBackToRequestTopic(t *testing.T) {
	t.Parallel()

	got := GapAnalysis("long division", &contractx.RoutingContext{Grade: 4})
	if !strings.Contains(got, "Current Topic: long division") {
		t.Fatalf("expected request used as topic:\n%s", got)
	}
	if !strings.Contains(got, "(none)") {
		t.Fatalf("expected empty score block placeholder:\n%s", got)
	}
}

func TestMotivationAverages(t *testing.T) {
	t.Parallel()

	rc := &contractx.RoutingContext{
		Grade:        5,
		RecentScores: map[string]int{"literacy": 60, "numeracy": 40},
		Mood:         "frustrated",
		Streak:       4,
	}
	got := Motivation("I keep failing maths", rc)
	if !strings.Contains(got, "50%") {
		t.Fatalf("expected averaged score in prompt:\n%s", got)
	}
	if !strings.Contains(got, "frustrated") || !strings.Contains(got, "4 days") {
		t.Fatalf("mood/streak missing:\n%s", got)
	}
}

func TestTutorHistoryWindow(t *testing.T) {
	t.Parallel()

	var history []contractx.ConversationTurn
	for i := 0; i < 10; i++ {
		history = append(history,
			contractx.ConversationTurn{Role: contractx.RoleUser, Content: fmt.Sprintf("question %d", i)},
			contractx.ConversationTurn{Role: contractx.RoleTutor, Content: fmt.Sprintf("answer %d", i)},
		)
	}

	got := Tutor("next question", history, nil)
	if strings.Contains(got, "question 6") {
		t.Fatalf("history beyond window leaked into prompt:\n%s", got)
	}
	for _, want := range []string{"question 7", "answer 7", "question 9", "answer 9"} {
		if !strings.Contains(got, want) {
			t.Fatalf("trailing history %q missing:\n%s", want, got)
		}
	}
}

func TestTutorEmptyHistory(t *testing.T) {
	t.Parallel()

	got := Tutor("what is gravity", nil, nil)
	if !strings.Contains(got, "(none)") {
		t.Fatalf("expected empty-history marker:\n%s", got)
	}
}

func TestClassifierEmbedsRequestVerbatim(t *testing.T) {
	t.Parallel()

	got := Classifier("I want a quiz on fractions", &contractx.RoutingContext{Grade: 3, Subject: "Maths"})
	if !strings.Contains(got, `"I want a quiz on fractions"`) {
		t.Fatalf("request not embedded:\n%s", got)
	}
	if !strings.Contains(got, "Grade 3, Subject: Maths") {
		t.Fatalf("context line malformed:\n%s", got)
	}
}
