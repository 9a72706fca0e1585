package classifier

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

type fakeGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, settings contractx.GenerationSettings) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestClassifyParsesFencedReply(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{reply: "```json\n{\"type\":\"tutoring\",\"confidence\":0.92,\"subjectArea\":\"maths\"}\n```"}
	c := New(gen, contractx.GenerationSettings{Temperature: 0.3})

	got, err := c.Classify(context.Background(), "how do I solve 3x+2=11?", &contractx.RoutingContext{Grade: 7})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Type != contractx.IntentTutoring {
		t.Fatalf("unexpected intent: %s", got.Type)
	}
	if got.Confidence != 0.92 || got.SubjectArea != "maths" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", gen.calls)
	}
}

func TestClassifyEmptyRequest(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "   ", nil)
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestClassifyGeneratorFailure(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{err: errors.New("connection refused")}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "teach me fractions", nil)
	if !errors.Is(err, contractx.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestClassifyUnparsableReply(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{reply: "the intent is probably tutoring"}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "teach me fractions", nil)
	if !errors.Is(err, contractx.ErrIntentParse) {
		t.Fatalf("expected ErrIntentParse, got %v", err)
	}
}

func TestClassifyRejectsUnknownIntent(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{reply: `{"type":"homework_excuses","confidence":0.8,"subjectArea":"any"}`}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "whatever", nil)
	if !errors.Is(err, contractx.ErrIntentParse) {
		t.Fatalf("expected ErrIntentParse, got %v", err)
	}
}

func TestClassifyRejectsMissingFields(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{reply: `{"confidence":0.8}`}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "whatever", nil)
	if !errors.Is(err, contractx.ErrIntentParse) {
		t.Fatalf("expected ErrIntentParse, got %v", err)
	}
}

func TestClassifyRejectsOutOfRangeConfidence(t *testing.T) {
	t.Parallel()

	c := New(&fakeGenerator{reply: `{"type":"assessment","confidence":1.7,"subjectArea":"maths"}`}, contractx.GenerationSettings{})
	_, err := c.Classify(context.Background(), "quiz me", nil)
	if !errors.Is(err, contractx.ErrIntentParse) {
		t.Fatalf("expected ErrIntentParse, got %v", err)
	}
}
