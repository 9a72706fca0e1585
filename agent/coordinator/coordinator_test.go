package coordinator

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

type fakeAgent struct {
	desc    contractx.AgentDescriptor
	result  any
	err     error
	calls   int
	lastReq string
}

func (f *fakeAgent) Descriptor() contractx.AgentDescriptor { return f.desc }

func (f *fakeAgent) Handle(_ context.Context, request string, _ *contractx.RoutingContext) (any, error) {
	f.calls++
	f.lastReq = request
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeClassifier struct {
	intent contractx.IntentResult
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(_ context.Context, _ string, _ *contractx.RoutingContext) (contractx.IntentResult, error) {
	f.calls++
	if f.err != nil {
		return contractx.IntentResult{}, f.err
	}
	return f.intent, nil
}

func newAgent(id contractx.AgentID, priority int, result any) *fakeAgent {
	return &fakeAgent{
		desc:   contractx.AgentDescriptor{ID: id, Name: string(id), Priority: priority, Status: contractx.StatusIdle},
		result: result,
	}
}

func newCoordinator(t *testing.T, classifier contractx.IntentClassifier, agents ...contractx.Agent) *Coordinator {
	t.Helper()
	c, err := New(classifier, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, a := range agents {
		if err := c.RegisterAgent(a); err != nil {
			t.Fatalf("RegisterAgent: %v", err)
		}
	}
	return c
}

func TestDirectDispatchSkipsClassifier(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{}
	tutor := newAgent(contractx.AgentTutor, 70, "tutor says hi")
	c := newCoordinator(t, classifier, tutor)

	for i := 0; i < 2; i++ {
		out, err := c.Route(context.Background(), RouteInput{
			Query:   "explain photosynthesis",
			AgentID: contractx.AgentTutor,
		})
		if err != nil {
			t.Fatalf("Route: %v", err)
		}
		if out.AgentUsed != contractx.AgentTutor {
			t.Errorf("agent used = %q", out.AgentUsed)
		}
		if out.Intent != nil {
			t.Errorf("direct route carried an intent: %+v", out.Intent)
		}
		if out.Result != "tutor says hi" {
			t.Errorf("result = %v", out.Result)
		}
	}
	if classifier.calls != 0 {
		t.Errorf("classifier called %d times on direct path", classifier.calls)
	}
	if tutor.calls != 2 {
		t.Errorf("tutor calls = %d, want 2", tutor.calls)
	}
}

func TestDirectDispatchUnknownAgent(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{}
	c := newCoordinator(t, classifier)

	_, err := c.Route(context.Background(), RouteInput{Query: "hi", AgentID: "nonexistent"})
	if !errors.Is(err, contractx.ErrAgentNotFound) {
		t.Fatalf("err = %v, want ErrAgentNotFound", err)
	}
	if classifier.calls != 0 {
		t.Errorf("classifier called for a direct route")
	}
}

func TestClassifiedDispatch(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{intent: contractx.IntentResult{
		Type:       contractx.IntentTutoring,
		Confidence: 0.92,
	}}
	tutor := newAgent(contractx.AgentTutor, 70, "answer")
	general := newAgent(contractx.AgentGeneralAssistant, 10, "fallback")
	c := newCoordinator(t, classifier, tutor, general)

	out, err := c.Route(context.Background(), RouteInput{Query: "help me understand primes"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.AgentUsed != contractx.AgentTutor {
		t.Errorf("agent used = %q, want tutor", out.AgentUsed)
	}
	if out.Intent == nil || out.Intent.Type != contractx.IntentTutoring {
		t.Errorf("intent = %+v", out.Intent)
	}
	if general.calls != 0 {
		t.Errorf("fallback agent called on a confident classification")
	}
}

func TestLowConfidenceFallsBackToGeneral(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{intent: contractx.IntentResult{
		Type:       contractx.IntentAssessment,
		Confidence: 0.2,
	}}
	assessor := newAgent(contractx.AgentAssessor, 60, "quiz")
	general := newAgent(contractx.AgentGeneralAssistant, 10, "fallback")
	c := newCoordinator(t, classifier, assessor, general)

	out, err := c.Route(context.Background(), RouteInput{Query: "umm maybe test me or something"})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.AgentUsed != contractx.AgentGeneralAssistant {
		t.Errorf("agent used = %q, want general assistant", out.AgentUsed)
	}
	if assessor.calls != 0 {
		t.Errorf("specialist called despite weak classification")
	}
}

func TestClassifierErrorPropagates(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{err: contractx.ErrClassifierUnavailable}
	tutor := newAgent(contractx.AgentTutor, 70, "answer")
	c := newCoordinator(t, classifier, tutor)

	_, err := c.Route(context.Background(), RouteInput{Query: "anything"})
	if !errors.Is(err, contractx.ErrClassifierUnavailable) {
		t.Fatalf("err = %v, want ErrClassifierUnavailable", err)
	}
	if tutor.calls != 0 {
		t.Errorf("agent called after classifier failure")
	}
}

func TestEmptyQueryRejected(t *testing.T) {
	t.Parallel()

	c := newCoordinator(t, &fakeClassifier{})

	_, err := c.Route(context.Background(), RouteInput{Query: "   "})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestAgentExecutionErrorPropagates(t *testing.T) {
	t.Parallel()

	classifier := &fakeClassifier{}
	tutor := newAgent(contractx.AgentTutor, 70, nil)
	tutor.err = contractx.ErrAgentExecution
	c := newCoordinator(t, classifier, tutor)

	_, err := c.Route(context.Background(), RouteInput{Query: "hi", AgentID: contractx.AgentTutor})
	if !errors.Is(err, contractx.ErrAgentExecution) {
		t.Fatalf("err = %v, want ErrAgentExecution", err)
	}
}

func TestRegisterAgentLastWriteWins(t *testing.T) {
	t.Parallel()

	first := newAgent(contractx.AgentTutor, 70, "first")
	second := newAgent(contractx.AgentTutor, 70, "second")
	c := newCoordinator(t, &fakeClassifier{}, first, second)

	out, err := c.Route(context.Background(), RouteInput{Query: "hi", AgentID: contractx.AgentTutor})
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if out.Result != "second" {
		t.Errorf("result = %v, want the replacement agent's", out.Result)
	}
	if first.calls != 0 {
		t.Errorf("replaced agent still receiving requests")
	}
}

func TestRegisterAgentRejectsEmptyID(t *testing.T) {
	t.Parallel()

	c := newCoordinator(t, &fakeClassifier{})
	err := c.RegisterAgent(newAgent("", 0, nil))
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDescriptorsOrderedByPriority(t *testing.T) {
	t.Parallel()

	c := newCoordinator(t, &fakeClassifier{},
		newAgent(contractx.AgentGeneralAssistant, 10, nil),
		newAgent(contractx.AgentGapAnalyzer, 80, nil),
		newAgent(contractx.AgentTutor, 70, nil),
	)

	descs := c.Descriptors()
	if len(descs) != 3 {
		t.Fatalf("descriptors = %d, want 3", len(descs))
	}
	if descs[0].ID != contractx.AgentGapAnalyzer || descs[2].ID != contractx.AgentGeneralAssistant {
		t.Errorf("order = %v, %v, %v", descs[0].ID, descs[1].ID, descs[2].ID)
	}
}
