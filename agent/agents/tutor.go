package agents

import (
	"context"
	"strings"
	"sync"
	"time"

	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

// storedTurns caps the in-memory transcript. Older turns fall off; the
// prompt window is narrower still (prompt.HistoryWindow).
const storedTurns = 50

// maxSummaryTopics bounds best-effort topic extraction in summaries.
const maxSummaryTopics = 3

// Tutor holds a per-session conversation and answers follow-up questions in
// context. One Tutor instance serves one active session; the session mutex
// serializes Handle calls so the transcript never interleaves.
type Tutor struct {
	base
	gen      contractx.TextGenerator
	settings contractx.GenerationSettings

	sessionMu sync.Mutex
	history   []contractx.ConversationTurn
	startedAt time.Time
}

var _ contractx.Agent = (*Tutor)(nil)

func NewTutor(gen contractx.TextGenerator, cfg llmx.Config) *Tutor {
	return &Tutor{
		base: base{desc: newDescriptor(contractx.AgentTutor, "Interactive Tutor", 70,
			"conversational-tutoring", "follow-up-questions", "step-by-step-explanations")},
		gen:       gen,
		settings:  cfg.SettingsFor(contractx.AgentTutor),
		startedAt: time.Now(),
	}
}

// Handle records the student's question, asks for a reply in conversation
// context, and appends the tutor's turn only once the reply parses. A failed
// call leaves the question in the transcript awaiting an answer.
func (a *Tutor) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()

	a.appendTurn(contractx.ConversationTurn{Role: contractx.RoleUser, Content: request})

	raw, err := a.gen.Generate(ctx, promptx.Tutor(request, a.history, rc), a.settings)
	if err != nil {
		return nil, execErr("generate tutor reply", err)
	}

	reply, err := respondx.Decode[contractx.TutorReply](raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(reply.Response) == "" {
		return nil, payloadErr("tutor reply is empty")
	}

	a.appendTurn(contractx.ConversationTurn{Role: contractx.RoleTutor, Content: reply.Response})
	return reply, nil
}

// ResetConversation drops the transcript and restarts the session clock.
func (a *Tutor) ResetConversation() {
	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()
	a.history = nil
	a.startedAt = time.Now()
}

// ConversationSummary reports transcript size, rough topics, and session
// duration for logging collaborators.
func (a *Tutor) ConversationSummary() contractx.ConversationSummary {
	a.sessionMu.Lock()
	defer a.sessionMu.Unlock()
	return contractx.ConversationSummary{
		Messages: len(a.history),
		Topics:   summaryTopics(a.history),
		Duration: time.Since(a.startedAt).Round(time.Second).String(),
	}
}

func (a *Tutor) appendTurn(turn contractx.ConversationTurn) {
	a.history = append(a.history, turn)
	if len(a.history) > storedTurns {
		a.history = a.history[len(a.history)-storedTurns:]
	}
}

// summaryTopics takes the opening words of the earliest student questions as
// a crude topic list.
func summaryTopics(history []contractx.ConversationTurn) []string {
	var topics []string
	for _, turn := range history {
		if turn.Role != contractx.RoleUser {
			continue
		}
		words := strings.Fields(turn.Content)
		if len(words) > 5 {
			words = words[:5]
		}
		if len(words) == 0 {
			continue
		}
		topics = append(topics, strings.Join(words, " "))
		if len(topics) == maxSummaryTopics {
			break
		}
	}
	return topics
}
