package agents

import (
	"context"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

// ContentGenerator creates personalized lesson content. It runs with the
// second-highest diversity setting so repeated lessons on one topic vary.
type ContentGenerator struct {
	base
	gen      contractx.TextGenerator
	settings contractx.GenerationSettings
}

var _ contractx.Agent = (*ContentGenerator)(nil)

func NewContentGenerator(gen contractx.TextGenerator, cfg llmx.Config) *ContentGenerator {
	return &ContentGenerator{
		base: base{desc: newDescriptor(contractx.AgentContentGenerator, "Content Generator", 50,
			"lesson-generation", "practice-activities", "quiz-drafting")},
		gen:      gen,
		settings: cfg.SettingsFor(contractx.AgentContentGenerator),
	}
}

func (a *ContentGenerator) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.Content(request, rc), a.settings)
	if err != nil {
		return nil, execErr("generate lesson content", err)
	}

	res, err := respondx.Decode[contractx.ContentResult](raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(res.Introduction) == "" {
		return nil, payloadErr("lesson introduction is empty")
	}
	if len(res.Concepts) == 0 {
		return nil, payloadErr("lesson has no core concepts")
	}
	return res, nil
}
