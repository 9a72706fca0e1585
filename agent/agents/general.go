package agents

import (
	"context"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
)

// GeneralAssistant is the fallback for requests no specialist claims. It is
// the only agent that returns free text; it never fails on payload shape,
// only when the generative call itself fails.
type GeneralAssistant struct {
	base
	gen      contractx.TextGenerator
	settings contractx.GenerationSettings
}

var _ contractx.Agent = (*GeneralAssistant)(nil)

func NewGeneralAssistant(gen contractx.TextGenerator, cfg llmx.Config) *GeneralAssistant {
	return &GeneralAssistant{
		base: base{desc: newDescriptor(contractx.AgentGeneralAssistant, "General Assistant", 10,
			"general-help", "platform-questions")},
		gen:      gen,
		settings: cfg.DefaultSettings(),
	}
}

func (a *GeneralAssistant) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.General(request, rc), a.settings)
	if err != nil {
		return nil, execErr("generate general reply", err)
	}

	return contractx.GeneralResult{
		Response: strings.TrimSpace(raw),
		Type:     contractx.GeneralHelpType,
	}, nil
}
