package agents

import (
	"context"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

// Motivator produces empathetic messages and daily challenges. It runs with
// the highest diversity of all agents; motivational tone benefits from
// variety.
type Motivator struct {
	base
	gen               contractx.TextGenerator
	settings          contractx.GenerationSettings
	challengeSettings contractx.GenerationSettings
}

var _ contractx.Agent = (*Motivator)(nil)

func NewMotivator(gen contractx.TextGenerator, cfg llmx.Config) *Motivator {
	return &Motivator{
		base: base{desc: newDescriptor(contractx.AgentMotivator, "Motivator", 40,
			"encouragement", "daily-challenges")},
		gen:               gen,
		settings:          cfg.SettingsFor(contractx.AgentMotivator),
		challengeSettings: cfg.DefaultSettings(),
	}
}

func (a *Motivator) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.Motivation(request, rc), a.settings)
	if err != nil {
		return nil, execErr("generate motivation", err)
	}

	res, err := respondx.Decode[contractx.MotivationResult](raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(res.Message) == "" {
		return nil, payloadErr("motivational message is empty")
	}
	return res, nil
}

// GenerateDailyChallenge produces a short self-contained task with an
// estimated completion time and point value.
func (a *Motivator) GenerateDailyChallenge(ctx context.Context, grade int, subject string) (contractx.DailyChallenge, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.DailyChallenge(grade, subject), a.challengeSettings)
	if err != nil {
		return contractx.DailyChallenge{}, execErr("generate daily challenge", err)
	}

	res, err := respondx.Decode[contractx.DailyChallenge](raw)
	if err != nil {
		return contractx.DailyChallenge{}, err
	}
	if strings.TrimSpace(res.Task) == "" {
		return contractx.DailyChallenge{}, payloadErr("daily challenge task is empty")
	}
	if res.Points < 0 || res.Points > 100 {
		return contractx.DailyChallenge{}, payloadErr("challenge points=%d out of range", res.Points)
	}
	return res, nil
}
