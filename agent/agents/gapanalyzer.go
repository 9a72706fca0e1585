package agents

import (
	"context"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
	gapsx "github.com/skillradar/agentcore/agent/gaps"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

// GapAnalyzer narrates learning gaps from recent scores and mistakes. It
// runs cool so repeated analysis of the same input stays stable. The
// deterministic scoring of raw sub-scores lives in agent/gaps, not here.
type GapAnalyzer struct {
	base
	gen          contractx.TextGenerator
	settings     contractx.GenerationSettings
	depsSettings contractx.GenerationSettings
}

var _ contractx.Agent = (*GapAnalyzer)(nil)

func NewGapAnalyzer(gen contractx.TextGenerator, cfg llmx.Config) *GapAnalyzer {
	return &GapAnalyzer{
		base: base{desc: newDescriptor(contractx.AgentGapAnalyzer, "Gap Analyzer", 80,
			"gap-narrative", "remediation-planning", "concept-dependencies")},
		gen:          gen,
		settings:     cfg.SettingsFor(contractx.AgentGapAnalyzer),
		depsSettings: cfg.DefaultSettings(),
	}
}

func (a *GapAnalyzer) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.GapAnalysis(request, rc), a.settings)
	if err != nil {
		return nil, execErr("generate gap analysis", err)
	}

	res, err := respondx.Decode[contractx.GapNarrative](raw)
	if err != nil {
		return nil, err
	}
	if len(res.GapsIdentified) == 0 && strings.TrimSpace(res.RootCause) == "" {
		return nil, payloadErr("gap analysis names no gaps and no root cause")
	}
	if res.ConfidenceScore < 0 || res.ConfidenceScore > 100 {
		return nil, payloadErr("confidence score=%v out of range", res.ConfidenceScore)
	}
	return res, nil
}

// AnalyzeConceptDependencies maps the prerequisite tree for a single topic.
func (a *GapAnalyzer) AnalyzeConceptDependencies(ctx context.Context, topic string, grade int) (contractx.ConceptDependencies, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.ConceptDependencies(topic, grade), a.depsSettings)
	if err != nil {
		return contractx.ConceptDependencies{}, execErr("analyze concept dependencies", err)
	}

	res, err := respondx.Decode[contractx.ConceptDependencies](raw)
	if err != nil {
		return contractx.ConceptDependencies{}, err
	}
	if len(res.Prerequisites) == 0 && len(res.CoreComponents) == 0 {
		return contractx.ConceptDependencies{}, payloadErr("dependency tree is empty")
	}
	return res, nil
}

// ScoreSubskills runs the deterministic scorer over raw sub-scores. No
// generative call is made; callers holding raw scores can also use the gaps
// package directly.
func (a *GapAnalyzer) ScoreSubskills(subscores map[string]int, classAverage int) []gapsx.GapFinding {
	return gapsx.DetectLearningGaps(subscores, classAverage)
}
