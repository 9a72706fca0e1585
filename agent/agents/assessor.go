package agents

import (
	"context"

	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

// Assessor creates tiered question sets and scores free-text answers.
// Answer evaluation delegates judgment to the external service, so two runs
// on the same answer may word feedback differently.
type Assessor struct {
	base
	gen          contractx.TextGenerator
	settings     contractx.GenerationSettings
	evalSettings contractx.GenerationSettings
}

var _ contractx.Agent = (*Assessor)(nil)

func NewAssessor(gen contractx.TextGenerator, cfg llmx.Config) *Assessor {
	return &Assessor{
		base: base{desc: newDescriptor(contractx.AgentAssessor, "Assessment Creator", 60,
			"question-generation", "answer-evaluation")},
		gen:          gen,
		settings:     cfg.SettingsFor(contractx.AgentAssessor),
		evalSettings: cfg.EvaluationSettings(),
	}
}

func (a *Assessor) Handle(ctx context.Context, request string, rc *contractx.RoutingContext) (any, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.Assessment(request, rc), a.settings)
	if err != nil {
		return nil, execErr("generate assessment", err)
	}

	res, err := respondx.Decode[contractx.AssessmentResult](raw)
	if err != nil {
		return nil, err
	}
	if len(res.Questions) == 0 {
		return nil, payloadErr("assessment has no questions")
	}
	for i, q := range res.Questions {
		if q.Question == "" || q.Answer == "" {
			return nil, payloadErr("question %d is missing text or answer", i)
		}
	}
	return res, nil
}

// EvaluateAnswer scores a free-text answer against the reference answer,
// returning partial credit, mistakes, and improvement tips alongside the
// 0-100 score.
func (a *Assessor) EvaluateAnswer(ctx context.Context, question, studentAnswer, correctAnswer string, rc *contractx.RoutingContext) (contractx.AnswerEvaluation, error) {
	defer a.track()()

	raw, err := a.gen.Generate(ctx, promptx.AnswerEvaluation(question, studentAnswer, correctAnswer, rc), a.evalSettings)
	if err != nil {
		return contractx.AnswerEvaluation{}, execErr("evaluate answer", err)
	}

	res, err := respondx.Decode[contractx.AnswerEvaluation](raw)
	if err != nil {
		return contractx.AnswerEvaluation{}, err
	}
	if res.Score < 0 || res.Score > 100 {
		return contractx.AnswerEvaluation{}, payloadErr("evaluation score=%d out of range", res.Score)
	}
	return res, nil
}
