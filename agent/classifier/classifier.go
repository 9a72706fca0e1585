// Package classifier infers the pedagogical intent of a free-form learning
// request with a single near-deterministic generation call.
package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/skillradar/agentcore/agent/contract"
	promptx "github.com/skillradar/agentcore/agent/prompt"
	respondx "github.com/skillradar/agentcore/agent/respond"
)

type Classifier struct {
	gen      contractx.TextGenerator
	settings contractx.GenerationSettings
}

var _ contractx.IntentClassifier = (*Classifier)(nil)

func New(gen contractx.TextGenerator, settings contractx.GenerationSettings) *Classifier {
	return &Classifier{
		gen:      gen,
		settings: settings,
	}
}

type intentLLMOutput struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	SubjectArea string  `json:"subjectArea"`
}

// Classify makes exactly one attempt; the caller decides whether to retry
// the whole route. Transport failure and unusable replies map to distinct
// sentinels so callers can fall back differently.
func (c *Classifier) Classify(ctx context.Context, request string, rc *contractx.RoutingContext) (contractx.IntentResult, error) {
	if strings.TrimSpace(request) == "" {
		return contractx.IntentResult{}, fmt.Errorf("%w: request is empty", contractx.ErrValidation)
	}

	raw, err := c.gen.Generate(ctx, promptx.Classifier(request, rc), c.settings)
	if err != nil {
		return contractx.IntentResult{}, fmt.Errorf("%w: %v", contractx.ErrClassifierUnavailable, err)
	}

	out, err := respondx.Decode[intentLLMOutput](raw)
	if err != nil {
		return contractx.IntentResult{}, fmt.Errorf("%w: %v", contractx.ErrIntentParse, err)
	}

	result := contractx.IntentResult{
		Type:        contractx.IntentType(strings.TrimSpace(out.Type)),
		Confidence:  out.Confidence,
		SubjectArea: strings.TrimSpace(out.SubjectArea),
	}
	if err := validate(result); err != nil {
		return contractx.IntentResult{}, err
	}

	log.Debug().
		Str("intent", string(result.Type)).
		Float64("confidence", result.Confidence).
		Str("subject_area", result.SubjectArea).
		Msg("classifier: intent detected")

	return result, nil
}

func validate(r contractx.IntentResult) error {
	if r.Type == "" {
		return fmt.Errorf("%w: missing intent type", contractx.ErrIntentParse)
	}
	if !contractx.KnownIntent(r.Type) {
		return fmt.Errorf("%w: unknown intent type=%q", contractx.ErrIntentParse, r.Type)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("%w: confidence=%v out of range", contractx.ErrIntentParse, r.Confidence)
	}
	return nil
}
