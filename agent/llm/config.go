// Package llm holds the per-agent generation presets. Defaults follow the
// pedagogical tuning of each role: near-deterministic classification and
// analysis, mid-range tutoring, high diversity for motivation.
package llm

import (
	"fmt"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

type Config struct {
	MaxOutputTokens int `envconfig:"MAX_OUTPUT_TOKENS" split_words:"true" default:"2000"`

	ClassifierTemperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" split_words:"true" default:"0.3"`
	ContentTemperature    float32 `envconfig:"CONTENT_TEMPERATURE" split_words:"true" default:"0.8"`
	ContentTopP           float32 `envconfig:"CONTENT_TOP_P" split_words:"true" default:"0.95"`
	GapTemperature        float32 `envconfig:"GAP_TEMPERATURE" split_words:"true" default:"0.4"`
	AssessmentTemperature float32 `envconfig:"ASSESSMENT_TEMPERATURE" split_words:"true" default:"0.6"`
	EvaluationTemperature float32 `envconfig:"EVALUATION_TEMPERATURE" split_words:"true" default:"0.3"`
	MotivatorTemperature  float32 `envconfig:"MOTIVATOR_TEMPERATURE" split_words:"true" default:"0.9"`
	TutorTemperature      float32 `envconfig:"TUTOR_TEMPERATURE" split_words:"true" default:"0.7"`
	DefaultTemperature    float32 `envconfig:"DEFAULT_TEMPERATURE" split_words:"true" default:"0.5"`
}

func (c Config) Validate() error {
	for name, temp := range map[string]float32{
		"classifier": c.ClassifierTemperature,
		"content":    c.ContentTemperature,
		"gap":        c.GapTemperature,
		"assessment": c.AssessmentTemperature,
		"evaluation": c.EvaluationTemperature,
		"motivator":  c.MotivatorTemperature,
		"tutor":      c.TutorTemperature,
		"default":    c.DefaultTemperature,
	} {
		if temp < 0 || temp > 1 {
			return fmt.Errorf("%w: %s temperature must be in [0,1]", contractx.ErrValidation, name)
		}
	}
	if c.ContentTopP < 0 || c.ContentTopP > 1 {
		return fmt.Errorf("%w: content top_p must be in [0,1]", contractx.ErrValidation)
	}
	if c.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be > 0", contractx.ErrValidation)
	}
	return nil
}

// ClassifierSettings keeps intent detection near-deterministic.
func (c Config) ClassifierSettings() contractx.GenerationSettings {
	return contractx.GenerationSettings{
		Temperature:     c.ClassifierTemperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}

// SettingsFor returns the preset for an agent's primary Handle operation.
func (c Config) SettingsFor(id contractx.AgentID) contractx.GenerationSettings {
	s := contractx.GenerationSettings{
		Temperature:     c.DefaultTemperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
	switch id {
	case contractx.AgentContentGenerator:
		s.Temperature = c.ContentTemperature
		s.TopP = c.ContentTopP
	case contractx.AgentGapAnalyzer:
		s.Temperature = c.GapTemperature
	case contractx.AgentAssessor:
		s.Temperature = c.AssessmentTemperature
	case contractx.AgentMotivator:
		s.Temperature = c.MotivatorTemperature
	case contractx.AgentTutor:
		s.Temperature = c.TutorTemperature
	}
	return s
}

// EvaluationSettings covers the assessor's answer scoring, which runs cooler
// than question generation.
func (c Config) EvaluationSettings() contractx.GenerationSettings {
	return contractx.GenerationSettings{
		Temperature:     c.EvaluationTemperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}

// DefaultSettings serves the secondary operations (concept dependencies,
// daily challenges, fallback replies) that need no dedicated preset.
func (c Config) DefaultSettings() contractx.GenerationSettings {
	return contractx.GenerationSettings{
		Temperature:     c.DefaultTemperature,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}
