package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skillradar/agentcore/agent/agents"
	classifierx "github.com/skillradar/agentcore/agent/classifier"
	coordinatorx "github.com/skillradar/agentcore/agent/coordinator"
	contractx "github.com/skillradar/agentcore/agent/contract"
	llmx "github.com/skillradar/agentcore/agent/llm"
	statex "github.com/skillradar/agentcore/agent/state"
	configx "github.com/skillradar/agentcore/pkg/config"
	genaix "github.com/skillradar/agentcore/pkg/genai"
	_ "github.com/skillradar/agentcore/pkg/logger/autoload"
)

type AppConfig struct {
	PostgresDSN string `envconfig:"POSTGRES_DSN"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	genaiCfg := configx.MustNew[genaix.Config]("GENAI")
	gen, err := genaix.NewClient(*genaiCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize generative client")
	}

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid generation presets")
	}

	coord, err := coordinatorx.New(classifierx.New(gen, llmCfg.ClassifierSettings()), coordinatorx.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("build coordinator")
	}

	registered := []contractx.Agent{
		agents.NewContentGenerator(gen, *llmCfg),
		agents.NewGapAnalyzer(gen, *llmCfg),
		agents.NewAssessor(gen, *llmCfg),
		agents.NewMotivator(gen, *llmCfg),
		agents.NewTutor(gen, *llmCfg),
		agents.NewGeneralAssistant(gen, *llmCfg),
	}
	for _, agent := range registered {
		if err := coord.RegisterAgent(agent); err != nil {
			log.Fatal().Err(err).Str("agent_id", string(agent.Descriptor().ID)).Msg("register agent")
		}
	}

	if appCfg.PostgresDSN != "" {
		store, err := statex.NewPostgresStore(appCfg.PostgresDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres store")
		}
		defer store.Close()
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("ensure store schema")
		}
		log.Info().Msg("postgres store ready")
	}

	log.Info().Int("agents", len(coord.Descriptors())).Msg("routing core ready")
}
