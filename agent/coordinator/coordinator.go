// Package coordinator routes tutoring requests to registered agents, either
// directly by agent id or through intent classification.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

// DefaultMinConfidence is the classification confidence below which a
// request falls through to the general assistant.
const DefaultMinConfidence = 0.35

type Config struct {
	MinConfidence float64
}

// RouteInput carries one request through the routing graph. A non-empty
// AgentID skips classification entirely.
type RouteInput struct {
	Query   string
	AgentID contractx.AgentID
	Context *contractx.RoutingContext
}

// RouteOutput reports which agent handled the request. Intent is nil on the
// direct path; no classification happened.
type RouteOutput struct {
	AgentUsed contractx.AgentID
	Intent    *contractx.IntentResult
	Result    any
}

// intentRoutes maps each classified intent to the agent that owns it.
var intentRoutes = map[contractx.IntentType]contractx.AgentID{
	contractx.IntentLearningContent: contractx.AgentContentGenerator,
	contractx.IntentGapAnalysis:     contractx.AgentGapAnalyzer,
	contractx.IntentAssessment:      contractx.AgentAssessor,
	contractx.IntentMotivation:      contractx.AgentMotivator,
	contractx.IntentTutoring:        contractx.AgentTutor,
	contractx.IntentOther:           contractx.AgentGeneralAssistant,
}

type Coordinator struct {
	mu     sync.RWMutex
	agents map[contractx.AgentID]contractx.Agent

	classifier    contractx.IntentClassifier
	minConfidence float64

	graphRunner compose.Runnable[RouteInput, RouteOutput]
}

func New(classifier contractx.IntentClassifier, cfg Config) (*Coordinator, error) {
	if classifier == nil {
		return nil, errors.New("intent classifier is required")
	}
	minConfidence := cfg.MinConfidence
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}

	c := &Coordinator{
		agents:        make(map[contractx.AgentID]contractx.Agent),
		classifier:    classifier,
		minConfidence: minConfidence,
	}

	graphRunner, err := c.compileRouteGraph(context.Background())
	if err != nil {
		return nil, err
	}
	c.graphRunner = graphRunner

	return c, nil
}

// RegisterAgent adds an agent under its descriptor id. Registering the same
// id again replaces the previous agent; last write wins.
func (c *Coordinator) RegisterAgent(agent contractx.Agent) error {
	if agent == nil {
		return fmt.Errorf("%w: agent is nil", contractx.ErrValidation)
	}
	desc := agent.Descriptor()
	if desc.ID == "" {
		return fmt.Errorf("%w: agent id is empty", contractx.ErrValidation)
	}

	c.mu.Lock()
	_, replaced := c.agents[desc.ID]
	c.agents[desc.ID] = agent
	c.mu.Unlock()

	if replaced {
		log.Warn().Str("agent_id", string(desc.ID)).Msg("agent re-registered, previous registration replaced")
	}
	return nil
}

// Agent returns the registered agent for id, or false when none exists.
func (c *Coordinator) Agent(id contractx.AgentID) (contractx.Agent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	agent, ok := c.agents[id]
	return agent, ok
}

// Descriptors lists registered agents ordered by priority, highest first.
func (c *Coordinator) Descriptors() []contractx.AgentDescriptor {
	c.mu.RLock()
	descs := make([]contractx.AgentDescriptor, 0, len(c.agents))
	for _, agent := range c.agents {
		descs = append(descs, agent.Descriptor())
	}
	c.mu.RUnlock()

	sort.Slice(descs, func(i, j int) bool {
		if descs[i].Priority != descs[j].Priority {
			return descs[i].Priority > descs[j].Priority
		}
		return descs[i].ID < descs[j].ID
	})
	return descs
}

// Route sends one request through the routing graph.
func (c *Coordinator) Route(ctx context.Context, in RouteInput) (RouteOutput, error) {
	return c.graphRunner.Invoke(ctx, in)
}

// targetForIntent resolves the agent id a classification points at. Weak
// classifications fall through to the general assistant.
func (c *Coordinator) targetForIntent(intent contractx.IntentResult) contractx.AgentID {
	if intent.Confidence < c.minConfidence {
		return contractx.AgentGeneralAssistant
	}
	target, ok := intentRoutes[intent.Type]
	if !ok {
		return contractx.AgentGeneralAssistant
	}
	return target
}

func (c *Coordinator) dispatch(ctx context.Context, id contractx.AgentID, query string, rc *contractx.RoutingContext) (any, error) {
	agent, ok := c.Agent(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", contractx.ErrAgentNotFound, id)
	}
	return agent.Handle(ctx, query, rc)
}
