package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

// routeState travels between graph nodes for one request.
type routeState struct {
	In        RouteInput
	RequestID string
}

func (c *Coordinator) compileRouteGraph(ctx context.Context) (compose.Runnable[RouteInput, RouteOutput], error) {
	graph := compose.NewGraph[RouteInput, RouteOutput]()

	if err := graph.AddLambdaNode("prepare_request",
		compose.InvokableLambda(func(ctx context.Context, in RouteInput) (*routeState, error) {
			if strings.TrimSpace(in.Query) == "" {
				return nil, fmt.Errorf("%w: query is empty", contractx.ErrValidation)
			}
			state := &routeState{In: in, RequestID: uuid.NewString()}
			log.Debug().
				Str("request_id", state.RequestID).
				Str("agent_id", string(in.AgentID)).
				Msg("routing request")
			return state, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node prepare_request: %w", err)
	}

	if err := graph.AddLambdaNode("direct_dispatch",
		compose.InvokableLambda(func(ctx context.Context, state *routeState) (RouteOutput, error) {
			result, err := c.dispatch(ctx, state.In.AgentID, state.In.Query, state.In.Context)
			if err != nil {
				return RouteOutput{}, err
			}
			return RouteOutput{AgentUsed: state.In.AgentID, Result: result}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node direct_dispatch: %w", err)
	}

	if err := graph.AddLambdaNode("classified_dispatch",
		compose.InvokableLambda(func(ctx context.Context, state *routeState) (RouteOutput, error) {
			intent, err := c.classifier.Classify(ctx, state.In.Query, state.In.Context)
			if err != nil {
				return RouteOutput{}, err
			}
			target := c.targetForIntent(intent)
			log.Debug().
				Str("request_id", state.RequestID).
				Str("intent", string(intent.Type)).
				Float64("confidence", intent.Confidence).
				Str("agent_id", string(target)).
				Msg("intent classified")

			result, err := c.dispatch(ctx, target, state.In.Query, state.In.Context)
			if err != nil {
				return RouteOutput{}, err
			}
			return RouteOutput{AgentUsed: target, Intent: &intent, Result: result}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classified_dispatch: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, state *routeState) (string, error) {
			if state == nil {
				return "", fmt.Errorf("%w: route state is nil", contractx.ErrValidation)
			}
			if state.In.AgentID != "" {
				return "direct_dispatch", nil
			}
			return "classified_dispatch", nil
		},
		map[string]bool{
			"direct_dispatch":     true,
			"classified_dispatch": true,
		},
	)

	if err := graph.AddBranch("prepare_request", branch); err != nil {
		return nil, fmt.Errorf("add routing branch: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prepare_request"); err != nil {
		return nil, fmt.Errorf("add edge start->prepare: %w", err)
	}
	if err := graph.AddEdge("direct_dispatch", compose.END); err != nil {
		return nil, fmt.Errorf("add edge direct->end: %w", err)
	}
	if err := graph.AddEdge("classified_dispatch", compose.END); err != nil {
		return nil, fmt.Errorf("add edge classified->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("coordinator.route"))
	if err != nil {
		return nil, fmt.Errorf("compile routing graph: %w", err)
	}
	return runner, nil
}
