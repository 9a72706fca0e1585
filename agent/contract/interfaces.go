package contract

import "context"

// TextGenerator is the single outbound boundary to the generative-text
// service. Implementations are vendor-specific; the core only requires this
// one operation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, settings GenerationSettings) (string, error)
}

// Agent turns one learning request into a structured result via a single
// generative call. Implementations are side-effect-free except for the
// tutor's own conversation memory.
type Agent interface {
	Descriptor() AgentDescriptor
	Handle(ctx context.Context, request string, rc *RoutingContext) (any, error)
}

// IntentClassifier infers the purpose of a free-form learning request.
type IntentClassifier interface {
	Classify(ctx context.Context, request string, rc *RoutingContext) (IntentResult, error)
}
