package contract

import "errors"

var (
	ErrClassifierUnavailable = errors.New("intent classifier unavailable")
	ErrIntentParse           = errors.New("intent reply is not valid structured data")
	ErrAgentNotFound         = errors.New("agent not registered")
	ErrAgentExecution        = errors.New("agent execution failed")
	ErrResponsePayload       = errors.New("response payload invalid")
	ErrValidation            = errors.New("validation failed")
)
