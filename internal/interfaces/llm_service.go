package interfaces

import "context"

// GenerateRequest is a provider-agnostic text generation request.
type GenerateRequest struct {
	System string // System instruction establishing the output contract
	Prompt string // User-facing prompt text
	Model  string // Optional model override; empty uses the configured default
}

// GenerateResponse is a provider-agnostic text generation response.
type GenerateResponse struct {
	Text     string
	Provider string
	Model    string
}

// LLMService generates text from a prompt. The orchestrator treats the
// returned text as the entire model response; no retry is performed on
// failure.
type LLMService interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	HealthCheck(ctx context.Context) error
	Close() error
}
