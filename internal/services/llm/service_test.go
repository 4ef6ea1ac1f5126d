package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/common"
	"github.com/ternarybob/mandatum/internal/interfaces"
)

func newTestService(defaultProvider common.LLMProvider) *Service {
	config := common.NewDefaultConfig()
	config.LLM.DefaultProvider = defaultProvider
	return NewService(&config.Gemini, &config.Claude, &config.LLM, arbor.NewLogger())
}

func TestDetectProvider(t *testing.T) {
	svc := newTestService(common.LLMProviderClaude)

	tests := []struct {
		model    string
		expected ProviderType
	}{
		{"claude-haiku-3-5-20241022", ProviderClaude},
		{"claude/claude-haiku-3-5-20241022", ProviderClaude},
		{"anthropic/claude-sonnet-4", ProviderClaude},
		{"Claude-Haiku-3-5", ProviderClaude},
		{"gemini-3-flash-preview", ProviderGemini},
		{"gemini/gemini-3-flash-preview", ProviderGemini},
		{"google/gemini-3-flash-preview", ProviderGemini},
		{"", ProviderClaude},              // default provider
		{"gpt-4", ProviderClaude},         // unrecognized falls back to default
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.DetectProvider(tt.model))
		})
	}
}

func TestDetectProviderDefaultGemini(t *testing.T) {
	svc := newTestService(common.LLMProviderGemini)

	assert.Equal(t, ProviderGemini, svc.DetectProvider(""))
	assert.Equal(t, ProviderClaude, svc.DetectProvider("claude-haiku-3-5-20241022"))
}

func TestNormalizeModel(t *testing.T) {
	svc := newTestService(common.LLMProviderClaude)

	tests := []struct {
		model    string
		expected string
	}{
		{"claude/claude-haiku-3-5-20241022", "claude-haiku-3-5-20241022"},
		{"anthropic/claude-sonnet-4", "claude-sonnet-4"},
		{"gemini/gemini-3-flash-preview", "gemini-3-flash-preview"},
		{"google/gemini-3-flash-preview", "gemini-3-flash-preview"},
		{"claude-haiku-3-5-20241022", "claude-haiku-3-5-20241022"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, svc.NormalizeModel(tt.model))
	}
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	svc := newTestService(common.LLMProviderClaude)

	_, err := svc.Generate(context.Background(), &interfaces.GenerateRequest{Prompt: "ping"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGenerateGeminiWithoutAPIKey(t *testing.T) {
	svc := newTestService(common.LLMProviderGemini)

	_, err := svc.Generate(context.Background(), &interfaces.GenerateRequest{Prompt: "ping"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
