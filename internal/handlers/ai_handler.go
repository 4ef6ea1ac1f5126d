package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/models"
)

// AIHandler handles natural-language query HTTP requests
type AIHandler struct {
	orchestrator interfaces.QueryOrchestrator
	llmService   interfaces.LLMService
	logger       arbor.ILogger
}

// NewAIHandler creates a new AI query handler
func NewAIHandler(orchestrator interfaces.QueryOrchestrator, llmService interfaces.LLMService, logger arbor.ILogger) *AIHandler {
	return &AIHandler{
		orchestrator: orchestrator,
		llmService:   llmService,
		logger:       logger,
	}
}

// QueryHandler handles POST /api/ai/query requests.
//
// Responses:
//   - 200 {"totalOperations": <n>, "result": <last operation result>}
//   - 400 {"error": "Query is required"} for a missing or empty query
//   - 400 {"error": "AI returned invalid JSON", "raw": "<raw text>"} when the
//     model output cannot be parsed
//   - 500 {"error": "Server error"} for any other failure
func (h *AIHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Query is required")
		return
	}

	if req.Query == "" {
		WriteError(w, http.StatusBadRequest, "Query is required")
		return
	}

	h.logger.Info().
		Int("query_length", len(req.Query)).
		Msg("Processing AI query")

	result, err := h.orchestrator.Execute(r.Context(), req.Query)
	if err != nil {
		h.writeExecuteError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// writeExecuteError maps orchestrator failures to the documented responses.
func (h *AIHandler) writeExecuteError(w http.ResponseWriter, err error) {
	var invalidOutput *models.InvalidModelOutputError
	if errors.As(err, &invalidOutput) {
		h.logger.Warn().Err(invalidOutput.Err).Msg("Model returned unparseable output")
		WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "AI returned invalid JSON",
			"raw":   invalidOutput.Raw,
		})
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		WriteError(w, http.StatusBadRequest, validation.Message)
		return
	}

	// Everything else is flattened; no detail leaks to the caller.
	h.logger.Error().Err(err).Msg("AI query failed")
	WriteError(w, http.StatusInternalServerError, "Server error")
}

// HealthHandler handles GET /api/ai/health requests
func (h *AIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if err := h.llmService.HealthCheck(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("LLM health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"healthy": false,
			"error":   err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"healthy": true,
	})
}
