package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/models"
)

// Service is the request orchestrator: it builds a prompt from a free-text
// query, calls the model, parses the returned operation batch and dispatches
// each operation against item storage in order. Only the result of the last
// operation is surfaced to the caller; earlier operations still execute with
// real side effects.
type Service struct {
	llm     interfaces.LLMService
	storage interfaces.ItemStorage
	logger  arbor.ILogger
}

// NewService creates a new orchestrator service
func NewService(llm interfaces.LLMService, storage interfaces.ItemStorage, logger arbor.ILogger) *Service {
	return &Service{
		llm:     llm,
		storage: storage,
		logger:  logger,
	}
}

// Execute runs one natural-language query end to end:
// validate -> prompt -> model call -> parse -> dispatch each operation -> respond.
//
// Errors:
//   - *models.ValidationError for an empty query or an operation payload that
//     does not match the item shape (detected before any dispatch)
//   - *models.InvalidModelOutputError when the model text is not valid JSON
//   - anything else is a storage or provider fault for the caller to flatten
func (s *Service) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Query is required")
	}

	resp, err := s.llm.Generate(ctx, &interfaces.GenerateRequest{
		System: systemInstruction,
		Prompt: buildPrompt(query),
	})
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	s.logger.Debug().
		Str("provider", resp.Provider).
		Str("model", resp.Model).
		Int("response_length", len(resp.Text)).
		Msg("Model response received")

	// Parse as-is. Whatever the model returns must already be valid JSON;
	// formatting artifacts like code fences fail the request.
	var batch models.Batch
	if err := json.Unmarshal([]byte(resp.Text), &batch); err != nil {
		return nil, &models.InvalidModelOutputError{Raw: resp.Text, Err: err}
	}

	// Decode and validate every operation before dispatching any, so a
	// malformed payload cannot leave the batch half-applied. Unknown actions
	// pass through; they are reported inline during dispatch.
	ops := make([]models.Op, 0, len(batch.Operations))
	for i := range batch.Operations {
		op, err := batch.Operations[i].Decode()
		if err != nil {
			return nil, models.NewValidationError("operation %d: %v", i+1, err)
		}
		ops = append(ops, op)
	}

	s.logger.Info().
		Int("operations", len(ops)).
		Int("declared_total", batch.TotalOperations).
		Msg("Dispatching operation batch")

	var lastResult interface{}
	for i, op := range ops {
		result, err := s.dispatch(ctx, op)
		if err != nil {
			return nil, fmt.Errorf("operation %d failed: %w", i+1, err)
		}
		lastResult = result
	}

	return &models.QueryResult{
		TotalOperations: batch.TotalOperations,
		Result:          lastResult,
	}, nil
}

// dispatch executes a single decoded operation and returns its result.
func (s *Service) dispatch(ctx context.Context, op models.Op) (interface{}, error) {
	switch v := op.(type) {
	case models.CreateOp:
		return s.storage.CreateItem(ctx, &v.Data)

	case models.ReadOp:
		return s.storage.FindItems(ctx, v.Filter)

	case models.UpdateOp:
		return s.updateMatching(ctx, v.Filter, &v.Patch)

	case models.DeleteOp:
		return s.deleteMatching(ctx, v.Filter)

	case models.UnknownOp:
		s.logger.Warn().Str("action", string(v.Action)).Msg("Unknown action in operation batch")
		return &models.UnknownActionResult{
			Error: fmt.Sprintf("Unknown action: %s", v.Action),
		}, nil

	default:
		return nil, fmt.Errorf("unhandled operation type %T", op)
	}
}

// updateMatching resolves the matching set, then patches each item
// individually, collecting the post-update representations.
func (s *Service) updateMatching(ctx context.Context, filter *models.ItemFilter, patch *models.ItemPatch) ([]*models.Item, error) {
	matches, err := s.storage.FindItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	updated := make([]*models.Item, 0, len(matches))
	for _, item := range matches {
		result, err := s.storage.UpdateItem(ctx, item.ID, patch)
		if err != nil {
			return nil, err
		}
		updated = append(updated, result)
	}
	return updated, nil
}

// deleteMatching resolves the matching set, then removes each item
// individually, collecting the removed representations.
func (s *Service) deleteMatching(ctx context.Context, filter *models.ItemFilter) ([]*models.Item, error) {
	matches, err := s.storage.FindItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	removed := make([]*models.Item, 0, len(matches))
	for _, item := range matches {
		result, err := s.storage.DeleteItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		removed = append(removed, result)
	}
	return removed, nil
}
