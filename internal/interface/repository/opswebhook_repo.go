package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"airportops-service/internal/domain/entity"
	"airportops-service/internal/domain/repository"
	"airportops-service/pkg/logger"
)

// OpsWebhookRepository publishes operational events to the operations
// dashboard webhook.
type OpsWebhookRepository struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	client      *http.Client
}

// NewOpsWebhookRepository creates a new ops webhook repository
func NewOpsWebhookRepository(logger logger.Logger, baseURL, bearerToken string) repository.OpsEventRepository {
	return &OpsWebhookRepository{
		logger:      logger,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// PublishEvent sends an event to the ops webhook
func (r *OpsWebhookRepository) PublishEvent(ctx context.Context, event *entity.OpsEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/ops/events", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return fmt.Errorf("ops webhook returned status %d: %v", resp.StatusCode, errorBody)
	}

	r.logger.Info("Ops event published",
		"type", event.Type,
		"flightCode", event.FlightCode,
		"resource", event.Resource)

	return nil
}
