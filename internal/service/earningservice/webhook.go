package earningservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/pkg/clients"
	"go.uber.org/zap"
)

// WebhookNotifier posts reversal shortfalls to the operator queue endpoint.
// Delivery is best effort; the shortfall row is already persisted before a
// notification is attempted.
type WebhookNotifier struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookNotifier(url string, client clients.HTTPClientI) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: client,
	}
}

type shortfallEvent struct {
	EarningID    int    `json:"earning_id"`
	InstructorID int    `json:"instructor_id"`
	Amount       string `json:"amount"`
	CreatedAt    string `json:"created_at"`
}

func (n *WebhookNotifier) NotifyShortfall(ctx context.Context, shortfall domain.ReversalShortfall) error {
	if n.url == "" {
		zap.L().Warn("no shortfall webhook configured, shortfall stays queued",
			zap.Int("earningID", shortfall.EarningID))
		return nil
	}

	body, err := json.Marshal(shortfallEvent{
		EarningID:    shortfall.EarningID,
		InstructorID: shortfall.InstructorID,
		Amount:       shortfall.Amount.StringFixed(2),
		CreatedAt:    shortfall.CreatedAt.Format(http.TimeFormat),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal shortfall event: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	statusCode, _, err := n.client.Post(n.url, headers, body)
	if err != nil {
		return fmt.Errorf("failed to post shortfall event: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return fmt.Errorf("operator queue rejected shortfall event: status %d", statusCode)
	}
	return nil
}
