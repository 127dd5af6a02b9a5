// Package refresh pkg/refresh/interfaces.go

//go:generate mockgen -destination=mock_refresh.go -package=refresh github.com/mfreeman451/streamdash/pkg/refresh Evaluator

package refresh

import (
	"context"

	"github.com/mfreeman451/streamdash/pkg/models"
)

// Evaluator inspects freshly loaded cluster data and raises alerts.
type Evaluator interface {
	EvaluateNodes(ctx context.Context, nodes []models.ClusterNode) []models.Alert
	EvaluateTopics(ctx context.Context, topics []models.Topic) []models.Alert
}
