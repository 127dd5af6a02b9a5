package lifecycle

//go:generate mockgen -destination=mock_lifecycle.go -package=lifecycle github.com/mfreeman451/streamdash/pkg/lifecycle Service

import "context"

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}
