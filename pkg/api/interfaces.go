package api

//go:generate mockgen -destination=mock_api_server.go -package=api github.com/mfreeman451/streamdash/pkg/api Service

import (
	"context"
	"net/http"
)

// Service represents the API server functionality.
type Service interface {
	Start(addr string) error
	Stop(ctx context.Context) error
	Handler() http.Handler
}
