package usecase

import (
	"context"
	"log/slog"

	"registration/src/core/ports"
)

// HealthService reports the health of the service and its store.
type HealthService struct {
	log   *slog.Logger
	store ports.Repository
}

// NewHealthService creates a new HealthService. store may be nil.
func NewHealthService(log *slog.Logger, store ports.Repository) *HealthService {
	return &HealthService{
		log:   componentLogger(log, "health"),
		store: store,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if s.store != nil {
		if err := s.store.Health(ctx); err != nil {
			s.log.Warn("store health check failed", "error", err)
			status.Status = "degraded"
			status.Components["store"] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Components["store"] = ComponentHealth{Status: "healthy"}
		}
	}

	return status
}
