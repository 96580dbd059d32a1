// Package contracts holds the interfaces the rest of the framework codes
// against. Nothing here carries behavior beyond routing: concrete
// providers live in their own modules and register themselves.
package contracts

import (
	"context"

	"github.com/Philanthropists/foundation/pkg/result"
)

// Service is a long-lived component with an explicit lifecycle. Start
// and Stop settle into results rather than errors so callers can branch
// or chain without inspecting error types.
type Service interface {
	Name() string
	Start(ctx context.Context) result.Result[result.Unit]
	Stop(ctx context.Context) result.Result[result.Unit]
	Health(ctx context.Context) result.Result[HealthStatus]
}

type HealthState uint8

const (
	Healthy HealthState = iota
	Degraded
	Unhealthy
)

func (h HealthState) String() string {
	switch h {
	case Healthy:
		return "healthy"
	case Degraded:
		return "degraded"
	case Unhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

func (h HealthState) IsValid() bool {
	return h.String() != "unknown"
}

// HealthStatus is what a Service reports when probed.
type HealthStatus struct {
	State  HealthState
	Detail string
}
