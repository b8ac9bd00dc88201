package usecase

import (
	"context"

	"go-pestcontrol-web/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

// Check reports overall status plus the state of optional backends.
// A degraded cache does not fail the check; the site still serves.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"redis":  "ok",
	}
	if err := redis.HealthCheck(ctx); err != nil {
		status["redis"] = "unavailable"
	}
	return status
}
