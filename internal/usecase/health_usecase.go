package usecase

import (
	"context"
	"time"

	"portfolio-contact-backend/pkg/redis"
)

type HealthStatus struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	RateLimiter string  `json:"rateLimiter"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}

type healthUsecase struct {
	environment string
	startedAt   time.Time
	now         func() time.Time
}

func NewHealthUsecase(environment string, startedAt time.Time) HealthUsecase {
	return &healthUsecase{
		environment: environment,
		startedAt:   startedAt,
		now:         time.Now,
	}
}

// Check reports liveness. Redis being down only downgrades the rate limiter
// to its in-memory store, so it never fails the check.
func (u *healthUsecase) Check(ctx context.Context) HealthStatus {
	now := u.now()

	limiter := "memory"
	if redis.HealthCheck(ctx) == nil {
		limiter = "redis"
	}

	return HealthStatus{
		Status:      "OK",
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Uptime:      now.Sub(u.startedAt).Seconds(),
		Environment: u.environment,
		RateLimiter: limiter,
	}
}
