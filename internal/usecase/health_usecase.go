package usecase

import "context"

// Pinger is satisfied by the database pool and the redis health check.
type Pinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	database Pinger
	redis    Pinger
}

// NewHealthUsecase builds a health check. redis may be nil when it is not configured.
func NewHealthUsecase(database, redis Pinger) HealthUsecase {
	return &healthUsecase{database: database, redis: redis}
}

// Check reports component status. Only the database is required for the
// service to be healthy; redis is optional.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}
	healthy := true

	if err := u.database(ctx); err != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		healthy = false
	}

	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}

	return status, healthy
}
