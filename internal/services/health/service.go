package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status reports process liveness and, when a database is wired, its
// reachability.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{"ok": true}
	if s.DB == nil {
		status["db"] = "memory"
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		status["ok"] = false
		status["db"] = "unreachable"
		return status
	}
	status["db"] = "ok"
	return status
}
