package worker

import (
	"context"

	"github.com/osse101/Kombinat_Go/internal/session"
)

// TickJob advances every live player session: completing finished researches
// and flushing debounced saves. Scheduled at a fixed interval.
type TickJob struct {
	sessions session.Service
}

// NewTickJob creates a tick job bound to the session service
func NewTickJob(sessions session.Service) *TickJob {
	return &TickJob{sessions: sessions}
}

// Process runs one tick pass
func (j *TickJob) Process(ctx context.Context) error {
	j.sessions.Tick(ctx)
	return nil
}
