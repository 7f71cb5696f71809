package logic

import (
	"context"
	"time"
)

// SetPollerSleep replaces the poller's waits, so tests can run the loop without waiting.
func SetPollerSleep(p IPoller, sleep func(ctx context.Context, d time.Duration)) {
	p.(*poller).sleep = sleep
}
