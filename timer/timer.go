// Package timer measures wall-clock durations of scoped operations and
// reports them through a Logger.
package timer

import (
	"time"

	"github.com/pochi-dev/pochi/logger"
)

// Timer measures one operation. Obtain one with Start, then call Stop or
// Fail exactly once when the operation ends.
type Timer struct {
	name    string
	log     logger.Logger
	start   time.Time
	elapsed time.Duration
}

// Start begins timing. A nil log falls back to a default console logger.
func Start(name string, log logger.Logger) *Timer {
	if log == nil {
		log = logger.New("timer")
	}
	return &Timer{name: name, log: log, start: time.Now()}
}

// Stop ends timing and reports the duration as a success.
func (t *Timer) Stop() time.Duration {
	t.elapsed = time.Since(t.start)
	t.log.Infof("%s: %.3fs", t.name, t.elapsed.Seconds())
	return t.elapsed
}

// Fail ends timing and reports the operation as failed.
func (t *Timer) Fail() time.Duration {
	t.elapsed = time.Since(t.start)
	t.log.Warnf("%s (failed): %.3fs", t.name, t.elapsed.Seconds())
	return t.elapsed
}

// Elapsed returns the duration measured by Stop or Fail.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }
