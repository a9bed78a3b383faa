package timer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	infos []string
	warns []string
}

func (r *recordingLogger) Debugf(string, ...any)         {}
func (r *recordingLogger) Debugw(string, map[string]any) {}
func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(string, ...any) {}

func TestStopReportsSuccess(t *testing.T) {
	log := &recordingLogger{}
	tm := Start("training", log)
	time.Sleep(10 * time.Millisecond)
	elapsed := tm.Stop()

	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	assert.Equal(t, elapsed, tm.Elapsed())
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "training:")
	assert.Empty(t, log.warns)
}

func TestFailReportsFailure(t *testing.T) {
	log := &recordingLogger{}
	tm := Start("training", log)
	tm.Fail()

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "training (failed):")
	assert.Empty(t, log.infos)
}

func TestNilLoggerFallsBack(t *testing.T) {
	tm := Start("anonymous", nil)
	assert.NotPanics(t, func() { tm.Stop() })
}
