package systems

import (
	"time"
)

// System is a per-frame processor driven by the game loop. Update runs to
// completion before the next frame starts.
type System interface {
	Name() string
	Update(frame int) error
	GetMetrics() Metrics
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount     uint64
	TotalExecutionTime time.Duration
	MaxExecutionTime   time.Duration
	ErrorCount         uint64
	LastError          error
	LastExecutionTime  time.Time
}

// Record folds one Update call into m.
func (m *Metrics) Record(started time.Time, err error) {
	elapsed := time.Since(started)
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.MaxExecutionTime = max(m.MaxExecutionTime, elapsed)
	m.LastExecutionTime = started
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}

// AverageExecutionTime is the mean Update duration.
func (m Metrics) AverageExecutionTime() time.Duration {
	if m.ExecutionCount == 0 {
		return 0
	}
	return m.TotalExecutionTime / time.Duration(m.ExecutionCount)
}
