package trace

import "github.com/arjun-s/springstep/internal/engine"

// Sample is one observed point of a run.
type Sample struct {
	WallClock int64
	StepCount int64
	Position  float64
	Velocity  float64
}

// Recorder collects per-tick samples and feeds registered metrics. It
// is a passive observer; the driving loop decides when to record.
type Recorder struct {
	samples []Sample
	metrics []Metric
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) AddMetric(m Metric) { r.metrics = append(r.metrics, m) }

// Observe appends a sample for the state and updates all metrics.
func (r *Recorder) Observe(s engine.State) {
	r.samples = append(r.samples, Sample{
		WallClock: s.WallClock,
		StepCount: s.StepCount,
		Position:  s.Position(),
		Velocity:  s.Body.Velocity,
	})
	for _, m := range r.metrics {
		m.Observe(s)
	}
}

func (r *Recorder) Samples() []Sample { return r.samples }

func (r *Recorder) Len() int { return len(r.samples) }

// Positions returns the position series, the shape plotting wants.
func (r *Recorder) Positions() []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.Position
	}
	return out
}

// Metrics returns the current metric values by name.
func (r *Recorder) Metrics() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Reset drops all samples and resets metrics for a fresh run.
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	for _, m := range r.metrics {
		m.Reset()
	}
}
