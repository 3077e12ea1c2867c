package engine

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each pass of a frame (ms).
type FramePhaseTimings struct {
	ProcessMs float64 `json:"processMs" yaml:"processMs"`
	LayoutMs  float64 `json:"layoutMs" yaml:"layoutMs"`
	DirtyMs   float64 `json:"dirtyMs" yaml:"dirtyMs"`
	DrawMs    float64 `json:"drawMs" yaml:"drawMs"`
	GCMs      float64 `json:"gcMs" yaml:"gcMs"`
}

// FrameCounts captures per-frame workload indicators.
type FrameCounts struct {
	Events      int `json:"events" yaml:"events"`
	States      int `json:"states" yaml:"states"`
	LayoutBoxes int `json:"layoutBoxes" yaml:"layoutBoxes"`
	Live        int `json:"live" yaml:"live"`
	Evicted     int `json:"evicted" yaml:"evicted"`
	DrawOps     int `json:"drawOps" yaml:"drawOps"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Timestamp int64             `json:"ts" yaml:"ts"`
	FrameMs   float64           `json:"frameMs" yaml:"frameMs"`
	Phases    FramePhaseTimings `json:"phases" yaml:"phases"`
	Counts    FrameCounts       `json:"counts" yaml:"counts"`
	Redraw    bool              `json:"redraw" yaml:"redraw"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples     []FrameSample `json:"samples" yaml:"samples"`
	SlowFrames  int           `json:"slowFrames" yaml:"slowFrames"`
	ThresholdMs float64       `json:"thresholdMs" yaml:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	slow      int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a new frame trace buffer.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Threshold returns the slow frame threshold.
func (b *FrameTraceBuffer) Threshold() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Add records a frame sample and updates the slow frame count.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.slow++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return FrameTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:     result,
		SlowFrames:  b.slow,
		ThresholdMs: durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
