package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/sheacoding/jumprocket/internal/motion"
)

// SampleSource produces one acceleration sample per sensor tick.
type SampleSource interface {
	Next(now time.Time) motion.Sample
}

// TraceSource adapts a recorded trace to the sample interface. When the
// trace runs out it keeps returning rest samples, so a session can outlive
// its recording.
type TraceSource struct {
	player *motion.TracePlayer
}

// NewTraceSource wraps a trace player.
func NewTraceSource(p *motion.TracePlayer) *TraceSource {
	return &TraceSource{player: p}
}

// Next returns the next recorded sample, or rest gravity past the end.
func (t *TraceSource) Next(time.Time) motion.Sample {
	if t.player.Done() {
		return motion.Sample{Z: 1.0}
	}
	return t.player.Next()
}

// SensorFeed runs the 50 Hz sampling loop on its own goroutine, pushes
// samples through the jump detector and delivers detections on a bounded
// channel. The channel never blocks the loop: if the consumer falls behind,
// detections are dropped rather than delivered late.
type SensorFeed struct {
	source   SampleSource
	detector *motion.Detector
	jumps    chan time.Time
	stop     chan struct{}
	logger   *log.Logger
}

// NewSensorFeed builds a feed over the given source. Call Start to begin
// sampling and Stop to end it.
func NewSensorFeed(source SampleSource, logger *log.Logger) *SensorFeed {
	return &SensorFeed{
		source:   source,
		detector: motion.NewDetector(),
		jumps:    make(chan time.Time, 8),
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Jumps is the detection channel. One value per accepted jump, carrying the
// detection time.
func (f *SensorFeed) Jumps() <-chan time.Time {
	return f.jumps
}

// Start launches the sampling goroutine.
func (f *SensorFeed) Start() {
	go f.run()
}

// Stop ends the sampling goroutine. Safe to call once.
func (f *SensorFeed) Stop() {
	close(f.stop)
}

func (f *SensorFeed) run() {
	ticker := time.NewTicker(motion.SamplePeriodMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-f.stop:
			return
		case now := <-ticker.C:
			if !f.detector.Ingest(f.source.Next(now), now) {
				continue
			}
			select {
			case f.jumps <- now:
			default:
				if f.logger != nil {
					f.logger.Debug("jump dropped, consumer behind")
				}
			}
		}
	}
}
