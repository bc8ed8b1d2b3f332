package motion

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadTrace loads a recorded acceleration trace: one sample per line as
// three whitespace-separated g-unit floats ("x y z"). Blank lines and lines
// starting with '#' are skipped. Used by `play --trace` to replay captured
// sensor sessions deterministically.
func ReadTrace(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("motion: cannot open trace %s: %w", path, err)
	}
	defer f.Close()

	var samples []Sample
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var s Sample
		if _, err := fmt.Sscanf(text, "%f %f %f", &s.X, &s.Y, &s.Z); err != nil {
			return nil, fmt.Errorf("motion: trace %s line %d: %w", path, line, err)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("motion: reading trace %s: %w", path, err)
	}
	return samples, nil
}

// TracePlayer replays a fixed sample slice, then settles at rest forever.
type TracePlayer struct {
	samples []Sample
	pos     int
}

// NewTracePlayer wraps a loaded trace for playback.
func NewTracePlayer(samples []Sample) *TracePlayer {
	return &TracePlayer{samples: samples}
}

// Next returns the next trace sample, or a rest sample once exhausted.
func (p *TracePlayer) Next() Sample {
	if p.pos >= len(p.samples) {
		return Sample{Z: 1.0}
	}
	s := p.samples[p.pos]
	p.pos++
	return s
}

// Done reports whether the trace has been fully consumed.
func (p *TracePlayer) Done() bool {
	return p.pos >= len(p.samples)
}
