package pipeline

import (
	"context"
	"time"

	"github.com/viant/docgraph/source"
)

// Session runs repeated cycles of the same analyzer, skipping unchanged input
type Session struct {
	pipeline    *Pipeline
	analyzer    source.Analyzer
	fingerprint uint64
	completed   bool
	result      *Result
	err         error
}

// NewSession creates a session for the analyzer
func (p *Pipeline) NewSession(analyzer source.Analyzer) *Session {
	return &Session{pipeline: p, analyzer: analyzer}
}

// Next runs a cycle unless analyzer input is unchanged since the last completed cycle,
// in which case the previous outcome is returned with changed set to false
func (s *Session) Next(ctx context.Context) (result *Result, changed bool, err error) {
	fingerprint, err := s.analyzer.Fingerprint(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.completed && fingerprint == s.fingerprint {
		return s.result, false, s.err
	}
	result, err = s.pipeline.Run(ctx, s.analyzer)
	if result == nil {
		return nil, true, err
	}
	s.fingerprint = fingerprint
	s.completed = true
	s.result = result
	s.err = err
	return result, true, err
}

// Watch runs cycles every interval until the context is done, handler is called for every changed cycle
func (s *Session) Watch(ctx context.Context, interval time.Duration, handler func(result *Result, err error)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, changed, err := s.Next(ctx)
		if ctx.Err() == nil && (changed || (result == nil && err != nil)) {
			handler(result, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
