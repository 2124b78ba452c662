package logging

// ProgressSampler thins per-record progress so that only the first record,
// every Nth record, and the last record are logged.
type ProgressSampler struct {
	every    int
	lastDone int
}

// NewProgressSampler constructs a sampler that emits every `every` records
// (default 100).
func NewProgressSampler(every int) *ProgressSampler {
	if every <= 0 {
		every = 100
	}
	return &ProgressSampler{every: every}
}

// ShouldLog reports whether progress at done of total should be logged. A nil
// sampler logs everything.
func (s *ProgressSampler) ShouldLog(done, total int) bool {
	if s == nil {
		return true
	}
	if done <= 0 || done <= s.lastDone {
		return false
	}
	if done == 1 || done == total || done-s.lastDone >= s.every {
		s.lastDone = done
		return true
	}
	return false
}

// Reset clears the sampler state before a new run.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastDone = 0
}
