package progress

// counter is the sink a meter flushes whole units into. The real
// implementation is a terminal progress bar.
type counter interface {
	Add(n int) error
}

// AudioMeter advances a per-file bar by whole seconds of transcribed audio.
// Deltas between consecutive segment end times are accumulated and flushed
// whenever the running total crosses an integer boundary, carrying the
// fractional remainder forward. Invariant: flushed whole seconds plus the
// remainder always equal the elapsed segment time, so the bar neither
// double-counts nor drifts.
type AudioMeter struct {
	bar     counter
	total   int
	emitted int
	carry   float64
	lastEnd float64
}

func newAudioMeter(bar counter, totalSeconds int) *AudioMeter {
	return &AudioMeter{bar: bar, total: totalSeconds}
}

// Observe advances the meter to a segment end time, in seconds.
func (m *AudioMeter) Observe(end float64) {
	delta := end - m.lastEnd
	if delta < 0 {
		delta = 0
	}
	m.lastEnd = end

	m.carry += delta
	whole := int(m.carry)
	if whole > 0 {
		m.carry -= float64(whole)
		m.emitted += whole
		_ = m.bar.Add(whole)
	}
}

// Finish forces the bar to 100% regardless of rounding slack.
func (m *AudioMeter) Finish() {
	if remaining := m.total - m.emitted; remaining > 0 {
		m.emitted = m.total
		_ = m.bar.Add(remaining)
	}
}

// Emitted returns the whole seconds flushed so far.
func (m *AudioMeter) Emitted() int {
	return m.emitted
}
