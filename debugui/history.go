package debugui

// History is a fixed-size ring of samples for line plots.
type History struct {
	samples []float32
	offset  int
	filled  bool
}

func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{samples: make([]float32, size)}
}

// Push appends v, overwriting the oldest sample once the ring is full.
func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	if h.offset == 0 {
		h.filled = true
	}
}

// Ordered returns the samples oldest first. Slots never written read as zero.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.offset:])
	copy(out[n:], h.samples[:h.offset])
	return out
}

// Mean averages the samples written so far.
func (h *History) Mean() float32 {
	n := len(h.samples)
	if !h.filled {
		n = h.offset
	}
	if n == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples[:n] {
		sum += v
	}
	return sum / float32(n)
}

// Max returns the largest sample written so far.
func (h *History) Max() float32 {
	var m float32
	for _, v := range h.samples {
		m = max(m, v)
	}
	return m
}

func (h *History) Len() int {
	return len(h.samples)
}
