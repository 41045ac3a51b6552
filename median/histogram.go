package median

import (
	"errors"
	"fmt"
)

const (
	HISTSZ = 70 // default bucket count
)

type Toverflow string

const (
	CLAMP  Toverflow = "clamp"
	REJECT Toverflow = "reject"
)

var ErrOverflow = errors.New("unique-word count exceeds histogram")

// Histogram counts messages by unique-word count. Bucket i holds the
// number of messages with exactly i unique words.
type Histogram struct {
	buckets  []uint64
	total    uint64
	overflow Toverflow
	nclamp   uint64
}

func NewHistogram(sz int, overflow Toverflow) *Histogram {
	return &Histogram{
		buckets:  make([]uint64, sz),
		overflow: overflow,
	}
}

func (h *Histogram) Len() int {
	return len(h.buckets)
}

func (h *Histogram) Total() uint64 {
	return h.total
}

// Nclamped returns how many values were clamped into the top bucket.
func (h *Histogram) Nclamped() uint64 {
	return h.nclamp
}

func (h *Histogram) Bucket(i int) uint64 {
	return h.buckets[i]
}

// Add counts one message with v unique words.
func (h *Histogram) Add(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOverflow, v)
	}
	if v >= len(h.buckets) {
		if h.overflow != CLAMP {
			return fmt.Errorf("%w: %d >= %d", ErrOverflow, v, len(h.buckets))
		}
		v = len(h.buckets) - 1
		h.nclamp += 1
	}
	h.buckets[v] += 1
	h.total += 1
	return nil
}

// Median walks the cumulative sum to the smallest bucket m holding
// the middle message. If the messages split evenly at m, the median
// is the average of m and the next non-empty bucket.
func (h *Histogram) Median() Median {
	if h.total == 0 {
		return Median{}
	}
	top := len(h.buckets) - 1
	m := 0
	s := h.buckets[0]
	for 2*s < h.total && m < top {
		m += 1
		s += h.buckets[m]
	}
	if 2*s == h.total {
		n := m + 1
		for n < top && h.buckets[n] == 0 {
			n += 1
		}
		if n > top {
			n = top
		}
		return Median{m, n}
	}
	return Median{m, m}
}

func (h *Histogram) String() string {
	return fmt.Sprintf("{total %d buckets %v}", h.total, h.buckets)
}
