package swipe

import (
	"math"

	"github.com/go-drift/swipe/pkg/animation"
)

// ClampOffset brings offset into the valid range for count items. Without
// wrapping it is clamped to [0, max(0, count-1)]; with wrapping it is
// reduced modulo count into [0, count).
func ClampOffset(offset float64, count int, wrap bool) float64 {
	if count <= 0 {
		return 0
	}
	n := float64(count)
	if !wrap {
		return math.Min(math.Max(0, offset), math.Max(0, n-1))
	}
	r := offset - math.Floor(offset/n)*n
	// Tiny negative inputs round up to exactly n.
	if r >= n || r < 0 {
		return 0
	}
	return r
}

// ClampIndex is the integer analogue of [ClampOffset].
func ClampIndex(index, count int, wrap bool) int {
	if count <= 0 {
		return 0
	}
	if !wrap {
		return min(max(0, index), count-1)
	}
	r := index % count
	if r < 0 {
		r += count
	}
	return r
}

// MinDistance returns the shortest signed travel from one offset to
// another. With wrapping the travel may go around the end of the item
// list, in which case it is the smaller of the direct and wrapped
// distances; ties prefer the direct one.
func MinDistance(from, to float64, count int, wrap bool) float64 {
	direct := to - from
	if !wrap {
		return direct
	}
	wrapped := math.Min(from, to) + float64(count) - math.Max(from, to)
	if from < to {
		wrapped = -wrapped
	}
	if math.Abs(direct) <= math.Abs(wrapped) {
		return direct
	}
	return wrapped
}

// MinIndexDistance is the integer analogue of [MinDistance].
func MinIndexDistance(from, to, count int, wrap bool) int {
	direct := to - from
	if !wrap {
		return direct
	}
	wrapped := min(from, to) + count - max(from, to)
	if from < to {
		wrapped = -wrapped
	}
	if abs(direct) <= abs(wrapped) {
		return direct
	}
	return wrapped
}

// Ease is the scroll animation curve.
func Ease(t float64) float64 {
	return animation.EaseInOutCubic(t)
}

// itemMetrics holds what relative item placement depends on.
type itemMetrics struct {
	count     int
	wrap      bool
	alignment Alignment
	// extent is the item size along the scroll axis.
	extent float64
	// viewport is the container's extent along the scroll axis.
	viewport float64
	// origin is the scroll frame's position along the scroll axis.
	origin float64
}

// relativeOffset returns where item index sits relative to the current
// offset, in items. With wrapping the result is shifted by a whole turn
// so items appear on the side nearest the viewport.
func (m itemMetrics) relativeOffset(index int, current float64) float64 {
	offset := float64(index) - current
	if !m.wrap {
		return offset
	}
	n := float64(m.count)
	if m.alignment == AlignCenter {
		if offset > n/2 {
			offset -= n
		} else if offset < -n/2 {
			offset += n
		}
		return offset
	}
	if offset*m.extent+m.origin > m.viewport {
		offset -= n
	} else if offset*m.extent+m.origin < -m.extent {
		offset += n
	}
	return offset
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
