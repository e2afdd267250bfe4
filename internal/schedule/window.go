package schedule

import (
	"sort"
	"time"

	"github.com/sicparvisventures/reserve4you/internal/domain"
)

// Fallback grid used when a venue has no shifts configured at all: a plain
// 30-minute grid over 11:00-22:00 with an assumed 2-hour seating. Shift-driven
// generation is authoritative whenever any shift exists.
const (
	fallbackStartMin    = 11 * 60
	fallbackEndMin      = 22 * 60
	fallbackStepMin     = 30
	fallbackDurationMin = 120
)

// Window is a concrete slot-generation window for a single date. A shift maps
// to one window with Duration == Step; the fallback grid decouples the two.
type Window struct {
	ShiftID     string
	Start       int
	End         int
	Step        int
	Duration    int
	Buffer      int
	MaxParallel int // 0 = no cap
}

func windowFromShift(s *domain.Shift) Window {
	return Window{
		ShiftID:     s.ID,
		Start:       s.StartMin,
		End:         s.EndMin,
		Step:        s.SlotMinutes,
		Duration:    s.SlotMinutes,
		Buffer:      s.BufferMinutes,
		MaxParallel: s.MaxParallel,
	}
}

// FallbackWindow builds the degraded every-day grid from venue defaults.
func FallbackWindow(v *domain.Venue) Window {
	return Window{
		Start:    fallbackStartMin,
		End:      fallbackEndMin,
		Step:     fallbackStepMin,
		Duration: fallbackDurationMin,
		Buffer:   v.BufferMinutes,
	}
}

// WindowsForDate filters shifts to the date's weekday and orders them by
// start time for deterministic slot enumeration.
func WindowsForDate(shifts []*domain.Shift, day time.Weekday) []Window {
	var out []Window
	for _, s := range shifts {
		if s.AppliesOn(day) {
			out = append(out, windowFromShift(s))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ShiftID < out[j].ShiftID
	})
	return out
}

// Starts enumerates candidate start times at Step granularity. A start is a
// candidate while it lies before closing; the seating itself may run past it
// (a 14:00 start is offered for a 15:00 close even with a 90-minute slot).
func (w Window) Starts() []int {
	var out []int
	for s := w.Start; s < w.End; s += w.Step {
		out = append(out, s)
	}
	return out
}

// Contains reports whether start is a valid, granularity-aligned candidate
// of this window.
func (w Window) Contains(start int) bool {
	if start < w.Start || start >= w.End {
		return false
	}
	return (start-w.Start)%w.Step == 0
}
