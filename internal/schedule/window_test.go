package schedule

import (
	"testing"
	"time"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWindow_Starts_SeatingMayRunPastClose(t *testing.T) {
	// Lunch 11:00-15:00 at 90-minute granularity: the 14:00 start is still
	// offered even though the seating ends after close.
	w := Window{Start: 11 * 60, End: 15 * 60, Step: 90, Duration: 90}

	assert.Equal(t, []int{660, 750, 840}, w.Starts())
}

func TestWindow_Starts_ExactFit(t *testing.T) {
	w := Window{Start: 18 * 60, End: 19 * 60, Step: 30}

	assert.Equal(t, []int{1080, 1110}, w.Starts())
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Start: 660, End: 900, Step: 90}

	assert.True(t, w.Contains(660))
	assert.True(t, w.Contains(750))
	assert.True(t, w.Contains(840))
	assert.False(t, w.Contains(700), "misaligned start")
	assert.False(t, w.Contains(600), "before opening")
	assert.False(t, w.Contains(900), "at close")
}

func TestWindowsForDate_FiltersAndOrders(t *testing.T) {
	shifts := []*domain.Shift{
		{ID: "s-dinner", Weekdays: []int{5, 6}, StartMin: 18 * 60, EndMin: 22 * 60, SlotMinutes: 30},
		{ID: "s-lunch", Weekdays: []int{1, 2, 3, 4, 5}, StartMin: 11 * 60, EndMin: 15 * 60, SlotMinutes: 90},
	}

	fri := WindowsForDate(shifts, time.Friday)
	if assert.Len(t, fri, 2) {
		assert.Equal(t, "s-lunch", fri[0].ShiftID)
		assert.Equal(t, "s-dinner", fri[1].ShiftID)
	}

	mon := WindowsForDate(shifts, time.Monday)
	if assert.Len(t, mon, 1) {
		assert.Equal(t, "s-lunch", mon[0].ShiftID)
	}

	sun := WindowsForDate(shifts, time.Sunday)
	assert.Empty(t, sun)
}

func TestFallbackWindow(t *testing.T) {
	v := &domain.Venue{BufferMinutes: 10}

	w := FallbackWindow(v)

	assert.Equal(t, 11*60, w.Start)
	assert.Equal(t, 22*60, w.End)
	assert.Equal(t, 30, w.Step)
	assert.Equal(t, 120, w.Duration)
	assert.Equal(t, 10, w.Buffer)
	assert.Empty(t, w.ShiftID)
}
