package schedule

import (
	"github.com/sicparvisventures/reserve4you/internal/domain"
)

// ConflictIndex holds the occupied intervals of one venue/date snapshot,
// keyed by resource and by shift. It is built once per availability request
// from active reservations and never mutated afterwards.
type ConflictIndex struct {
	byResource map[string][]Interval
	byShift    map[string][]Interval
}

// NewConflictIndex indexes the occupied [start, end+buffer) intervals of
// every reservation whose status still blocks a resource.
func NewConflictIndex(reservations []*domain.Reservation) *ConflictIndex {
	idx := &ConflictIndex{
		byResource: make(map[string][]Interval),
		byShift:    make(map[string][]Interval),
	}
	for _, r := range reservations {
		if !isActive(r.Status) {
			continue
		}
		iv := Occupied(r)
		if r.ResourceID != nil {
			idx.byResource[*r.ResourceID] = append(idx.byResource[*r.ResourceID], iv)
		}
		if r.ShiftID != "" {
			idx.byShift[r.ShiftID] = append(idx.byShift[r.ShiftID], iv)
		}
	}
	return idx
}

func isActive(s domain.ReservationStatus) bool {
	for _, a := range domain.ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// Free reports whether the resource has no occupied interval overlapping iv.
func (idx *ConflictIndex) Free(resourceID string, iv Interval) bool {
	for _, o := range idx.byResource[resourceID] {
		if iv.Overlaps(o) {
			return false
		}
	}
	return true
}

// FreeResources counts the resources with zero conflicts at iv.
func (idx *ConflictIndex) FreeResources(resources []*domain.Resource, iv Interval) int {
	n := 0
	for _, res := range resources {
		if idx.Free(res.ID, iv) {
			n++
		}
	}
	return n
}

// ShiftOverlaps counts active reservations of the shift overlapping iv,
// regardless of resource. Used for the optional max-parallel throughput cap.
func (idx *ConflictIndex) ShiftOverlaps(shiftID string, iv Interval) int {
	n := 0
	for _, o := range idx.byShift[shiftID] {
		if iv.Overlaps(o) {
			n++
		}
	}
	return n
}

// BestFit selects the free resource with capacity closest to the party size
// (minimizing wasted seats), breaking ties by lowest id for determinism.
// Returns nil when nothing qualifying is free.
func BestFit(resources []*domain.Resource, partySize int, free func(id string) bool) *domain.Resource {
	var best *domain.Resource
	for _, res := range resources {
		if res.Capacity < partySize || !free(res.ID) {
			continue
		}
		if best == nil ||
			res.Capacity < best.Capacity ||
			(res.Capacity == best.Capacity && res.ID < best.ID) {
			best = res
		}
	}
	return best
}

// CombinedCapacity returns the largest summed capacity over the combinable
// resources of any single group. It only serves to distinguish the
// "requires combination" refusal from "party too large"; combined allocation
// itself is not supported.
func CombinedCapacity(resources []*domain.Resource) int {
	sums := make(map[string]int)
	max := 0
	for _, res := range resources {
		if !res.Combinable || res.GroupID == nil {
			continue
		}
		sums[*res.GroupID] += res.Capacity
		if sums[*res.GroupID] > max {
			max = sums[*res.GroupID]
		}
	}
	return max
}
