// Package ordering holds the position arithmetic shared by the positional
// lists. Stores apply the returned shifts and the target row write inside one
// transaction so that the active positions for an owner stay exactly 1..N.
package ordering

import (
	"math"
	"sort"
)

// Last is the upper bound used for shifts that run to the end of a list
const Last = math.MaxInt32

// InsertMode controls how a requested insert position is treated
type InsertMode string

const (
	// InsertModePositional inserts at the requested position, shifting later items down
	InsertModePositional InsertMode = "positional"

	// InsertModeAppend always appends, ignoring any requested position
	InsertModeAppend InsertMode = "append"
)

// Shift moves every position in [From, To] by Delta
type Shift struct {
	From  int
	To    int
	Delta int
}

// Empty reports whether the shift touches nothing
func (s Shift) Empty() bool {
	return s.Delta == 0 || s.From > s.To
}

// Contains reports whether position falls inside the shifted range
func (s Shift) Contains(position int) bool {
	return !s.Empty() && position >= s.From && position <= s.To
}

// Apply returns the position after the shift
func (s Shift) Apply(position int) int {
	if s.Contains(position) {
		return position + s.Delta
	}
	return position
}

// InsertPosition returns where a new item lands in a list of count active items.
// A missing, out of range or ignored request appends.
func InsertPosition(count int, requested *int, mode InsertMode) int {
	if mode == InsertModeAppend || requested == nil {
		return count + 1
	}
	if *requested < 1 || *requested > count+1 {
		return count + 1
	}
	return *requested
}

// InsertShift makes room at position
func InsertShift(position int) Shift {
	return Shift{From: position, To: Last, Delta: 1}
}

// RemoveShift closes the gap left at position
func RemoveShift(position int) Shift {
	return Shift{From: position + 1, To: Last, Delta: -1}
}

// MoveShift returns the shift applied to the other items when the item at
// oldPosition moves to newPosition
func MoveShift(oldPosition, newPosition int) Shift {
	switch {
	case oldPosition < newPosition:
		return Shift{From: oldPosition + 1, To: newPosition, Delta: -1}
	case oldPosition > newPosition:
		return Shift{From: newPosition, To: oldPosition - 1, Delta: 1}
	default:
		return Shift{}
	}
}

// ValidPosition reports whether position addresses an item in a list of count items
func ValidPosition(count, position int) bool {
	return position >= 1 && position <= count
}

// IsDense reports whether positions are exactly 1..len(positions)
func IsDense(positions []int) bool {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	for i, p := range sorted {
		if p != i+1 {
			return false
		}
	}
	return true
}
