// Package consistency computes streaks, completion intensity and time-block
// placement. Everything here is pure and never fails loudly: malformed input
// degrades to "nothing".
package consistency

import (
	"fmt"
	"strings"
	"time"

	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

const minutesPerDay = 24 * 60

// Slot is a daily interval in minutes since midnight, half-open [Start, End).
// End before Start means the slot crosses midnight.
type Slot struct {
	Start int
	End   int
}

// ParseSlot parses "H[:MM]-H[:MM]". ok is false for anything malformed or out of range.
func ParseSlot(s string) (slot Slot, ok bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Slot{}, false
	}
	start, ok := parseClock(parts[0])
	if !ok {
		return Slot{}, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return Slot{}, false
	}
	return Slot{Start: start, End: end}, true
}

// ParseClock parses a single "H[:MM]" time of day into minutes since midnight.
func ParseClock(s string) (int, bool) {
	return parseClock(s)
}

func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	hourPart, minutePart, hasMinutes := strings.Cut(s, ":")
	if len(hourPart) < 1 || len(hourPart) > 2 {
		return 0, false
	}
	hour, ok := digits(hourPart)
	if !ok || hour > 23 {
		return 0, false
	}
	minute := 0
	if hasMinutes {
		if len(minutePart) != 2 {
			return 0, false
		}
		minute, ok = digits(minutePart)
		if !ok || minute > 59 {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

func digits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// IsWithin reports whether current falls inside [start, end), wrapping past midnight when end < start.
func IsWithin(current, start, end int) bool {
	if end < start {
		return current >= start || current < end
	}
	return current >= start && current < end
}

func (s Slot) Contains(minute int) bool {
	return IsWithin(minute, s.Start, s.End)
}

func (s Slot) Overnight() bool {
	return s.End < s.Start
}

// Duration in minutes. A slot with equal ends is empty.
func (s Slot) Duration() int {
	if s.Overnight() {
		return minutesPerDay - s.Start + s.End
	}
	return s.End - s.Start
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.Start/60, s.Start%60, s.End/60, s.End%60)
}

// segments splits an overnight slot into same-day pieces.
func (s Slot) segments() [][2]int {
	if s.Overnight() {
		return [][2]int{{s.Start, minutesPerDay}, {0, s.End}}
	}
	return [][2]int{{s.Start, s.End}}
}

// Overlaps reports whether two slots share at least one minute.
func Overlaps(a, b Slot) bool {
	for _, x := range a.segments() {
		for _, y := range b.segments() {
			if x[0] < y[1] && y[0] < x[1] {
				return true
			}
		}
	}
	return false
}

// CurrentBlock returns the first block whose slot holds now. Blocks with
// unparsable slots are skipped.
func CurrentBlock(blocks []entity.DailyBlock, now time.Time) (*entity.DailyBlock, bool) {
	minute := dates.MinuteOfDay(now)
	for i := range blocks {
		slot, ok := ParseSlot(blocks[i].TimeSlot)
		if !ok {
			continue
		}
		if slot.Contains(minute) {
			return &blocks[i], true
		}
	}
	return nil, false
}

// FirstOverlap returns the first block in blocks overlapping slot.
func FirstOverlap(blocks []entity.DailyBlock, slot Slot) (*entity.DailyBlock, bool) {
	for i := range blocks {
		other, ok := ParseSlot(blocks[i].TimeSlot)
		if !ok {
			continue
		}
		if Overlaps(slot, other) {
			return &blocks[i], true
		}
	}
	return nil, false
}
