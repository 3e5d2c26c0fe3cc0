package consistency

import (
	"slices"
	"time"

	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

// DateSet holds unique calendar days on which an activity happened.
type DateSet map[dates.Date]struct{}

func NewDateSet(days ...dates.Date) DateSet {
	set := make(DateSet, len(days))
	for _, d := range days {
		set.Add(d)
	}
	return set
}

// DateSetOf collapses timestamps into the calendar days they fall on in loc.
func DateSetOf(times []time.Time, loc *time.Location) DateSet {
	set := make(DateSet, len(times))
	for _, t := range times {
		set.Add(dates.Of(t.In(loc)))
	}
	return set
}

func (s DateSet) Add(d dates.Date) {
	if d.IsZero() {
		return
	}
	s[d] = struct{}{}
}

func (s DateSet) Has(d dates.Date) bool {
	_, ok := s[d]
	return ok
}

// Sorted returns the days in ascending order.
func (s DateSet) Sorted() []dates.Date {
	days := make([]dates.Date, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	slices.SortFunc(days, dates.Date.Compare)
	return days
}

// CurrentStreak counts consecutive days walking back from today. No activity today means 0.
func CurrentStreak(set DateSet, today dates.Date) int {
	streak := 0
	for d := today; set.Has(d); d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive days anywhere in history.
func LongestStreak(set DateSet) int {
	days := set.Sorted()
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// LastActive returns the most recent day in the set.
func LastActive(set DateSet) (dates.Date, bool) {
	var last dates.Date
	for d := range set {
		if last.IsZero() || d.After(last) {
			last = d
		}
	}
	return last, !last.IsZero()
}

func Summarize(activity string, set DateSet, today dates.Date) entity.StreakSummary {
	summary := entity.StreakSummary{
		Activity: activity,
		Current:  CurrentStreak(set, today),
		Longest:  LongestStreak(set),
	}
	if last, ok := LastActive(set); ok {
		summary.LastActive = &last
	}
	return summary
}
