package consistency

import (
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/limbo/lifeboard/pkg/entity"
)

// Intensity turns completed/total into a ratio in [0, 1] and a heatmap bucket 0..4.
func Intensity(completed, total int) (ratio float64, bucket int) {
	if total > 0 {
		ratio = float64(completed) / float64(total)
	}
	ratio = min(max(ratio, 0), 1)
	switch {
	case ratio >= 1.0:
		bucket = 4
	case ratio >= 0.8:
		bucket = 3
	case ratio >= 0.6:
		bucket = 2
	case ratio >= 0.3:
		bucket = 1
	}
	return ratio, bucket
}

func DayIntensityOf(day dates.Date, completed, total int) entity.DayIntensity {
	ratio, bucket := Intensity(completed, total)
	return entity.DayIntensity{
		Date:           day,
		CompletedCount: completed,
		TotalPossible:  total,
		Ratio:          ratio,
		Bucket:         bucket,
	}
}

// Heatmap builds one cell per day from from to to inclusive.
func Heatmap(from, to dates.Date, completed map[dates.Date]int, total func(dates.Date) int) []entity.DayIntensity {
	days := dates.Range(from, to)
	cells := make([]entity.DayIntensity, 0, len(days))
	for _, d := range days {
		cells = append(cells, DayIntensityOf(d, completed[d], total(d)))
	}
	return cells
}
