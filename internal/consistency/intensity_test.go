package consistency_test

import (
	"testing"

	"github.com/limbo/lifeboard/internal/consistency"
	"github.com/limbo/lifeboard/pkg/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntensity(t *testing.T) {
	testCases := []struct {
		Desc      string
		Completed int
		Total     int
		Ratio     float64
		Bucket    int
	}{
		{Desc: "all done", Completed: 4, Total: 4, Ratio: 1.0, Bucket: 4},
		{Desc: "nothing done", Completed: 0, Total: 5, Ratio: 0.0, Bucket: 0},
		{Desc: "boundary 0.6 inclusive", Completed: 3, Total: 5, Ratio: 0.6, Bucket: 2},
		{Desc: "boundary 0.8 inclusive", Completed: 4, Total: 5, Ratio: 0.8, Bucket: 3},
		{Desc: "boundary 0.3 inclusive", Completed: 3, Total: 10, Ratio: 0.3, Bucket: 1},
		{Desc: "just below 0.3", Completed: 2, Total: 7, Ratio: 2.0 / 7.0, Bucket: 0},
		{Desc: "no total", Completed: 3, Total: 0, Ratio: 0, Bucket: 0},
		{Desc: "over-complete clamps", Completed: 6, Total: 4, Ratio: 1.0, Bucket: 4},
		{Desc: "negative clamps", Completed: -1, Total: 4, Ratio: 0, Bucket: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ratio, bucket := consistency.Intensity(tc.Completed, tc.Total)
			assert.InDelta(t, tc.Ratio, ratio, 1e-9)
			assert.Equal(t, tc.Bucket, bucket)
		})
	}
}

func TestHeatmap(t *testing.T) {
	from := dates.MustParse("2024-01-01")
	to := dates.MustParse("2024-01-03")
	completed := map[dates.Date]int{
		from:            2,
		from.AddDays(2): 1,
	}
	cells := consistency.Heatmap(from, to, completed, func(dates.Date) int { return 2 })
	require.Len(t, cells, 3)
	assert.Equal(t, 4, cells[0].Bucket)
	assert.Equal(t, 0, cells[1].Bucket)
	assert.Equal(t, 0, cells[1].CompletedCount)
	assert.Equal(t, 1, cells[2].Bucket)
	assert.InDelta(t, 0.5, cells[2].Ratio, 1e-9)
	assert.Equal(t, "2024-01-03", cells[2].Date.String())
}
