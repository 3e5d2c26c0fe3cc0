package consistency_test

import (
	"testing"
	"time"

	"github.com/limbo/lifeboard/internal/consistency"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	testCases := []struct {
		Desc   string
		Input  string
		Ok     bool
		Result consistency.Slot
	}{
		{Desc: "full form", Input: "09:00-10:00", Ok: true, Result: consistency.Slot{Start: 540, End: 600}},
		{Desc: "hours only", Input: "9-17", Ok: true, Result: consistency.Slot{Start: 540, End: 1020}},
		{Desc: "mixed", Input: "7:30-8", Ok: true, Result: consistency.Slot{Start: 450, End: 480}},
		{Desc: "spaces around sides", Input: " 06:15 - 07:45 ", Ok: true, Result: consistency.Slot{Start: 375, End: 465}},
		{Desc: "overnight", Input: "23:00-01:00", Ok: true, Result: consistency.Slot{Start: 1380, End: 60}},
		{Desc: "day bounds", Input: "0:00-23:59", Ok: true, Result: consistency.Slot{Start: 0, End: 1439}},
		{Desc: "missing separator", Input: "09:00 10:00"},
		{Desc: "two separators", Input: "09:00-10:00-11:00"},
		{Desc: "empty", Input: ""},
		{Desc: "empty side", Input: "09:00-"},
		{Desc: "hour out of range", Input: "24:00-01:00"},
		{Desc: "minute out of range", Input: "09:60-10:00"},
		{Desc: "non numeric", Input: "ab:cd-10:00"},
		{Desc: "one digit minute", Input: "09:5-10:00"},
		{Desc: "three digit hour", Input: "009:00-10:00"},
		{Desc: "signed", Input: "+9:00-10:00"},
		{Desc: "seconds", Input: "09:00:00-10:00"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var (
				slot consistency.Slot
				ok   bool
			)
			assert.NotPanics(t, func() { slot, ok = consistency.ParseSlot(tc.Input) })
			assert.Equal(t, tc.Ok, ok)
			if tc.Ok {
				assert.Equal(t, tc.Result, slot)
				assert.GreaterOrEqual(t, slot.Start, 0)
				assert.LessOrEqual(t, slot.End, 1439)
			}
		})
	}
}

func TestIsWithinBoundaries(t *testing.T) {
	// 09:00-10:00
	assert.True(t, consistency.IsWithin(540, 540, 600))
	assert.True(t, consistency.IsWithin(599, 540, 600))
	assert.False(t, consistency.IsWithin(600, 540, 600))
	assert.False(t, consistency.IsWithin(539, 540, 600))

	// 23:00-01:00
	assert.True(t, consistency.IsWithin(0, 1380, 60))
	assert.True(t, consistency.IsWithin(1381, 1380, 60))
	assert.True(t, consistency.IsWithin(1380, 1380, 60))
	assert.False(t, consistency.IsWithin(1379, 1380, 60))
	assert.False(t, consistency.IsWithin(60, 1380, 60))
}

func TestSlotHelpers(t *testing.T) {
	slot := consistency.Slot{Start: 1380, End: 60}
	assert.Equal(t, 120, slot.Duration())
	assert.Equal(t, "23:00-01:00", slot.String())
	assert.Equal(t, 75, consistency.Slot{Start: 390, End: 465}.Duration())

	testCases := []struct {
		Desc     string
		A, B     string
		Overlaps bool
	}{
		{Desc: "disjoint", A: "09:00-10:00", B: "10:00-11:00", Overlaps: false},
		{Desc: "nested", A: "09:00-12:00", B: "10:00-11:00", Overlaps: true},
		{Desc: "partial", A: "09:00-10:30", B: "10:00-11:00", Overlaps: true},
		{Desc: "overnight vs early morning", A: "23:00-01:00", B: "00:30-02:00", Overlaps: true},
		{Desc: "overnight vs evening", A: "23:00-01:00", B: "21:00-23:00", Overlaps: false},
		{Desc: "both overnight", A: "22:00-02:00", B: "23:00-01:00", Overlaps: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			a, ok := consistency.ParseSlot(tc.A)
			require.True(t, ok)
			b, ok := consistency.ParseSlot(tc.B)
			require.True(t, ok)
			assert.Equal(t, tc.Overlaps, consistency.Overlaps(a, b))
			assert.Equal(t, tc.Overlaps, consistency.Overlaps(b, a))
		})
	}
}

func TestCurrentBlock(t *testing.T) {
	blocks := []entity.DailyBlock{
		{TimeSlot: "garbage", Task: "broken"},
		{TimeSlot: "09:00-10:00", Task: "deep work"},
		{TimeSlot: "23:00-01:00", Task: "wind down"},
	}
	at := func(h, m int) time.Time { return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC) }

	block, ok := consistency.CurrentBlock(blocks, at(9, 30))
	require.True(t, ok)
	assert.Equal(t, "deep work", block.Task)

	block, ok = consistency.CurrentBlock(blocks, at(0, 15))
	require.True(t, ok)
	assert.Equal(t, "wind down", block.Task)

	_, ok = consistency.CurrentBlock(blocks, at(10, 0))
	assert.False(t, ok)

	_, ok = consistency.CurrentBlock(nil, at(10, 0))
	assert.False(t, ok)
}

func TestFirstOverlap(t *testing.T) {
	blocks := []entity.DailyBlock{
		{TimeSlot: "09:00-10:00", Task: "deep work"},
		{TimeSlot: "??", Task: "broken"},
	}
	slot, _ := consistency.ParseSlot("09:30-11:00")
	block, ok := consistency.FirstOverlap(blocks, slot)
	require.True(t, ok)
	assert.Equal(t, "deep work", block.Task)

	slot, _ = consistency.ParseSlot("10:00-11:00")
	_, ok = consistency.FirstOverlap(blocks, slot)
	assert.False(t, ok)
}
