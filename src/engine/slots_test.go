package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestParseOpeningHours(t *testing.T) {
	tests := []struct {
		in   string
		want OpeningHours
	}{
		{"10:00-22:00", OpeningHours{StartHour: 10, EndHour: 22}},
		{"9:30-17:45", OpeningHours{StartHour: 9, StartMinute: 30, EndHour: 17, EndMinute: 45}},
		{"11:00 - 23:00", OpeningHours{StartHour: 11, EndHour: 23}},
		{"Mon-Sun 08:00-20:00", OpeningHours{StartHour: 8, EndHour: 20}},
		{"garbage", DefaultOpeningHours},
		{"", DefaultOpeningHours},
		{"25:00", DefaultOpeningHours},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOpeningHours(tt.in))
		})
	}
}

func TestGenerateTimeSlotsFutureDate(t *testing.T) {
	hours := ParseOpeningHours("11:00-13:00")
	now := date(2025, time.March, 10, 9, 0)
	slots := GenerateTimeSlots(hours, date(2025, time.March, 12, 0, 0), now)
	assert.Equal(t, []string{"11:00", "11:30", "12:00", "12:30"}, slots)
}

func TestGenerateTimeSlotsDropsPastSlotsToday(t *testing.T) {
	hours := ParseOpeningHours("11:00-13:00")
	now := date(2025, time.March, 10, 12, 10)
	slots := GenerateTimeSlots(hours, date(2025, time.March, 10, 0, 0), now)
	assert.Equal(t, []string{"12:30"}, slots)
}

func TestGenerateTimeSlotsLastSlotMustFitBeforeClosing(t *testing.T) {
	hours := ParseOpeningHours("18:00-19:45")
	now := date(2025, time.March, 10, 8, 0)
	slots := GenerateTimeSlots(hours, date(2025, time.March, 11, 0, 0), now)
	// 19:30 would end at 20:00, past closing, so it is excluded.
	assert.Equal(t, []string{"18:00", "18:30", "19:00"}, slots)
}

func TestGenerateTimeSlotsMalformedHoursMatchesDefault(t *testing.T) {
	now := date(2025, time.March, 10, 9, 0)
	day := date(2025, time.March, 12, 0, 0)
	got := GenerateTimeSlots(ParseOpeningHours("garbage"), day, now)
	want := GenerateTimeSlots(ParseOpeningHours("11:00-22:00"), day, now)
	assert.Equal(t, want, got)
	assert.Equal(t, "11:00", got[0])
	assert.Equal(t, "21:30", got[len(got)-1])
}

func TestGenerateTimeSlotsAllPastToday(t *testing.T) {
	hours := ParseOpeningHours("11:00-13:00")
	now := date(2025, time.March, 10, 23, 0)
	slots := GenerateTimeSlots(hours, date(2025, time.March, 10, 0, 0), now)
	assert.Empty(t, slots)
}

func TestSlotSequenceRestartable(t *testing.T) {
	hours := ParseOpeningHours("11:00-12:30")
	now := date(2025, time.March, 1, 0, 0)
	seq := NewSlotSequence(hours, date(2025, time.March, 2, 0, 0), now)

	var first []string
	for {
		label, ok := seq.Next()
		if !ok {
			break
		}
		first = append(first, label)
	}
	assert.Equal(t, []string{"11:00", "11:30", "12:00"}, first)

	_, ok := seq.Next()
	assert.False(t, ok, "exhausted sequence stays exhausted")

	seq.Reset()
	label, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, "11:00", label)
}

func TestGenerateTimeSlotsChronologicalNoDuplicates(t *testing.T) {
	hours := ParseOpeningHours("10:00-22:00")
	now := date(2025, time.March, 10, 9, 0)
	slots := GenerateTimeSlots(hours, date(2025, time.March, 11, 0, 0), now)
	seen := map[string]bool{}
	for i, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
		if i > 0 {
			assert.Less(t, slots[i-1], s)
		}
	}
}
