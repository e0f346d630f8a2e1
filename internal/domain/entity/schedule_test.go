package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeWeekSchedule_FillsMissingDaysAsClosed(t *testing.T) {
	input := []ScheduleEntry{
		{Day: "Monday", OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}

	schedule := NormalizeWeekSchedule(input)

	require.Len(t, schedule, 7)
	assert.Equal(t, "Monday", schedule[0].Day)
	assert.False(t, schedule[0].Closed)
	require.NotNil(t, schedule[0].OpensAt)
	assert.Equal(t, "09:00", *schedule[0].OpensAt)
	require.NotNil(t, schedule[0].ClosesAt)
	assert.Equal(t, "17:00", *schedule[0].ClosesAt)

	for _, entry := range schedule[1:] {
		assert.True(t, entry.Closed, "day %s should be closed", entry.Day)
		assert.Nil(t, entry.OpensAt)
		assert.Nil(t, entry.ClosesAt)
	}
}

func TestNormalizeWeekSchedule_EmptyInputYieldsSevenClosedDays(t *testing.T) {
	schedule := NormalizeWeekSchedule(nil)

	require.Len(t, schedule, 7)
	for i, entry := range schedule {
		assert.Equal(t, CanonicalWeekdays[i], entry.Day)
		assert.True(t, entry.Closed)
	}
}

func TestNormalizeWeekSchedule_CanonicalOrderRegardlessOfInputOrder(t *testing.T) {
	input := []ScheduleEntry{
		{Day: "Sunday", OpensAt: strPtr("10:00"), ClosesAt: strPtr("14:00")},
		{Day: "Monday", OpensAt: strPtr("09:00"), ClosesAt: strPtr("17:00")},
	}

	schedule := NormalizeWeekSchedule(input)

	require.Len(t, schedule, 7)
	for i, entry := range schedule {
		assert.Equal(t, CanonicalWeekdays[i], entry.Day)
	}
	assert.False(t, schedule[0].Closed)
	assert.False(t, schedule[6].Closed)
}

func TestNormalizeWeekSchedule_DropsUnknownDaysAndClearsTimesOnClosed(t *testing.T) {
	input := []ScheduleEntry{
		{Day: "Funday", OpensAt: strPtr("08:00"), ClosesAt: strPtr("20:00")},
		{Day: "Friday", OpensAt: strPtr("08:00"), ClosesAt: strPtr("20:00"), Closed: true},
	}

	schedule := NormalizeWeekSchedule(input)

	require.Len(t, schedule, 7)
	friday := schedule[4]
	assert.Equal(t, "Friday", friday.Day)
	assert.True(t, friday.Closed)
	assert.Nil(t, friday.OpensAt)
	assert.Nil(t, friday.ClosesAt)
}
