package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mkShift(id, day, start, end string) Shift {
	st, _ := time.Parse("2006-01-02 15:04", day+" "+start)
	en, _ := time.Parse("2006-01-02 15:04", day+" "+end)
	return Shift{
		ID:        id,
		CityID:    "Mumbai",
		StartTime: st.UTC(),
		EndTime:   en.UTC(),
		Status:    StatusAvailable,
	}
}

func TestOverlaps_DifferentDates(t *testing.T) {
	a := mkShift("1", "2024-03-01", "09:00", "17:00")
	b := mkShift("2", "2024-03-02", "09:00", "17:00")

	assert.False(t, a.Overlaps(&b))
	assert.False(t, b.Overlaps(&a))
}

func TestOverlaps_TouchingBoundaries(t *testing.T) {
	a := mkShift("1", "2024-03-01", "09:00", "12:00")
	b := mkShift("2", "2024-03-01", "12:00", "15:00")

	assert.False(t, a.Overlaps(&b), "touching endpoints must not count as overlap")
	assert.False(t, b.Overlaps(&a))
}

func TestOverlaps_Intersecting(t *testing.T) {
	a := mkShift("1", "2024-03-01", "09:00", "13:00")
	b := mkShift("2", "2024-03-01", "12:00", "16:00")

	assert.True(t, a.Overlaps(&b))
	assert.True(t, b.Overlaps(&a), "overlap must be symmetric")
}

func TestOverlaps_Containment(t *testing.T) {
	outer := mkShift("1", "2024-03-01", "08:00", "20:00")
	inner := mkShift("2", "2024-03-01", "10:00", "12:00")

	assert.True(t, outer.Overlaps(&inner))
	assert.True(t, inner.Overlaps(&outer))
}

func TestOverlaps_ZeroDurationShift(t *testing.T) {
	degenerate := mkShift("1", "2024-03-01", "10:00", "10:00")
	other := mkShift("2", "2024-03-01", "09:00", "12:00")

	assert.False(t, degenerate.Overlaps(&other))
	assert.False(t, other.Overlaps(&degenerate))
}

func TestIsFuture(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-03-01T10:00:00Z")

	past := mkShift("1", "2024-03-01", "08:00", "09:00")
	startingNow := mkShift("2", "2024-03-01", "10:00", "12:00")
	future := mkShift("3", "2024-03-01", "10:01", "12:00")

	assert.False(t, past.IsFuture(now))
	assert.False(t, startingNow.IsFuture(now), "a shift starting exactly now is not future")
	assert.True(t, future.IsFuture(now))
}

func TestShiftDate(t *testing.T) {
	s := mkShift("1", "2024-03-02", "09:00", "17:00")
	assert.Equal(t, "2024-03-02", s.Date())
}

func TestTabIsValid(t *testing.T) {
	assert.True(t, TabAvailable.IsValid())
	assert.True(t, TabBooked.IsValid())
	assert.False(t, Tab("cancelled").IsValid())
	assert.False(t, Tab("").IsValid())
}
