package get_shift_feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
	shiftsService "github.com/m04kA/HSP-ShiftService/internal/service/shifts"
	"github.com/m04kA/HSP-ShiftService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeController struct {
	shifts     []domain.Shift
	refreshErr error
	pending    []string
}

func (f *fakeController) Refresh(ctx context.Context) ([]domain.Shift, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.shifts, nil
}

func (f *fakeController) PendingIDs() []string {
	return f.pending
}

func newTestUseCase(controller *fakeController) *UseCase {
	uc := NewUseCase(controller, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_BuildsGroupsAndCityCounts(t *testing.T) {
	controller := &fakeController{
		shifts: []domain.Shift{
			shiftAt("s2", "Mumbai", domain.StatusAvailable, "2024-03-03", 9, 17),
			shiftAt("s1", "Mumbai", domain.StatusAvailable, "2024-03-02", 9, 17),
			shiftAt("s3", "Delhi", domain.StatusBooked, "2024-03-02", 9, 17),
		},
	}
	uc := newTestUseCase(controller)

	resp, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable})
	require.NoError(t, err)

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, "2024-03-02", resp.Groups[0].Date)
	assert.Equal(t, "s1", resp.Groups[0].Shifts[0].ID)
	assert.Equal(t, "2024-03-03", resp.Groups[1].Date)
	assert.Equal(t, "s2", resp.Groups[1].Shifts[0].ID)

	// Города отсортированы по имени, счётчик — только свободные будущие смены
	require.Len(t, resp.Cities, 2)
	assert.Equal(t, "Delhi", resp.Cities[0].City.Name)
	assert.Equal(t, 0, resp.Cities[0].AvailableShifts)
	assert.Equal(t, "Mumbai", resp.Cities[1].City.Name)
	assert.Equal(t, 2, resp.Cities[1].AvailableShifts)
}

func TestExecute_CityFilterDoesNotAffectCounts(t *testing.T) {
	controller := &fakeController{
		shifts: []domain.Shift{
			shiftAt("m1", "Mumbai", domain.StatusAvailable, "2024-03-02", 9, 17),
			shiftAt("d1", "Delhi", domain.StatusAvailable, "2024-03-02", 9, 17),
		},
	}
	uc := newTestUseCase(controller)

	resp, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable, CityID: ptr.Ptr("Mumbai")})
	require.NoError(t, err)

	require.Len(t, resp.Groups, 1)
	require.Len(t, resp.Groups[0].Shifts, 1)
	assert.Equal(t, "m1", resp.Groups[0].Shifts[0].ID)

	// Счётчики отражают нефильтрованную коллекцию
	require.Len(t, resp.Cities, 2)
	assert.Equal(t, 1, resp.Cities[0].AvailableShifts)
	assert.Equal(t, 1, resp.Cities[1].AvailableShifts)
}

func TestExecute_MarksOverlappingShiftsNotBookable(t *testing.T) {
	controller := &fakeController{
		shifts: []domain.Shift{
			shiftAt("free", "Mumbai", domain.StatusAvailable, "2024-03-02", 9, 13),
			shiftAt("taken", "Mumbai", domain.StatusBooked, "2024-03-02", 12, 16),
			shiftAt("clear", "Mumbai", domain.StatusAvailable, "2024-03-02", 16, 20),
		},
	}
	uc := newTestUseCase(controller)

	resp, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable})
	require.NoError(t, err)

	require.Len(t, resp.Groups, 1)
	views := resp.Groups[0].Shifts
	require.Len(t, views, 2)

	assert.Equal(t, "free", views[0].ID)
	assert.False(t, views[0].Bookable, "overlaps a booked shift")
	assert.Equal(t, "clear", views[1].ID)
	assert.True(t, views[1].Bookable, "touching endpoints are not an overlap")
}

func TestExecute_MarksPendingShifts(t *testing.T) {
	controller := &fakeController{
		shifts: []domain.Shift{
			shiftAt("s1", "Mumbai", domain.StatusAvailable, "2024-03-02", 9, 13),
		},
		pending: []string{"s1"},
	}
	uc := newTestUseCase(controller)

	resp, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable})
	require.NoError(t, err)

	view := resp.Groups[0].Shifts[0]
	assert.True(t, view.Pending)
	assert.False(t, view.Bookable, "a shift under mutation is not bookable")
}

func TestExecute_InvalidTab(t *testing.T) {
	uc := newTestUseCase(&fakeController{})

	_, err := uc.Execute(context.Background(), &Request{Tab: domain.Tab("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FetchFailureIsDistinctFromEmptyFeed(t *testing.T) {
	controller := &fakeController{
		refreshErr: fmt.Errorf("%w: connection refused", shiftsService.ErrFetchFailed),
	}
	uc := newTestUseCase(controller)

	_, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.False(t, errors.Is(err, ErrInternal))
}

func TestExecute_EmptyCollectionGivesEmptyFeed(t *testing.T) {
	uc := newTestUseCase(&fakeController{shifts: []domain.Shift{}})

	resp, err := uc.Execute(context.Background(), &Request{Tab: domain.TabAvailable})
	require.NoError(t, err)
	assert.Empty(t, resp.Groups)
	assert.Empty(t, resp.Cities)
}
