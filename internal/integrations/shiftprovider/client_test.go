package shiftprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListShifts_DecodesAndConverts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shifts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"s1","area":"Mumbai","booked":false,"startTime":1709287200000,"endTime":1709301600000,"position":"Senior Nurse","department":"Emergency"},
			{"id":"s2","area":"Delhi","booked":true,"startTime":1709290800000,"endTime":1709305200000,"position":"Junior Doctor","department":"ICU"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	shifts, err := client.ListShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, shifts, 2)

	assert.Equal(t, "s1", shifts[0].ID)
	assert.Equal(t, "Mumbai", shifts[0].CityID)
	assert.Equal(t, "Senior Nurse", shifts[0].Position)
	assert.Equal(t, domain.StatusAvailable, shifts[0].Status)
	assert.Equal(t, time.UnixMilli(1709287200000).UTC(), shifts[0].StartTime)
	assert.Equal(t, time.UnixMilli(1709301600000).UTC(), shifts[0].EndTime)

	assert.Equal(t, domain.StatusBooked, shifts[1].Status)
}

func TestListShifts_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	_, err := client.ListShifts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListShifts_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // рвём соединение заранее

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.ListShifts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBookShift_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shifts/s1/book", r.URL.Path)
		w.Write([]byte(`{"id":"s1","booked":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	assert.NoError(t, client.BookShift(context.Background(), "s1"))
}

func TestBookShift_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Shift not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.BookShift(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestBookShift_ConflictCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Shift overlaps with another booked shift"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.BookShift(context.Background(), "s1")
	require.ErrorIs(t, err, ErrShiftConflict)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestCancelShift_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shifts/s2/cancel", r.URL.Path)
		w.Write([]byte(`{"id":"s2","booked":false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	assert.NoError(t, client.CancelShift(context.Background(), "s2"))
}

func TestCancelShift_ConflictWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, nopLogger{})

	err := client.CancelShift(context.Background(), "s2")
	assert.ErrorIs(t, err, ErrShiftConflict)
}
