package get_caretaker_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getCalendar "github.com/m04kA/SMC-PetCareService/internal/usecase/get_caretaker_calendar"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeUseCase struct {
	got *getCalendar.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getCalendar.Response{
		CaretakerID: req.CaretakerID,
		MaxPets:     2,
		Days:        []getCalendar.Day{{Date: "2024-06-01", Open: true, Booked: 1, Free: 1}},
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/caretakers/{caretakerId}/calendar", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/caretakers/2/calendar?from=2024-06-01&to=2024-06-07")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), uc.got.CaretakerID)
	assert.Equal(t, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), uc.got.To)

	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.MaxPets)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, 1, resp.Days[0].Free)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{name: "missing to", target: "/caretakers/2/calendar?from=2024-06-01"},
		{name: "bad date", target: "/caretakers/2/calendar?from=01.06.2024&to=2024-06-07"},
		{name: "bad id", target: "/caretakers/x/calendar?from=2024-06-01&to=2024-06-07"},
		{name: "past", target: "/caretakers/2/calendar?from=2024-06-01&to=2024-06-07", err: getCalendar.ErrDateInPast},
		{name: "too long", target: "/caretakers/2/calendar?from=2024-06-01&to=2024-12-07", err: getCalendar.ErrRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
