package update_booking_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/domain"
	updateStatus "github.com/m04kA/SMC-PetCareService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeUseCase struct {
	got  *updateStatus.Request
	resp *updateStatus.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateStatus.Request) (*updateStatus.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, path, payload string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(payload))
	req = req.WithContext(middleware.WithUserID(req.Context(), 2))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &updateStatus.Response{
		ID: 7, OwnerID: 1, CaretakerID: 2, Status: "accepted", Changed: true,
		Start: now, End: now.Add(24 * time.Hour), CreatedAt: now, UpdatedAt: now,
	}}

	rec := serve(uc, "/bookings/7/status", `{"status":"accepted"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.BookingID)
	assert.Equal(t, int64(2), uc.got.ActorID)
	assert.Equal(t, "accepted", uc.got.Status)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, 2, resp.DurationDays)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid status", updateStatus.ErrInvalidInput, http.StatusBadRequest},
		{"not found", updateStatus.ErrBookingNotFound, http.StatusNotFound},
		{"not caretaker", updateStatus.ErrAccessDenied, http.StatusForbidden},
		{"bad transition", &domain.TransitionError{From: "completed", To: "pending"}, http.StatusBadRequest},
		{"capacity", updateStatus.ErrCapacityExceeded, http.StatusConflict},
		{"concurrent", updateStatus.ErrConcurrentUpdate, http.StatusConflict},
		{"internal", updateStatus.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "/bookings/7/status", `{"status":"pending"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidPath(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/bookings/abc/status", `{"status":"accepted"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
