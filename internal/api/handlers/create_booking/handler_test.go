package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"ownerId":999,"caretakerId":2,"serviceId":3,"petId":4,"start":"2024-06-01T10:00:00Z","end":"2024-06-03T10:00:00Z"}`

func serve(uc *fakeUseCase, userID int64, payload string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID: 10, OwnerID: 1, CaretakerID: 2, ServiceID: 3, PetID: 4,
		Start: start, End: end, Status: "pending", TotalPrice: 75,
		CreatedAt: start, UpdatedAt: start,
	}}

	rec := serve(uc, 1, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.OwnerID, "owner comes from the authenticated user, not the body")
	assert.True(t, uc.got.Start.Equal(start))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 75.0, resp.TotalPrice)
	assert.Equal(t, 3, resp.DurationDays)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest, ""},
		{"caretaker not found", createBooking.ErrCaretakerNotFound, http.StatusNotFound, ""},
		{"invalid service", createBooking.ErrInvalidServiceReference, http.StatusBadRequest, ""},
		{"pet not owned", createBooking.ErrPetNotOwned, http.StatusForbidden, ""},
		{"unavailable", &createBooking.UnavailableError{Day: "2024-06-02"}, http.StatusBadRequest, "2024-06-02"},
		{"capacity", createBooking.ErrCapacityExceeded, http.StatusConflict, ""},
		{"concurrent", createBooking.ErrConcurrentUpdate, http.StatusConflict, ""},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, 1, body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantText != "" {
				assert.Contains(t, rec.Body.String(), tt.wantText)
			}
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, 1, `{"caretakerId":2,"start":"01.06.2024"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(uc, 1, `{"unknown":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(uc, 0, body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Nil(t, uc.got)
}
