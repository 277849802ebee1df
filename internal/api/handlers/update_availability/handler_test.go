package update_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/service/availability"
	"github.com/m04kA/SMC-PetCareService/internal/service/availability/models"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateAvailabilityRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AvailabilityResponse{
		CaretakerID:  req.UserID,
		MaxPets:      *req.MaxPets,
		BlockedDates: *req.BlockedDates,
		WeeklyOpen:   map[string]bool{"sun": false},
	}, nil
}

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/caretakers/me/availability", strings.NewReader(payload))
	req = req.WithContext(middleware.WithUserID(req.Context(), 5))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PassesPatchAndActor(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"maxPets":3,"blockedDates":["2024-06-02"],"weeklyOpen":{"sun":false}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(5), svc.got.UserID)
	assert.Equal(t, 3, *svc.got.MaxPets)
	assert.Equal(t, []string{"2024-06-02"}, *svc.got.BlockedDates)
	assert.Equal(t, map[string]bool{"sun": false}, svc.got.WeeklyOpen)
	assert.Contains(t, rec.Body.String(), `"maxPets":3`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid", availability.ErrInvalidInput, http.StatusBadRequest},
		{"user not found", availability.ErrUserNotFound, http.StatusNotFound},
		{"not caretaker", availability.ErrAccessDenied, http.StatusForbidden},
		{"internal", availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, `{"maxPets":2,"blockedDates":[]}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_UserIDInBodyIsNotAccepted(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"userId":99,"maxPets":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}
