package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

func TestClient_GetService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/services/3" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id":3,"caretakerId":2,"name":"Day care","price":25.5,"enabled":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, logger.NewNop())

	service, err := client.GetService(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), service.CaretakerID)
	assert.Equal(t, 25.5, service.Price)

	_, err = client.GetService(context.Background(), 4)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
