package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Try3D/joy-pad/internal/hub"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateCode_Shape(t *testing.T) {
	req := require.New(t)

	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		req.NoError(err)
		req.Len(code, 6)
		for _, c := range code {
			req.True(c >= 'A' && c <= 'Z', "unexpected rune %q in code %s", c, code)
		}
	}
}

func TestCreateRoom_ReturnsFreshCode(t *testing.T) {
	req := require.New(t)
	h := hub.NewHub(context.Background(), zap.NewNop().Sugar())
	srv := httptest.NewServer(SetupRoutes(h, zap.NewNop().Sugar()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/rooms", "application/json", nil)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusCreated, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Len(body.Code, 6)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
