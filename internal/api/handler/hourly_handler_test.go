package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/PunisherCE/Parqueaderos/internal/domain"
)

func normalizeRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/plates/normalize", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	NewHourlyHandler(nil).NormalizePlate(c)
	return w
}

func TestNormalizePlateEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantPlate    string
		wantComplete bool
	}{
		{"hyphen appended after third letter", `{"previous":"AB","text":"abc"}`, "ABC-", false},
		{"complete plate", `{"previous":"ABC-12","text":"ABC-123"}`, "ABC-123", true},
		{"rejected keystroke dropped", `{"previous":"ABC-1","text":"ABC-1x"}`, "ABC-1", false},
		{"accented keystroke dropped", `{"previous":"AB","text":"ABÑ"}`, "AB", false},
		{"field cleared", `{"previous":"ABC-12","text":""}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := normalizeRequest(t, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var got domain.NormalizedPlateDTO
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if got.Plate != tt.wantPlate || got.Complete != tt.wantComplete {
				t.Errorf("got %+v, want plate %q complete %v", got, tt.wantPlate, tt.wantComplete)
			}
		})
	}
}

func TestNormalizePlateEndpointBadBody(t *testing.T) {
	if w := normalizeRequest(t, `{"previous":`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
