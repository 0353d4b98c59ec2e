package chi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rawgroundbeef/x402check"
	x402http "github.com/rawgroundbeef/x402check/http"
)

const document = `{
	"x402Version": 1,
	"accepts": [
		{
			"scheme": "exact",
			"network": "eip155:8453",
			"amount": "1000000",
			"asset": "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
			"payTo": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
		}
	],
	"resource": {"url": "https://api.example.com/reports"}
}`

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	h, err := x402http.NewHandler(&x402http.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewHandler() error: %v", err)
	}
	return Routes(h)
}

func TestRoutesValidate(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(document))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result x402check.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not a validation result: %v", err)
	}
	if !result.Valid {
		t.Errorf("result.Valid = false, errors: %+v", result.Errors)
	}
}

func TestRoutesHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRoutesUnknownPath(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
