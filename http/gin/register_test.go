package gin

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

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

func testEngine(t *testing.T, config *x402http.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if config == nil {
		config = &x402http.Config{}
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h, err := x402http.NewHandler(config)
	if err != nil {
		t.Fatalf("NewHandler() error: %v", err)
	}

	engine := gin.New()
	Register(engine, h)
	return engine
}

func TestRegisterValidate(t *testing.T) {
	engine := testEngine(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(document))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

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

func TestRegisterValidateStrict(t *testing.T) {
	engine := testEngine(t, nil)

	lowercased := strings.ReplaceAll(document,
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")

	req := httptest.NewRequest(http.MethodPost, "/validate?strict=1", strings.NewReader(lowercased))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result x402check.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not a validation result: %v", err)
	}
	if result.Valid {
		t.Error("strict validation accepted a document with warnings")
	}
}

func TestRegisterValidateTooLarge(t *testing.T) {
	engine := testEngine(t, &x402http.Config{MaxBodySize: 16})

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(document))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestRegisterValidateRemoteMissingURL(t *testing.T) {
	engine := testEngine(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/validate", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterHealth(t *testing.T) {
	engine := testEngine(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("health body = %s", rec.Body.String())
	}
}
