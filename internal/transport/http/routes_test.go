package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"penciloid/pkg/config"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{SessionSecret: "test-secret-key-at-least-32-bytes-long"})
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v, want ok", resp["status"])
	}
}

func TestSolveHandlerUnknownFamily(t *testing.T) {
	router := setupRouter()
	w, resp := doJSON(t, router, "POST", "/api/zz/solve", SolveRequest{Problem: "..."})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["error"] == nil {
		t.Errorf("expected an error message")
	}
}

func TestSolveHandlerSlitherlinkConsistent(t *testing.T) {
	router := setupRouter()
	w, resp := doJSON(t, router, "POST", "/api/sl/solve", SolveRequest{Problem: "...\n...\n..."})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%v", w.Code, resp)
	}
	if resp["inconsistent"] != false {
		t.Errorf("inconsistent = %v, want false", resp["inconsistent"])
	}
	if resp["field"] == nil {
		t.Errorf("expected a rendered field in the response")
	}
}

func TestSolveHandlerParseErrorIsBadRequest(t *testing.T) {
	router := setupRouter()
	w, resp := doJSON(t, router, "POST", "/api/sl/solve", SolveRequest{Problem: "xx\nxx"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body=%v", w.Code, resp)
	}
}

func TestGenerateHandlerNumberlink(t *testing.T) {
	router := setupRouter()
	w, resp := doJSON(t, router, "POST", "/api/nl/generate", GenerateRequest{
		Height: 4, Width: 4, Seed: 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%v", w.Code, resp)
	}
	if resp["problem"] == nil || resp["token"] == nil {
		t.Errorf("expected problem and token in response, got %v", resp)
	}
}

func TestGenerateHandlerUnsupportedFamily(t *testing.T) {
	router := setupRouter()
	w, _ := doJSON(t, router, "POST", "/api/sl/generate", GenerateRequest{Height: 4, Width: 4})
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", w.Code)
	}
}

func TestSolveHandlerWithValidTokenSucceeds(t *testing.T) {
	router := setupRouter()
	_, genResp := doJSON(t, router, "POST", "/api/nl/generate", GenerateRequest{Height: 4, Width: 4, Seed: 1})
	problem, _ := genResp["problem"].(string)
	token, _ := genResp["token"].(string)
	if problem == "" || token == "" {
		t.Fatalf("generate did not return a problem/token pair: %v", genResp)
	}

	w, resp := doJSON(t, router, "POST", "/api/nl/solve", SolveRequest{Problem: problem, Token: token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%v", w.Code, resp)
	}
}

func TestSolveHandlerWithMalformedTokenIsUnauthorized(t *testing.T) {
	router := setupRouter()
	w, resp := doJSON(t, router, "POST", "/api/nl/solve", SolveRequest{
		Problem: "2 2\n1 .\n. 1",
		Token:   "not-a-real-token",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body=%v", w.Code, resp)
	}
}

func TestSolveHandlerWithWrongFamilyTokenIsUnauthorized(t *testing.T) {
	router := setupRouter()
	_, genResp := doJSON(t, router, "POST", "/api/nl/generate", GenerateRequest{Height: 4, Width: 4, Seed: 2})
	token, _ := genResp["token"].(string)

	w, resp := doJSON(t, router, "POST", "/api/sl/solve", SolveRequest{Problem: "...\n...\n...", Token: token})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body=%v", w.Code, resp)
	}
}
