package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New("127.0.0.1:0").Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeResponse(t *testing.T, resp *http.Response) validateResponse {
	t.Helper()
	defer resp.Body.Close()

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	return body
}

func postValidate(t *testing.T, ts *httptest.Server, payload string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/validate", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	if body.Status != "running" {
		t.Errorf("expected status %q, got %q", "running", body.Status)
	}
}

func TestValidateEndpoint_ValidQuery(t *testing.T) {
	ts := newTestServer(t)

	resp := postValidate(t, ts, `{"query": "SELECT * FROM users;"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body := decodeResponse(t, resp)
	if !body.Valid {
		t.Errorf("expected valid outcome, got error %q: %q", body.ErrorType, body.ErrorMessage)
	}
	if body.Message == "" {
		t.Error("expected a confirmation message")
	}
}

func TestValidateEndpoint_InvalidQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		errorType string
	}{
		{"syntax error", "SELECT name, FROM users;", "Syntax Error"},
		{"lexical error", "SELECT * FROM t WHERE c = 5$;", "Lexical Error"},
	}

	ts := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, _ := json.Marshal(map[string]string{"query": tt.query})
			resp := postValidate(t, ts, string(payload))

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.StatusCode)
			}

			body := decodeResponse(t, resp)
			if body.Valid {
				t.Fatal("expected invalid outcome")
			}
			if body.ErrorType != tt.errorType {
				t.Errorf("expected error_type %q, got %q", tt.errorType, body.ErrorType)
			}
			if body.ErrorMessage == "" {
				t.Error("expected a non-empty error_message")
			}
		})
	}
}

func TestValidateEndpoint_MissingQueryField(t *testing.T) {
	ts := newTestServer(t)

	for _, payload := range []string{`{}`, `not json`, ``} {
		resp := postValidate(t, ts, payload)
		body := decodeResponse(t, resp)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, resp.StatusCode)
		}
		if body.Valid {
			t.Errorf("payload %q: expected invalid outcome", payload)
		}
	}
}

func TestValidateEndpoint_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/validate")
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", resp.StatusCode)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/validate", nil)
	if err != nil {
		t.Fatalf("failed to build request: %s", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected status 204 for preflight, got %d", resp.StatusCode)
	}
	if origin := resp.Header.Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected wildcard allow-origin, got %q", origin)
	}
}
