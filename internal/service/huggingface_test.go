package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urbandash/internal/config"
)

func TestHuggingFaceClient_Generate(t *testing.T) {
	var gotMethod, gotAuth, gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text": "  {\"attribute\": \"height\", \"operator\": \">\", \"value\": 100}  "}]`))
	}))
	defer server.Close()

	client := NewHuggingFaceClient(&config.HuggingFaceConfig{
		APIKey:  "test-key",
		APIURL:  server.URL,
		Timeout: 5,
	})

	text, err := client.Generate(context.Background(), "Extract a JSON filter")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if text != `{"attribute": "height", "operator": ">", "value": 100}` {
		t.Errorf("Expected trimmed generated text, got %q", text)
	}
	if gotMethod != "POST" {
		t.Errorf("Expected POST request, got %s", gotMethod)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
	if gotBody != `{"inputs":"Extract a JSON filter"}` {
		t.Errorf("Expected inputs payload, got %s", gotBody)
	}
}

func TestHuggingFaceClient_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "upstream failure status",
			status:  http.StatusServiceUnavailable,
			body:    `{"error": "model is loading"}`,
			wantErr: "status 503",
		},
		{
			name:    "unauthorized without credential",
			status:  http.StatusUnauthorized,
			body:    `{"error": "authorization required"}`,
			wantErr: "status 401",
		},
		{
			name:    "undecodable body",
			status:  http.StatusOK,
			body:    `this is not json`,
			wantErr: "unmarshal",
		},
		{
			name:    "empty completion list",
			status:  http.StatusOK,
			body:    `[]`,
			wantErr: "no completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewHuggingFaceClient(&config.HuggingFaceConfig{
				APIKey:  "test-key",
				APIURL:  server.URL,
				Timeout: 5,
			})

			text, err := client.Generate(context.Background(), "prompt")
			if err == nil {
				t.Fatalf("Expected error, got text %q", text)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestHuggingFaceClient_GenerateUnreachable(t *testing.T) {
	client := NewHuggingFaceClient(&config.HuggingFaceConfig{
		APIKey:  "test-key",
		APIURL:  "http://127.0.0.1:0",
		Timeout: 1,
	})

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("Expected error for unreachable endpoint")
	}
}
