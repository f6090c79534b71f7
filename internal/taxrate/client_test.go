package taxrate

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Rate(t *testing.T) {
	var gotMethod, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("0.07"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	rate, err := client.Rate(context.Background(), "10001")
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	if rate != 0.07 {
		t.Errorf("rate = %f, want 0.07", rate)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotBody != "10001" {
		t.Errorf("request body = %q, want raw zip string", gotBody)
	}
}

func TestClient_Rate_TrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("0.05\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	rate, err := client.Rate(context.Background(), "10001")
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	if rate != 0.05 {
		t.Errorf("rate = %f, want 0.05", rate)
	}
}

func TestClient_Rate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "unparseable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not a number"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second)

			if _, err := client.Rate(context.Background(), "10001"); err == nil {
				t.Error("Rate() error = nil, want lookup failure")
			}
		})
	}
}

func TestClient_Rate_NetworkError(t *testing.T) {
	// Closed server, connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 1*time.Second)

	if _, err := client.Rate(context.Background(), "10001"); err == nil {
		t.Error("Rate() error = nil, want network failure")
	}
}

func TestClient_Rate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("0.07"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Rate(ctx, "10001"); err == nil {
		t.Error("Rate() error = nil, want context cancellation")
	}
}
