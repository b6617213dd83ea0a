// Package webmatetest provides helpers for testing code built on the webmate
// transport against an httptest server.
package webmatetest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	webmate "github.com/testfabrik/webmate-go-client"
)

// NewClient starts an httptest server running handler and returns a
// connected client for it. Retries are disabled. Both are closed when the
// test ends.
func NewClient(t *testing.T, handler http.HandlerFunc, opts ...webmate.Option) *webmate.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := webmate.New(server.URL, append([]webmate.Option{webmate.WithRetryCount(0)}, opts...)...)
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

// NewDeadClient returns a connected client whose server is already gone, so
// every request fails without a response.
func NewDeadClient(t *testing.T, opts ...webmate.Option) *webmate.Client {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	client := webmate.New(server.URL, append([]webmate.Option{webmate.WithRetryCount(0)}, opts...)...)
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	server.Close()
	t.Cleanup(client.Close)

	return client
}

// JSON writes body with a JSON content type and the given status.
func JSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
