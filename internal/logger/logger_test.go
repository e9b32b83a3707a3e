package logger

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request ID on fresh context")
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("expected non-empty request ID")
	}

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	if !ok {
		t.Fatal("expected request ID to be present")
	}
	if got != id {
		t.Fatalf("expected %q, got %q", id, got)
	}
}

func TestFromContextWithoutID(t *testing.T) {
	log := FromContext(context.Background())
	if log == nil {
		t.Fatal("expected a logger even without a request ID")
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		if seen[id] {
			t.Fatalf("duplicate request ID generated: %s", id)
		}
		seen[id] = true
	}
}
