package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithLookupID_And_LookupIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithLookupID(context.Background(), id)

	if got := LookupIDFromCtx(ctx); got != id.String() {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestLookupIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := LookupIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestLookupIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithLookupID(context.Background(), uuid.Nil)
	if got := LookupIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for uuid.Nil, got %q", got)
	}
}

func TestLookupIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), lookupIDKey, "not-a-uuid")
	if got := LookupIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}

func TestNewLookupContext_Unique(t *testing.T) {
	t.Parallel()

	a := LookupIDFromCtx(NewLookupContext(context.Background()))
	b := LookupIDFromCtx(NewLookupContext(context.Background()))
	if a == "" || b == "" {
		t.Fatal("expected generated lookup IDs")
	}
	if a == b {
		t.Fatal("expected distinct lookup IDs")
	}
}
