package cart

import (
	"context"
	"testing"
)

func TestMemorySlotStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySlotStore()

	if _, ok, err := s.Read(ctx, "a"); ok || err != nil {
		t.Fatalf("expected unwritten slot to be absent, ok=%v err=%v", ok, err)
	}

	if err := s.Write(ctx, "a", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	data, ok, err := s.Read(ctx, "a")
	if err != nil || !ok || string(data) != `[]` {
		t.Errorf("expected stored value back, got %q ok=%v err=%v", data, ok, err)
	}

	// Slots are independent per key.
	if _, ok, _ := s.Read(ctx, "b"); ok {
		t.Error("key b must be absent")
	}
}

func TestFileSlotStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileSlotStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, err := s.Read(ctx, "session-1"); ok || err != nil {
		t.Fatalf("expected unwritten slot to be absent, ok=%v err=%v", ok, err)
	}

	if err := s.Write(ctx, "session-1", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	data, ok, err := s.Read(ctx, "session-1")
	if err != nil || !ok || string(data) != `[{"id":1}]` {
		t.Errorf("expected stored value back, got %q ok=%v err=%v", data, ok, err)
	}

	// Overwrite, not append.
	if err := s.Write(ctx, "session-1", []byte(`[]`)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	data, _, _ = s.Read(ctx, "session-1")
	if string(data) != `[]` {
		t.Errorf("expected overwritten value, got %q", data)
	}
}
