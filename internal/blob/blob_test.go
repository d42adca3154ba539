package blob

import (
	"bytes"
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("load before any save reports absent", func(t *testing.T) {
		data, ok, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if ok || data != nil {
			t.Errorf("expected absent blob, got ok=%v data=%q", ok, data)
		}
	})

	t.Run("save then load round trips", func(t *testing.T) {
		if err := s.Save(ctx, []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Save: %v", err)
		}
		data, ok, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !ok || !bytes.Equal(data, []byte(`[{"id":"1"}]`)) {
			t.Errorf("round trip: ok=%v data=%q", ok, data)
		}
	})

	t.Run("save overwrites the whole value", func(t *testing.T) {
		if err := s.Save(ctx, []byte(`[]`)); err != nil {
			t.Fatalf("Save: %v", err)
		}
		data, _, _ := s.Load(ctx)
		if !bytes.Equal(data, []byte(`[]`)) {
			t.Errorf("expected overwritten value, got %q", data)
		}
	})

	t.Run("load returns a copy", func(t *testing.T) {
		s.Save(ctx, []byte("abc"))
		data, _, _ := s.Load(ctx)
		data[0] = 'x'
		fresh, _, _ := s.Load(ctx)
		if !bytes.Equal(fresh, []byte("abc")) {
			t.Errorf("mutating a loaded value leaked into the store: %q", fresh)
		}
	})

	t.Run("empty value is still present", func(t *testing.T) {
		s.Save(ctx, nil)
		_, ok, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !ok {
			t.Error("a saved empty value should report present")
		}
	})
}
