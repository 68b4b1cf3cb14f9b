package session

import "testing"

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get("k"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set("k", "v")
	if v, ok := store.Get("k"); !ok || v != "v" {
		t.Fatalf("expected v, got %q (ok=%v)", v, ok)
	}

	store.Delete("k")
	if _, ok := store.Get("k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestMemoryStoreWatch(t *testing.T) {
	store := NewMemoryStore()

	type event struct{ key, value string }
	var events []event
	cancel := store.Watch(func(key, newValue string) {
		events = append(events, event{key, newValue})
	})

	store.Set("k", "v")
	store.Delete("k")
	store.Delete("k") // no-op, key already gone

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0] != (event{"k", "v"}) {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1] != (event{"k", ""}) {
		t.Fatalf("unexpected second event %+v", events[1])
	}

	cancel()
	store.Set("k", "again")
	if len(events) != 2 {
		t.Fatal("expected no events after cancel")
	}
}
