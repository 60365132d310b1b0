package journal

import (
	"sync"
	"testing"
)

func testRecord(text string) DreamRecord {
	d, _ := ParseDate("2025-06-15")
	return DreamRecord{
		Date:         d,
		Text:         text,
		Emotion:      "neutral",
		SleepQuality: 7,
	}
}

func TestStore_AppendAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.Append(testRecord("first dream"))
	second := s.Append(testRecord("second dream"))

	if first.ID != 1 {
		t.Errorf("first ID = %d, want 1", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("second ID = %d, want 2", second.ID)
	}
}

func TestStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Append(testRecord("one"))
	s.Append(testRecord("two"))
	s.Append(testRecord("three"))

	records := s.List()
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3", len(records))
	}
	for i, want := range []string{"one", "two", "three"} {
		if records[i].Text != want {
			t.Errorf("records[%d].Text = %q, want %q", i, records[i].Text, want)
		}
	}
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(testRecord("original"))

	records := s.List()
	records[0].Text = "mutated"

	if got := s.List()[0].Text; got != "original" {
		t.Errorf("store record = %q, want %q", got, "original")
	}
}

func TestStore_ClearReportsCountAndKeepsIDs(t *testing.T) {
	s := NewStore()
	s.Append(testRecord("one"))
	s.Append(testRecord("two"))

	if n := s.Clear(); n != 2 {
		t.Errorf("Clear = %d, want 2", n)
	}
	if s.Len() != 0 {
		t.Errorf("Len after clear = %d, want 0", s.Len())
	}
	if n := s.Clear(); n != 0 {
		t.Errorf("second Clear = %d, want 0", n)
	}

	// IDs continue after a clear, they are never reused.
	next := s.Append(testRecord("three"))
	if next.ID != 3 {
		t.Errorf("ID after clear = %d, want 3", next.ID)
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append(testRecord("concurrent dream"))
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len = %d, want 50", s.Len())
	}

	seen := make(map[int64]bool)
	for _, r := range s.List() {
		if seen[r.ID] {
			t.Errorf("duplicate ID %d", r.ID)
		}
		seen[r.ID] = true
	}
}
