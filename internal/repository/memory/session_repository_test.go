package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"ai-shopassist-be/pkg/store"
)

func TestGetOrCreateGeneratesId(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	s := repo.GetOrCreate("", "user-1")
	if s.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if s.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", s.UserID)
	}

	again := repo.GetOrCreate(s.ID, "user-1")
	if again.ID != s.ID {
		t.Fatal("expected the same session on second call")
	}
}

func TestAppendMessageCapsHistory(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")

	for i := 0; i < maxHistoryEntries+10; i++ {
		repo.AppendMessage(s.ID, store.RoleUser, fmt.Sprintf("message %d", i))
	}

	got, ok := repo.Get(s.ID)
	if !ok {
		t.Fatal("session disappeared")
	}
	if len(got.MessageHistory) != maxHistoryEntries {
		t.Fatalf("expected history capped at %d, got %d", maxHistoryEntries, len(got.MessageHistory))
	}
	last := got.MessageHistory[len(got.MessageHistory)-1]
	if last.Text != fmt.Sprintf("message %d", maxHistoryEntries+9) {
		t.Fatalf("cap dropped the wrong end: %q", last.Text)
	}
}

func TestMergeFiltersAccumulates(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")

	repo.MergeFilters(s.ID, map[string]string{"category": "chairs"})
	repo.MergeFilters(s.ID, map[string]string{"color": "black", "category": "desks"})

	got, _ := repo.Get(s.ID)
	if got.AccumulatedFilters["category"] != "desks" {
		t.Fatalf("later value must win: %v", got.AccumulatedFilters)
	}
	if got.AccumulatedFilters["color"] != "black" {
		t.Fatalf("earlier keys must survive: %v", got.AccumulatedFilters)
	}
}

func TestPendingClarificationRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")

	repo.SetPendingClarification(s.ID, &store.PendingClarification{
		VagueType:       "subjective_slang",
		PartialEntities: map[string]string{"category": "chair"},
		Question:        "What style are you after?",
	})

	got, _ := repo.Get(s.ID)
	if got.PendingClarification == nil || got.PendingClarification.VagueType != "subjective_slang" {
		t.Fatalf("clarification not stored: %+v", got.PendingClarification)
	}

	repo.ClearPendingClarification(s.ID)
	got, _ = repo.Get(s.ID)
	if got.PendingClarification != nil {
		t.Fatal("clarification should be cleared")
	}
}

func TestGetReturnsPrivateCopy(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")

	repo.UpdateShownProducts(s.ID, []store.Product{{SKU: "CH-100", Title: "Office Chair"}})

	got, _ := repo.Get(s.ID)
	got.LastShownProducts[0].Title = "scribbled"
	got.AccumulatedFilters["color"] = "scribbled"
	got.LastQuery = "scribbled"

	fresh, _ := repo.Get(s.ID)
	if fresh.LastShownProducts[0].Title != "Office Chair" {
		t.Fatalf("stored products must not share memory with callers: %+v", fresh.LastShownProducts)
	}
	if fresh.AccumulatedFilters["color"] != "" {
		t.Fatalf("stored filters must not share memory with callers: %v", fresh.AccumulatedFilters)
	}
	if fresh.LastQuery != "" {
		t.Fatal("stored query must not share memory with callers")
	}
}

func TestCopyStableWhileStoreMutates(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")
	repo.UpdateShownProducts(s.ID, []store.Product{{SKU: "CH-100"}})

	snapshot, _ := repo.Get(s.ID)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.UpdateShownProducts(s.ID, []store.Product{{SKU: fmt.Sprintf("DK-%d", i)}})
			repo.MergeFilters(s.ID, map[string]string{"color": "black"})
		}(i)
	}
	wg.Wait()

	if snapshot.LastShownProducts[0].SKU != "CH-100" {
		t.Fatalf("earlier copy changed under concurrent writes: %+v", snapshot.LastShownProducts)
	}
}

func TestConcurrentAppends(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	s := repo.GetOrCreate("", "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.AppendMessage(s.ID, store.RoleUser, fmt.Sprintf("m%d", i))
		}(i)
	}
	wg.Wait()

	got, _ := repo.Get(s.ID)
	if len(got.MessageHistory) != 20 {
		t.Fatalf("expected 20 messages, got %d", len(got.MessageHistory))
	}
}
