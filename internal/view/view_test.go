package view

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/studydrill/drill/internal/bank"
)

func makeBank(n int) *bank.Repository {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{ID: i + 1, Question: fmt.Sprintf("q%d", i+1), Answer: fmt.Sprintf("a%d", i+1)}
	}
	return bank.NewRepository(qs, "Test")
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestActiveFilters(t *testing.T) {
	repo := makeBank(5)
	s := NewState()
	wrong := bank.NewIDSet([]int{2, 4})
	marks := bank.NewIDSet([]int{5})

	if got := s.Active(repo, wrong, marks); len(got) != 5 {
		t.Errorf("ALL: len = %d, want 5", len(got))
	}

	s.SetFilter(FilterErrors)
	errsList := s.Active(repo, wrong, marks)
	if len(errsList) != 2 || errsList[0].ID != 2 || errsList[1].ID != 4 {
		t.Errorf("ERRORS: got %v", errsList)
	}

	s.SetFilter(FilterBookmarks)
	if got := s.Active(repo, wrong, marks); len(got) != 1 || got[0].ID != 5 {
		t.Errorf("BOOKMARKS: got %v", got)
	}
}

func TestReconcileClampsShrinkingList(t *testing.T) {
	s := NewState()

	s.Index = 4
	s.Reconcile(3)
	if s.Index != 2 {
		t.Errorf("Index = %d, want 2", s.Index)
	}

	s.Reconcile(0)
	if s.Index != 0 {
		t.Errorf("Index on empty list = %d, want 0", s.Index)
	}

	s.Index = 1
	s.Reconcile(5)
	if s.Index != 1 {
		t.Errorf("Index should be untouched when in range, got %d", s.Index)
	}
}

func TestToggleShuffleFreezesPermutation(t *testing.T) {
	repo := makeBank(20)
	s := NewState()
	s.Index = 7

	s.ToggleShuffle(repo.Len(), testRand())
	if !s.Shuffled {
		t.Fatal("Shuffled should be true after toggle")
	}
	if s.Index != 0 {
		t.Errorf("Index = %d after toggle, want 0", s.Index)
	}

	first := s.Active(repo, nil, nil)
	second := s.Active(repo, nil, nil)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatal("permutation changed between Active calls; it must be frozen")
		}
	}

	// All questions still present exactly once.
	seen := make(map[int]bool)
	for _, q := range first {
		if seen[q.ID] {
			t.Fatalf("duplicate id %d in shuffled view", q.ID)
		}
		seen[q.ID] = true
	}
	if len(seen) != 20 {
		t.Errorf("shuffled view has %d unique ids, want 20", len(seen))
	}

	// Toggling off restores repository order.
	s.ToggleShuffle(repo.Len(), testRand())
	restored := s.Active(repo, nil, nil)
	for i, q := range restored {
		if q.ID != i+1 {
			t.Fatalf("position %d holds id %d after unshuffle, want %d", i, q.ID, i+1)
		}
	}
}

func TestJumpTo(t *testing.T) {
	repo := makeBank(5)
	s := NewState()
	active := s.Active(repo, nil, nil)

	if err := s.JumpTo(active, 4); err != nil {
		t.Fatalf("JumpTo(4): %v", err)
	}
	if s.Index != 3 {
		t.Errorf("Index = %d, want 3", s.Index)
	}

	before := s.Index
	if err := s.JumpTo(active, 99); err != ErrNotFound {
		t.Errorf("JumpTo(99) err = %v, want ErrNotFound", err)
	}
	if s.Index != before {
		t.Error("navigation must be unchanged on ErrNotFound")
	}

	// Jump targets the filtered view, not the whole bank.
	s.SetFilter(FilterErrors)
	wrong := bank.NewIDSet([]int{2})
	active = s.Active(repo, wrong, nil)
	if err := s.JumpTo(active, 3); err != ErrNotFound {
		t.Errorf("JumpTo(3) under ERRORS = %v, want ErrNotFound", err)
	}
}

func TestInvalidate(t *testing.T) {
	repo := makeBank(5)
	s := NewState()
	s.SetFilter(FilterBookmarks)
	s.ToggleShuffle(repo.Len(), testRand())
	s.Index = 3

	s.Invalidate()

	if s.Filter != FilterAll || s.Shuffled || s.Index != 0 {
		t.Errorf("state after Invalidate = %+v", s)
	}
}
