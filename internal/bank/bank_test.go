package bank

import "testing"

func sample() []Question {
	return []Question{
		{ID: 1, Question: "What is the femur?", Answer: "The thigh bone"},
		{ID: 2, Question: "What is the tibia?", Answer: "The shin bone"},
		{ID: 3, Question: "What is the ulna?", Answer: "A forearm bone"},
	}
}

func TestReplaceCopiesInput(t *testing.T) {
	qs := sample()
	r := NewRepository(qs, "Anatomy")

	qs[0].Answer = "mutated"
	if r.At(0).Answer == "mutated" {
		t.Error("repository shares backing storage with caller slice")
	}

	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if r.Subject() != "Anatomy" {
		t.Errorf("Subject = %q, want Anatomy", r.Subject())
	}
}

func TestReplaceEmptySubjectDefaults(t *testing.T) {
	r := NewRepository(sample(), "")
	if r.Subject() != DefaultSubject {
		t.Errorf("Subject = %q, want %q", r.Subject(), DefaultSubject)
	}
}

func TestReset(t *testing.T) {
	r := NewRepository(sample(), "Anatomy")
	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", r.Len())
	}
	if r.Subject() != DefaultSubject {
		t.Errorf("Subject after Reset = %q, want %q", r.Subject(), DefaultSubject)
	}
}

func TestByIDAndPosition(t *testing.T) {
	r := NewRepository(sample(), "Anatomy")

	q, ok := r.ByID(2)
	if !ok || q.Question != "What is the tibia?" {
		t.Fatalf("ByID(2) = %+v, %v", q, ok)
	}
	if pos := r.PositionOf(3); pos != 2 {
		t.Errorf("PositionOf(3) = %d, want 2", pos)
	}
	if pos := r.PositionOf(99); pos != -1 {
		t.Errorf("PositionOf(99) = %d, want -1", pos)
	}
}

func TestIDSet(t *testing.T) {
	s := NewIDSet(nil)

	s.Add(5)
	s.Add(5) // idempotent
	s.Add(1)
	if got := s.IDs(); len(got) != 2 || got[0] != 1 || got[1] != 5 {
		t.Errorf("IDs = %v, want [1 5]", got)
	}

	if on := s.Toggle(5); on {
		t.Error("Toggle(5) should remove and report false")
	}
	if s.Has(5) {
		t.Error("5 still present after toggle off")
	}
	s.Remove(99) // absent, no-op
}

func TestCorrectAnswerTrims(t *testing.T) {
	q := Question{Answer: "  The thigh bone  "}
	if q.CorrectAnswer() != "The thigh bone" {
		t.Errorf("CorrectAnswer = %q", q.CorrectAnswer())
	}
}
