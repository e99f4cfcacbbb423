// Package distractor synthesizes plausible wrong answers for questions
// that ship without explicit options.
package distractor

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/studydrill/drill/internal/bank"
)

// NeighborWindow is the number of repository positions on each side of
// the target question considered for contextual distractors. Adjacent
// questions in a source document usually cover the same sub-topic, so
// their answers make more plausible wrong choices than answers drawn
// from unrelated sections.
const NeighborWindow = 20

// MaxDistractors is the number of wrong options paired with the correct
// answer when the bank can supply them.
const MaxDistractors = 3

// numericPattern matches pure integers and decimal numbers. Numeric
// answers are excluded as likely parsing noise rather than real
// distractors. Known limitation: a bank whose answers are all numeric
// gets no generated distractors at all.
var numericPattern = regexp.MustCompile(`^\d+$|^\d+[.,]\d+$`)

// structureTokens flag answers that leaked document layout metadata
// (page headers, chapter titles, question labels) out of the parser.
var structureTokens = []string{"PAGE", "CHAPTER", "LESSON", "QUESTION"}

// Generator produces shuffled option sets for a question against a bank.
// All shuffling goes through the injected random source so tests can run
// with a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with a randomly seeded source.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand creates a Generator using the given source.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Options returns a randomized option list for q containing exactly one
// instance of the trimmed correct answer and up to MaxDistractors wrong
// answers. Fewer options are returned only when the bank cannot supply
// enough valid distractors.
func (g *Generator) Options(q bank.Question, repo *bank.Repository) []string {
	// Explicit options from the source document are authoritative.
	if len(q.Options) > 0 {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		g.shuffle(opts)
		return opts
	}

	correct := q.CorrectAnswer()

	pos := repo.PositionOf(q.ID)
	if pos == -1 {
		// Question not in the bank. Draw distractors from the whole
		// bank without the contextual window.
		return g.globalFallback(q, repo, correct)
	}

	start := pos - NeighborWindow
	if start < 0 {
		start = 0
	}
	end := pos + NeighborWindow + 1
	if end > repo.Len() {
		end = repo.Len()
	}

	seen := make(map[string]bool)
	var candidates []string
	for i := start; i < end; i++ {
		ans := repo.At(i).CorrectAnswer()
		if !validDistractor(ans, correct) || seen[ans] {
			continue
		}
		seen[ans] = true
		candidates = append(candidates, ans)
	}

	g.shuffle(candidates)
	if len(candidates) > MaxDistractors {
		candidates = candidates[:MaxDistractors]
	}

	// Too few contextual candidates near the bank edges or in banks
	// with many repeated answers: top up from the whole repository.
	if len(candidates) < MaxDistractors {
		candidates = g.topUp(candidates, seen, q, repo, correct)
	}

	options := append(candidates, correct)
	g.shuffle(options)
	return options
}

// topUp draws additional distractors from the entire bank, applying the
// correctness, length, and duplicate exclusions.
func (g *Generator) topUp(candidates []string, seen map[string]bool, q bank.Question, repo *bank.Repository, correct string) []string {
	pool := make([]string, 0, repo.Len())
	for _, other := range repo.Questions() {
		if other.ID == q.ID {
			continue
		}
		ans := other.CorrectAnswer()
		if ans == correct || len(ans) <= 2 || seen[ans] {
			continue
		}
		seen[ans] = true
		pool = append(pool, ans)
	}
	g.shuffle(pool)

	need := MaxDistractors - len(candidates)
	if need > len(pool) {
		need = len(pool)
	}
	return append(candidates, pool[:need]...)
}

// globalFallback handles the defensive case of a question whose id is
// not present in the repository.
func (g *Generator) globalFallback(q bank.Question, repo *bank.Repository, correct string) []string {
	pool := make([]string, 0, repo.Len())
	for _, other := range repo.Questions() {
		if other.ID != q.ID {
			pool = append(pool, other.CorrectAnswer())
		}
	}
	g.shuffle(pool)
	if len(pool) > MaxDistractors {
		pool = pool[:MaxDistractors]
	}
	options := append(pool, correct)
	g.shuffle(options)
	return options
}

func (g *Generator) shuffle(s []string) {
	g.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// validDistractor applies the quality filters to a candidate answer.
func validDistractor(ans, correct string) bool {
	if ans == correct {
		return false
	}
	if len(ans) <= 2 {
		return false
	}
	if numericPattern.MatchString(ans) {
		return false
	}
	upper := strings.ToUpper(ans)
	for _, tok := range structureTokens {
		if strings.Contains(upper, tok) {
			return false
		}
	}
	return true
}
