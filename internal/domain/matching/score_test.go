package matching

import (
	"testing"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

func TestScore_EmptyRequirements(t *testing.T) {
	if got := Score([]string{"react", "aws", "sql"}, nil); got != 0 {
		t.Fatalf("empty requirements must score 0, got %v", got)
	}
}

func TestScore_EmptySkills(t *testing.T) {
	if got := Score(nil, []string{"react", "node"}); got != 0 {
		t.Fatalf("empty skill set must score 0, got %v", got)
	}
}

func TestScore_PartialMatchRoundsTwoDecimals(t *testing.T) {
	got := Score([]string{"React", "AWS"}, []string{"react", "node", "aws"})
	if got != 66.67 {
		t.Fatalf("got %v, want 66.67", got)
	}
}

func TestScore_FullMatch(t *testing.T) {
	got := Score([]string{"react", "node", "aws"}, []string{"react", "node", "aws"})
	if got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
}

func TestScore_SubstringContainment(t *testing.T) {
	// "Node.js" contains "node"; requirement matching is substring based.
	got := Score([]string{"Node.js"}, []string{"node"})
	if got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
	// Even a single-letter requirement counts when some skill contains it.
	got = Score([]string{"React"}, []string{"c", "rust"})
	if got != 50 {
		t.Fatalf("got %v, want 50", got)
	}
}

func TestRank_ExcludesZeroScores(t *testing.T) {
	jobs := []job.Job{
		{ID: uuid.New(), Title: "Backend", Requirements: []string{"go", "sql"}},
		{ID: uuid.New(), Title: "Designer", Requirements: []string{"figma"}},
		{ID: uuid.New(), Title: "No reqs"},
	}

	got := Rank([]string{"SQL", "Go"}, jobs)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Job.Title != "Backend" || got[0].Score != 100 {
		t.Fatalf("unexpected result %+v", got[0])
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	jobs := []job.Job{
		{Title: "Half", Requirements: []string{"react", "figma"}},
		{Title: "Full", Requirements: []string{"react"}},
	}

	got := Rank([]string{"react"}, jobs)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Job.Title != "Full" || got[1].Job.Title != "Half" {
		t.Fatalf("bad order: %s, %s", got[0].Job.Title, got[1].Job.Title)
	}
}

func TestRank_StableTies(t *testing.T) {
	jobs := []job.Job{
		{Title: "JobA", Requirements: []string{"react", "figma"}},
		{Title: "JobB", Requirements: []string{"react", "rust"}},
	}

	got := Rank([]string{"react"}, jobs)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Score != got[1].Score {
		t.Fatalf("expected a tie, got %v and %v", got[0].Score, got[1].Score)
	}
	if got[0].Job.Title != "JobA" || got[1].Job.Title != "JobB" {
		t.Fatalf("tie order not stable: %s, %s", got[0].Job.Title, got[1].Job.Title)
	}
}

func TestRank_EmptySkillSetYieldsEmptyResult(t *testing.T) {
	jobs := []job.Job{
		{Title: "Backend", Requirements: []string{"go"}},
		{Title: "Frontend", Requirements: []string{"react"}},
	}
	if got := Rank(nil, jobs); len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}
