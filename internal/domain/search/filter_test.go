package search

import (
	"testing"

	"job-portal/internal/domain/job"
)

func intPtr(v int) *int { return &v }

func sampleCatalog() []job.Job {
	return []job.Job{
		{Title: "Frontend Developer", CompanyName: "Tech Corp", Location: "Remote", JobType: job.TypeFullTime, ExperienceLevel: job.ExperienceMid, Salary: intPtr(80000)},
		{Title: "Backend Engineer", CompanyName: "Data Systems", Location: "New York, NY", JobType: job.TypeFullTime, ExperienceLevel: job.ExperienceSenior, Salary: intPtr(120000)},
		{Title: "UI/UX Designer", CompanyName: "Creative Studio", Location: "San Francisco, CA", JobType: job.TypeContract, ExperienceLevel: job.ExperienceMid, Salary: intPtr(95000)},
		{Title: "DevOps Engineer", CompanyName: "Cloud Net", Location: "Remote", JobType: job.TypeRemote, ExperienceLevel: job.ExperienceMid},
		{Title: "Data Analyst", CompanyName: "Tech Corp", Location: "Chicago, IL", JobType: job.TypePartTime, ExperienceLevel: job.ExperienceEntry, Salary: intPtr(55000)},
	}
}

func titles(jobs []job.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestApply_EmptyFilterReturnsAll(t *testing.T) {
	catalog := sampleCatalog()
	got := Apply(catalog, Filter{})
	if len(got) != len(catalog) {
		t.Fatalf("expected %d jobs, got %d", len(catalog), len(got))
	}
	for i := range got {
		if got[i].Title != catalog[i].Title {
			t.Fatalf("order changed at %d: %s != %s", i, got[i].Title, catalog[i].Title)
		}
	}
}

func TestApply_TextMatchesTitleOrCompany(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{TextQuery: "tech corp"})
	want := []string{"Frontend Developer", "Data Analyst"}
	if len(got) != 2 || got[0].Title != want[0] || got[1].Title != want[1] {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
}

func TestApply_LocationSubstring(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{LocationQuery: "remote"})
	if len(got) != 2 {
		t.Fatalf("expected 2 remote jobs, got %v", titles(got))
	}
}

func TestApply_JobTypeSelection(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{JobTypes: []job.Type{job.TypeFullTime}})
	want := []string{"Frontend Developer", "Backend Engineer"}
	if len(got) != 2 || got[0].Title != want[0] || got[1].Title != want[1] {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
}

func TestApply_MinSalaryExcludesUnspecified(t *testing.T) {
	// DevOps Engineer has no salary on record and must be excluded.
	got := Apply(sampleCatalog(), Filter{MinSalary: 60000})
	want := []string{"Frontend Developer", "Backend Engineer", "UI/UX Designer"}
	if len(got) != 3 {
		t.Fatalf("got %v, want %v", titles(got), want)
	}
	for i := range want {
		if got[i].Title != want[i] {
			t.Fatalf("got %v, want %v", titles(got), want)
		}
	}
}

func TestApply_ZeroMinSalaryKeepsUnspecified(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{MinSalary: 0})
	if len(got) != 5 {
		t.Fatalf("expected all 5 jobs, got %d", len(got))
	}
}

func TestApply_PredicatesCombineWithAND(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{
		LocationQuery: "remote",
		JobTypes:      []job.Type{job.TypeFullTime},
	})
	if len(got) != 1 || got[0].Title != "Frontend Developer" {
		t.Fatalf("got %v", titles(got))
	}
}

func TestPaginate(t *testing.T) {
	catalog := make([]job.Job, 10)
	for i := range catalog {
		catalog[i] = job.Job{Title: string(rune('A' + i))}
	}

	cases := []struct {
		page, size, wantLen int
		wantFirst           string
	}{
		{1, 6, 6, "A"},
		{2, 6, 4, "G"},
		{3, 6, 0, ""},
		{1, 20, 10, "A"},
		{0, 6, 0, ""},
	}
	for _, tc := range cases {
		got := Paginate(catalog, tc.page, tc.size)
		if len(got) != tc.wantLen {
			t.Fatalf("page=%d size=%d: got %d items, want %d", tc.page, tc.size, len(got), tc.wantLen)
		}
		if tc.wantLen > 0 && got[0].Title != tc.wantFirst {
			t.Fatalf("page=%d size=%d: first=%s, want %s", tc.page, tc.size, got[0].Title, tc.wantFirst)
		}
	}
}
