package user

import (
	"reflect"
	"testing"
)

func TestMergeSkills_CaseInsensitiveUnion(t *testing.T) {
	got := MergeSkills([]string{"React", "AWS"}, []string{"react", "node", "aws", "docker"})
	want := []string{"React", "AWS", "node", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMergeSkills_ExistingCasingWins(t *testing.T) {
	got := MergeSkills([]string{"JavaScript"}, []string{"javascript"})
	if len(got) != 1 || got[0] != "JavaScript" {
		t.Fatalf("got %v, want [JavaScript]", got)
	}
}

func TestMergeSkills_Idempotent(t *testing.T) {
	base := []string{"python", "sql", "docker"}
	once := MergeSkills(base, base)
	if !reflect.DeepEqual(once, base) {
		t.Fatalf("merging a set with itself changed it: %v", once)
	}
	twice := MergeSkills(once, base)
	if !reflect.DeepEqual(twice, once) {
		t.Fatalf("second merge changed the set: %v", twice)
	}
}

func TestMergeSkills_SequentialEqualsDirectUnion(t *testing.T) {
	s1 := []string{"go", "react"}
	s2 := []string{"React", "aws", "sql"}

	sequential := MergeSkills(MergeSkills(nil, s1), s2)
	direct := MergeSkills(s1, s2)
	if !reflect.DeepEqual(sequential, direct) {
		t.Fatalf("sequential %v != direct %v", sequential, direct)
	}
}

func TestMergeSkills_DropsBlankEntries(t *testing.T) {
	got := MergeSkills([]string{" ", "sql"}, []string{"", "aws"})
	want := []string{"sql", "aws"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMergeSkills_EmptyInputs(t *testing.T) {
	if got := MergeSkills(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
