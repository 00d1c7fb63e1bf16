package roadmap

import (
	"testing"

	"github.com/pushpullleg/renaissance/internal/assessment"
)

func TestPillarOrder(t *testing.T) {
	want := []string{
		"Foundations",
		"Data Ecosystem Basics",
		"Storage & Databases",
		"Data Ingestion & Pipelines",
		"Big Data & Infrastructure",
		"Data Serving & Governance",
	}
	got := PillarNames()
	if len(got) != len(want) {
		t.Fatalf("got %d pillars, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pillar[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindPillar(t *testing.T) {
	p, ok := FindPillar("Storage & Databases")
	if !ok {
		t.Fatal("pillar not found")
	}
	if p.ID != "storage" {
		t.Errorf("id = %q, want 'storage'", p.ID)
	}
	if len(p.Topics) != 4 {
		t.Errorf("got %d topics, want 4", len(p.Topics))
	}

	if _, ok := FindPillar("Nope"); ok {
		t.Error("unknown pillar should not be found")
	}
}

// Every pillar referenced by the question bank must exist in the roadmap
// so assessment recommendations always point at a browsable pillar.
func TestQuestionPillarsExist(t *testing.T) {
	for _, q := range assessment.Questions() {
		if _, ok := FindPillar(q.Pillar); !ok {
			t.Errorf("question %s references unknown pillar %q", q.ID, q.Pillar)
		}
	}
}
