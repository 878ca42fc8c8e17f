package topic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

const validDoc = `{
  "question_groups": [[
    {"question_text": "Capital of France?", "answers": ["Paris", "Rome", "Berlin", "Madrid"], "correct_answers": [0]},
    {"question_text": "Largest planet?", "answers": ["Mars", "Venus", "Jupiter", "Saturn"], "single_correct_index": 2}
  ]],
  "time_limit_sec": 120
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEntryFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "geography.json", validDoc)

	e, err := LoadEntryFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "geography" {
		t.Errorf("name = %q, want file stem", e.Name)
	}
	if e.Quiz.TimeLimitSec != 120 {
		t.Errorf("time limit = %v, want 120", e.Quiz.TimeLimitSec)
	}
	// loading normalizes: the legacy index is folded
	second := e.Quiz.QuestionGroups[0][1]
	if second.SingleCorrectIndex != nil || len(second.CorrectAnswers) != 1 || second.CorrectAnswers[0] != 2 {
		t.Errorf("legacy index not folded: %+v", second)
	}
}

func TestLoadEntryFromFS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bundled.json", validDoc)

	e, err := LoadEntry(os.DirFS(dir), "bundled.json")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "bundled" {
		t.Errorf("name = %q", e.Name)
	}
}

func TestLoadEntryYAML(t *testing.T) {
	doc := `question_groups:
  - - question_text: Capital of France?
      answers: [Paris, Rome, Berlin, Madrid]
      correct_answers: [0]
`
	dir := t.TempDir()
	path := writeFile(t, dir, "yaml-topic.yaml", doc)

	e, err := LoadEntryFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if e.Quiz.TimeLimitSec != quiz.NoTimeLimit {
		t.Errorf("time limit = %v, want sentinel", e.Quiz.TimeLimitSec)
	}
}

func TestLoadEntryErrorKinds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "garbage.json", "{not json")
	writeFile(t, dir, "invalid.json", `{"question_groups": []}`)

	tests := []struct {
		path string
		kind LoadErrorKind
	}{
		{filepath.Join(dir, "missing.json"), LoadNotFound},
		{filepath.Join(dir, "garbage.json"), LoadDecode},
		{filepath.Join(dir, "invalid.json"), LoadInvalid},
	}
	for _, tt := range tests {
		_, err := LoadEntryFile(tt.path)
		le, ok := IsLoadError(err)
		if !ok {
			t.Fatalf("%s: expected LoadError, got %v", tt.path, err)
		}
		if le.Kind != tt.kind {
			t.Errorf("%s: kind = %s, want %s", tt.path, le.Kind, tt.kind)
		}
	}
}

// Entry identity is a name match OR a content match. The inclusive-or is a
// documented quirk of the save dedup contract; this test pins it.
func TestEntryEqualNameOrContent(t *testing.T) {
	qa := quiz.Quiz{QuestionGroups: [][]quiz.Question{{
		quiz.NewQuestion("a", []string{"1", "2", "3", "4"}, []int{0}),
	}}}
	qb := quiz.Quiz{QuestionGroups: [][]quiz.Question{{
		quiz.NewQuestion("b", []string{"5", "6", "7", "8"}, []int{1}),
	}}}

	sameNameDiffContent := NewEntry("alpha", qa).Equal(NewEntry("alpha", qb))
	if !sameNameDiffContent {
		t.Error("entries with matching names must be equal even when content differs")
	}
	diffNameSameContent := NewEntry("alpha", qa).Equal(NewEntry("beta", qa))
	if !diffNameSameContent {
		t.Error("entries with matching content must be equal even when names differ")
	}
	if NewEntry("alpha", qa).Equal(NewEntry("beta", qb)) {
		t.Error("entries differing in both name and content must not be equal")
	}
}

func TestNewDefaultEntry(t *testing.T) {
	e := New(" pending ")
	if e.Name != "pending" {
		t.Errorf("name = %q", e.Name)
	}
	if len(e.Quiz.QuestionGroups) != 1 || len(e.Quiz.QuestionGroups[0]) != 0 {
		t.Errorf("default quiz should hold one empty group, got %v", e.Quiz.QuestionGroups)
	}
	if e.Quiz.TimeLimitSec != quiz.NoTimeLimit {
		t.Errorf("default time limit = %v", e.Quiz.TimeLimitSec)
	}
}
