package quiz

import (
	"sort"
	"strings"
)

// NoTimeLimit marks a quiz without a configured time limit.
const NoTimeLimit float64 = -1

type Question struct {
	Text    string   `json:"question_text" yaml:"question_text"`
	Answers []string `json:"answers" yaml:"answers"`

	// CorrectAnswers holds 0-based indices into Answers. It may be nil on a
	// freshly decoded question; Normalize defaults it and folds in
	// SingleCorrectIndex. After a successful Validate it is non-empty.
	CorrectAnswers []int `json:"correct_answers,omitempty" yaml:"correct_answers,omitempty"`

	// SingleCorrectIndex is the legacy one-answer form. Normalize folds it
	// into CorrectAnswers and clears it.
	SingleCorrectIndex *int `json:"single_correct_index,omitempty" yaml:"single_correct_index,omitempty"`

	ImageURL string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// NewQuestion builds a question with all string fields trimmed.
func NewQuestion(text string, answers []string, correct []int) Question {
	trimmed := make([]string, len(answers))
	for i, a := range answers {
		trimmed[i] = strings.TrimSpace(a)
	}
	return Question{
		Text:           strings.TrimSpace(text),
		Answers:        trimmed,
		CorrectAnswers: uniqueSorted(correct),
	}
}

// Equal reports whether two questions match on text, answers and the
// correct-answer set. ImageURL and the legacy index are not part of identity.
func (q Question) Equal(o Question) bool {
	if q.Text != o.Text || len(q.Answers) != len(o.Answers) {
		return false
	}
	for i := range q.Answers {
		if q.Answers[i] != o.Answers[i] {
			return false
		}
	}
	return sameIndexSet(q.CorrectAnswers, o.CorrectAnswers)
}

type Quiz struct {
	// QuestionGroups are shown in sequence; outer order matters.
	QuestionGroups [][]Question
	// TimeLimitSec is NoTimeLimit when the document carries no limit.
	TimeLimitSec float64
}

// New returns the default quiz: one empty group, no time limit.
func New() Quiz {
	return Quiz{QuestionGroups: [][]Question{{}}, TimeLimitSec: NoTimeLimit}
}

// Questions flattens all groups in order.
func (z Quiz) Questions() []Question {
	var out []Question
	for _, g := range z.QuestionGroups {
		out = append(out, g...)
	}
	return out
}

// Equal compares the flattened question sequences; group boundaries do not
// affect equality.
func (z Quiz) Equal(o Quiz) bool {
	a, b := z.Questions(), o.Questions()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func uniqueSorted(idx []int) []int {
	if idx == nil {
		return nil
	}
	out := make([]int, 0, len(idx))
	seen := map[int]bool{}
	for _, i := range idx {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := map[int]bool{}
	for _, i := range a {
		set[i] = true
	}
	for _, i := range b {
		if !set[i] {
			return false
		}
	}
	return true
}
