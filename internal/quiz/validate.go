package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid quiz document")

// Groups that decode empty still need an answer-count baseline.
const defaultAnswerCount = 4

// Normalize puts a freshly decoded quiz into canonical form: trims all string
// fields, defaults nil correct-answer sets to empty, folds the legacy
// single-correct index into CorrectAnswers, and dedupes/sorts the set.
// Callers must validate and use the normalized value, not a prior copy.
func Normalize(z *Quiz) {
	for gi := range z.QuestionGroups {
		for qi := range z.QuestionGroups[gi] {
			q := &z.QuestionGroups[gi][qi]
			q.Text = strings.TrimSpace(q.Text)
			q.ImageURL = strings.TrimSpace(q.ImageURL)
			for i := range q.Answers {
				q.Answers[i] = strings.TrimSpace(q.Answers[i])
			}
			if q.CorrectAnswers == nil {
				q.CorrectAnswers = []int{}
			}
			if q.SingleCorrectIndex != nil {
				q.CorrectAnswers = append(q.CorrectAnswers, *q.SingleCorrectIndex)
				q.SingleCorrectIndex = nil
			}
			q.CorrectAnswers = uniqueSorted(q.CorrectAnswers)
		}
	}
}

// Validate checks every structural invariant on a normalized quiz:
// at least one group, a uniform answer count per group, distinct non-empty
// answers, in-range correct indices, and per question at least one but not
// all answers correct. The final sweep re-checks that no question was left
// without a correct answer.
func Validate(z *Quiz) error {
	if len(z.QuestionGroups) == 0 {
		return fmt.Errorf("%w: no question groups", ErrInvalid)
	}
	for gi, group := range z.QuestionGroups {
		expected := defaultAnswerCount
		if len(group) > 0 {
			expected = len(group[0].Answers)
		}
		for qi, q := range group {
			if q.Text == "" {
				return fmt.Errorf("%w: group %d question %d: empty question text", ErrInvalid, gi, qi)
			}
			if len(q.Answers) != expected {
				return fmt.Errorf("%w: group %d question %d: has %d answers, group expects %d", ErrInvalid, gi, qi, len(q.Answers), expected)
			}
			seen := map[string]bool{}
			for _, a := range q.Answers {
				if a == "" {
					return fmt.Errorf("%w: group %d question %d: empty answer", ErrInvalid, gi, qi)
				}
				if seen[a] {
					return fmt.Errorf("%w: group %d question %d: duplicate answer %q", ErrInvalid, gi, qi, a)
				}
				seen[a] = true
			}
			for _, idx := range q.CorrectAnswers {
				if idx < 0 || idx >= expected {
					return fmt.Errorf("%w: group %d question %d: correct index %d out of range", ErrInvalid, gi, qi, idx)
				}
			}
			if n := len(q.CorrectAnswers); n == 0 || n >= expected {
				return fmt.Errorf("%w: group %d question %d: %d of %d answers marked correct", ErrInvalid, gi, qi, n, expected)
			}
		}
	}
	for gi, group := range z.QuestionGroups {
		for qi, q := range group {
			if len(q.CorrectAnswers) == 0 {
				return fmt.Errorf("%w: group %d question %d: no correct answer", ErrInvalid, gi, qi)
			}
		}
	}
	return nil
}

// IsValid is the one-shot form: normalize then validate. The quiz is mutated
// in place either way.
func IsValid(z *Quiz) bool {
	Normalize(z)
	return Validate(z) == nil
}
