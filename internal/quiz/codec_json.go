package quiz

import "encoding/json"

func init() {
	RegisterCodec(".json", JSONCodec{})
}

// quizDoc is the on-disk shape. The time limit is a pointer so an absent
// field can be told apart from zero and defaulted to the sentinel.
type quizDoc struct {
	QuestionGroups [][]Question `json:"question_groups" yaml:"question_groups"`
	TimeLimitSec   *float64     `json:"time_limit_sec,omitempty" yaml:"time_limit_sec,omitempty"`
}

func docFromQuiz(z Quiz) quizDoc {
	d := quizDoc{QuestionGroups: z.QuestionGroups}
	if z.TimeLimitSec != NoTimeLimit {
		t := z.TimeLimitSec
		d.TimeLimitSec = &t
	}
	return d
}

func (d quizDoc) quiz() Quiz {
	z := Quiz{QuestionGroups: d.QuestionGroups, TimeLimitSec: NoTimeLimit}
	if d.TimeLimitSec != nil {
		z.TimeLimitSec = *d.TimeLimitSec
	}
	return z
}

// JSONCodec is the canonical document codec.
type JSONCodec struct{}

func (JSONCodec) Ext() string { return ".json" }

func (JSONCodec) Decode(data []byte) (Quiz, error) {
	var d quizDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return Quiz{}, err
	}
	return d.quiz(), nil
}

func (JSONCodec) Encode(z Quiz) ([]byte, error) {
	return json.MarshalIndent(docFromQuiz(z), "", "  ")
}
