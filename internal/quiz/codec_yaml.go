package quiz

import "gopkg.in/yaml.v3"

func init() {
	RegisterCodec(".yaml", YAMLCodec{})
	RegisterCodec(".yml", YAMLCodec{})
}

// YAMLCodec accepts topic documents authored as YAML.
type YAMLCodec struct{}

func (YAMLCodec) Ext() string { return ".yaml" }

func (YAMLCodec) Decode(data []byte) (Quiz, error) {
	var d quizDoc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Quiz{}, err
	}
	return d.quiz(), nil
}

func (YAMLCodec) Encode(z Quiz) ([]byte, error) {
	return yaml.Marshal(docFromQuiz(z))
}
