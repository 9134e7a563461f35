package models

// CategoryWebContent is the category assigned to QA pairs synthesized
// from fetched web content.
const CategoryWebContent = "web-content"

// QAPair is a knowledge base entry pairing a canonical question with its
// answer. Keywords are flat tags used for lexical scoring; Category is a
// flat label, not a taxonomy.
type QAPair struct {
	ID       string   `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Category string   `json:"category" yaml:"category"`
}
