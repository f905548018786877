package services

import "strings"

// defaultSkillVocabulary is the closed set of skills recognised in resumes.
// Order is the order skills are reported in.
var defaultSkillVocabulary = []string{
	"javascript",
	"typescript",
	"java",
	"python",
	"golang",
	"c++",
	"c#",
	"ruby",
	"php",
	"kotlin",
	"swift",
	"react",
	"angular",
	"vue",
	"node",
	"express",
	"django",
	"flask",
	"spring",
	"html",
	"css",
	"sql",
	"mysql",
	"postgres",
	"mongodb",
	"redis",
	"graphql",
	"docker",
	"kubernetes",
	"aws",
	"azure",
	"gcp",
	"git",
	"linux",
	"machine learning",
	"deep learning",
	"tensorflow",
	"pytorch",
	"nlp",
	"data analysis",
}

// DefaultSkillVocabulary returns a copy of the built-in vocabulary.
func DefaultSkillVocabulary() []string {
	vocab := make([]string, len(defaultSkillVocabulary))
	copy(vocab, defaultSkillVocabulary)
	return vocab
}

type SkillExtractor interface {
	ExtractSkills(text string) []string
	Vocabulary() []string
}

type skillExtractor struct {
	vocabulary []string
}

// NewSkillExtractor lowercases and de-duplicates vocabulary. A nil vocabulary
// selects the default one.
func NewSkillExtractor(vocabulary []string) SkillExtractor {
	if vocabulary == nil {
		vocabulary = defaultSkillVocabulary
	}

	seen := make(map[string]struct{}, len(vocabulary))
	normalized := make([]string, 0, len(vocabulary))
	for _, skill := range vocabulary {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		normalized = append(normalized, skill)
	}

	return &skillExtractor{vocabulary: normalized}
}

// ExtractSkills reports every vocabulary entry that occurs anywhere in text.
// Matching is plain substring containment, so "java" is found in "javascript".
func (s *skillExtractor) ExtractSkills(text string) []string {
	text = strings.ToLower(text)

	found := []string{}
	for _, skill := range s.vocabulary {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

func (s *skillExtractor) Vocabulary() []string {
	vocab := make([]string, len(s.vocabulary))
	copy(vocab, s.vocabulary)
	return vocab
}
