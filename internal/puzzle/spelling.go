package puzzle

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed spelling_variants.yml
var embeddedSpellingVariants []byte

// SpellingVariants maps a regional spelling to the canonical spelling known to the word model.
type SpellingVariants map[string]string

func LoadSpellingVariants(path string) (SpellingVariants, error) {
	contents := embeddedSpellingVariants
	if path != "" {
		var err error
		contents, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}
	}

	variants := make(SpellingVariants)
	if err := yaml.Unmarshal(contents, &variants); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return variants, nil
}

// Canonical replaces word only on an exact match.
func (s SpellingVariants) Canonical(word string) string {
	if canonical, ok := s[word]; ok {
		return canonical
	}
	return word
}
