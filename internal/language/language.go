package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize canonicalizes a language code to its ISO 639-1 base form, the
// form whisper expects ("en", "de", "pt"). Word forms such as "english" are
// not accepted; the engine would reject them anyway.
func Normalize(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", fmt.Errorf("empty language code")
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("unrecognized language code %q: %w", trimmed, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// DisplayName returns a human-readable English name for a language code,
// falling back to the code itself when no name is known.
func DisplayName(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
