package i18n_test

import (
	"strings"
	"testing"

	"github.com/reoring/treedec/i18n"
)

func TestDefaultEnglishMessages(t *testing.T) {
	got := i18n.T("type_mismatch", map[string]string{"expected": "String", "got": "Number(42)"})
	if got != "expected a value of type String, but got: Number(42)" {
		t.Fatalf("unexpected message: %q", got)
	}
	got = i18n.T("missing_field", map[string]string{"key": "name"})
	if got != "no value was found at the key, name" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestJapaneseMessages(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	got := i18n.T("missing_field", map[string]string{"key": "name"})
	if !strings.Contains(got, "name") || got == "no value was found at the key, name" {
		t.Fatalf("language switch had no effect: %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	i18n.SetLanguage("fr")
	defer i18n.SetLanguage("en")
	got := i18n.T("missing_index", map[string]string{"index": "3"})
	if got != "no value was found at the index, 3" {
		t.Fatalf("expected the English fallback, got %q", got)
	}
}

func TestUnknownCodePassesThrough(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes should echo the code, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return strings.ToUpper(code)
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("missing_field", nil); got != "MISSING_FIELD" {
		t.Fatalf("custom translator not used: %q", got)
	}
}

func TestSetTranslatorNilRestoresDefault(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	i18n.SetTranslator(nil)
	got := i18n.T("missing_field", map[string]string{"key": "k"})
	if got != "no value was found at the key, k" {
		t.Fatalf("nil should restore the built-in dictionary, got %q", got)
	}
}
