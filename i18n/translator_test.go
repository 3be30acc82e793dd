package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("unmatched_bracket", nil); msg != "unmatched bracket" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unmatched_bracket", nil); msg == "unmatched bracket" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_KeywordPlaceholder(t *testing.T) {
	if msg := T("unrecognized_element", map[string]string{"keyword": "AXSI"}); msg != "unrecognized element AXSI" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := T("missing_attribute", map[string]string{"keyword": ""}); msg != "missing required attribute" {
		t.Fatalf("placeholder not trimmed: %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes should echo, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upperTranslator{})
	defer SetTranslator(nil)
	if msg := T("syntax_error", nil); msg != "X:syntax_error" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
