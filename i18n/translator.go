package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "keyword").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates may
// reference data entries as {name}.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unmatched_bracket":    "unmatched bracket",
		"unterminated_text":    "unterminated quoted text",
		"syntax_error":         "syntax error",
		"too_deep":             "nesting too deep",
		"truncated":            "input too large",
		"missing_attribute":    "missing required attribute of {keyword}",
		"unexpected_attribute": "unexpected attribute in {keyword}",
		"invalid_literal":      "invalid literal in {keyword}",
		"missing_element":      "missing required element in {keyword}",
		"unrecognized_element": "unrecognized element {keyword}",
		"duplicate_element":    "repeated element {keyword}",
		"ambiguous_root":       "ambiguous root {keyword}",
	},
	"ja": {
		"unmatched_bracket":    "括弧が対応していません",
		"unterminated_text":    "引用符で囲まれた文字列が閉じられていません",
		"syntax_error":         "構文エラー",
		"too_deep":             "入れ子が深すぎます",
		"truncated":            "入力が大きすぎます",
		"missing_attribute":    "{keyword} の必須属性が不足しています",
		"unexpected_attribute": "{keyword} に想定外の属性があります",
		"invalid_literal":      "{keyword} のリテラルが不正です",
		"missing_element":      "{keyword} の必須要素が不足しています",
		"unrecognized_element": "未知の要素です: {keyword}",
		"duplicate_element":    "要素が重複しています: {keyword}",
		"ambiguous_root":       "ルート要素を特定できません: {keyword}",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		if v != "" {
			pairs = append(pairs, "{"+k+"}", v)
		}
	}
	msg := strings.NewReplacer(pairs...).Replace(tmpl)
	// drop placeholders that had no data
	msg = placeholderTrimmer.Replace(msg)
	return msg
}

var placeholderTrimmer = strings.NewReplacer(" of {keyword}", "", " in {keyword}", "", ": {keyword}", "", " {keyword}", "", "{keyword} ", "")

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
