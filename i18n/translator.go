// Package i18n renders human-readable summaries for issue codes.
package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Languages lists the languages served by the built-in dictionary.
var Languages = []string{"en", "ja"}

// New returns the built-in dictionary Translator for lang. Unknown languages
// fall back to English.
func New(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_argument":
			msg = "入力が不正です"
		case "malformed_input":
			msg = "JSONとして解析できません"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "key_collision":
			msg = "平坦化したキーが衝突しています"
		case "too_deep":
			msg = "ネストが深すぎます"
		case "truncated":
			msg = "入力が大きすぎます"
		}
	default:
		switch code {
		case "invalid_argument":
			msg = "invalid argument"
		case "malformed_input":
			msg = "malformed input"
		case "duplicate_key":
			msg = "duplicate key"
		case "key_collision":
			msg = "flattened key collision"
		case "too_deep":
			msg = "nesting too deep"
		case "truncated":
			msg = "input too large"
		}
	}
	if msg == "" {
		return code
	}
	if k := data["key"]; k != "" {
		msg += " (" + k + ")"
	}
	return msg
}
