package i18n

import "golang.org/x/text/language"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "actual").
type Translator interface {
	Message(code string, data map[string]string) string
}

// supported lists the built-in dictionary languages, best match first.
var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "union_mismatch":
			return "いずれの型にも一致しません"
		case "element_type":
			return "要素の型が不正です"
		case "missing_hint":
			return "型ヒントがありません"
		case "arity_mismatch":
			return "引数の数が一致しません"
		case "unknown_param":
			return "未知の引数です"
		case "access_denied":
			return "アクセスが拒否されました"
		case "parse_error":
			return "解析エラー"
		case "not_allowed":
			return "許可されていない値です"
		case "out_of_range":
			return "範囲外です"
		case "rule_violation":
			return "条件を満たしません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "union_mismatch":
			return "no union alternative matched"
		case "element_type":
			return "invalid element type"
		case "missing_hint":
			return "type hint missing"
		case "arity_mismatch":
			return "argument count mismatch"
		case "unknown_param":
			return "unknown parameter"
		case "access_denied":
			return "access denied"
		case "parse_error":
			return "parse error"
		case "not_allowed":
			return "value not allowed"
		case "out_of_range":
			return "out of range"
		case "rule_violation":
			return "rule not satisfied"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language. The input is
// matched as a BCP 47 tag against the supported languages, so "ja" and
// "ja-JP" both select the Japanese dictionary; anything unmatched falls back
// to English.
func SetLanguage(lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	_, idx, _ := matcher.Match(tag)
	if supported[idx] == language.Japanese {
		currentTranslator = dictTranslator{lang: "ja"}
		return
	}
	currentTranslator = dictTranslator{lang: "en"}
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
