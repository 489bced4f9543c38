package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "out_of_range":
			return "範囲外です"
		case "key_not_found":
			return "キーが見つかりません"
		case "parse_error":
			return "解析エラー"
		case "empty_input":
			return "入力が空です"
		case "unexpected_eof":
			return "入力が途中で終了しました"
		case "unexpected_char":
			return "予期しない文字です"
		case "invalid_escape":
			return "エスケープが不正です"
		case "control_char":
			return "制御文字はエスケープが必要です"
		case "invalid_number":
			return "数値が不正です"
		case "invalid_literal":
			return "リテラルが不正です"
		case "unexpected_comma":
			return "予期しないカンマです"
		case "expected_comma":
			return "カンマが必要です"
		case "trailing_comma":
			return "末尾のカンマは使用できません"
		case "expected_eof":
			return "入力の終端が必要です"
		case "duplicate_key":
			return "キーが重複しています"
		case "max_depth":
			return "ネストが深すぎます"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "out_of_range":
			return "out of range"
		case "key_not_found":
			return "key not found"
		case "parse_error":
			return "parse error"
		case "empty_input":
			return "empty input"
		case "unexpected_eof":
			return "unexpected end of input"
		case "unexpected_char":
			return "unexpected character"
		case "invalid_escape":
			return "invalid escape"
		case "control_char":
			return "unescaped control character"
		case "invalid_number":
			return "invalid number"
		case "invalid_literal":
			return "invalid literal"
		case "unexpected_comma":
			return "unexpected comma"
		case "expected_comma":
			return "expected comma"
		case "trailing_comma":
			return "trailing comma"
		case "expected_eof":
			return "expected end of input"
		case "duplicate_key":
			return "duplicate key"
		case "max_depth":
			return "max depth exceeded"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

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
