package i18n

// Translator retrieves localized messages for leaf-error codes. data carries
// optional metadata to embed in the message (for example, "expected" or
// "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			if data["expected"] != "" {
				return data["expected"] + " を期待しましたが、" + data["got"] + " が見つかりました"
			}
			return "型が不正です"
		case "missing_field":
			return "必須フィールド " + data["key"] + " が不足しています"
		case "missing_index":
			return "インデックス " + data["index"] + " に値がありません"
		case "unrefinable_value":
			return "値を変換できません: " + data["message"]
		case "structure_error":
			return "構造が不正です: " + data["message"]
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			if data["expected"] != "" {
				return "expected a value of type " + data["expected"] + ", but got: " + data["got"]
			}
			return "type mismatch"
		case "missing_field":
			return "no value was found at the key, " + data["key"]
		case "missing_index":
			return "no value was found at the index, " + data["index"]
		case "unrefinable_value":
			return "the value could not be refined: " + data["message"]
		case "structure_error":
			return "the structure was not valid: " + data["message"]
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
