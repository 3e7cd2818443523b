package weather

const (
	LangEnglish = "en"
	LangRussian = "ru"
)

// DetectScript reports ScriptCyrillic when the query holds any rune of the
// Cyrillic block (U+0400..U+04FF).
func DetectScript(query string) ScriptHint {
	for _, r := range query {
		if r >= 0x0400 && r <= 0x04FF {
			return ScriptCyrillic
		}
	}
	return ScriptLatinOrOther
}

// Language maps the hint to the preferred geocoding language tag.
func (h ScriptHint) Language() string {
	if h == ScriptCyrillic {
		return LangRussian
	}
	return LangEnglish
}

// OtherLanguage returns the fallback tag for a bilingual retry.
func OtherLanguage(lang string) string {
	if lang == LangRussian {
		return LangEnglish
	}
	return LangRussian
}
