package api

// Language identifies one of the languages customer-facing emails can be
// written in. The zero value is not a valid language; callers that accept a
// language code from a request must go through ParseLanguage and decide for
// themselves what to do with an unrecognized code.
type Language string

const (
	LanguageLithuanian = Language("lt")
	LanguageEnglish    = Language("en")
	LanguageRussian    = Language("ru")
	LanguageLatvian    = Language("lv")

	// DefaultLanguage is what the original paper forms were printed in
	DefaultLanguage = LanguageLithuanian
)

var supportedLanguages = map[Language]struct{}{
	LanguageLithuanian: {},
	LanguageEnglish:    {},
	LanguageRussian:    {},
	LanguageLatvian:    {},
}

// ParseLanguage converts a request-supplied language code into a Language.
// The second return value reports whether the code is supported.
func ParseLanguage(code string) (Language, bool) {
	l := Language(code)
	_, ok := supportedLanguages[l]
	return l, ok
}

func (l Language) String() string {
	return string(l)
}
