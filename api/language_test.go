package api

import (
	"testing"
)

func (ts *TestSuite) Test_ParseLanguage() {
	t := ts.T()

	tests := []struct {
		code   string
		want   Language
		wantOk bool
	}{
		{code: "lt", want: LanguageLithuanian, wantOk: true},
		{code: "en", want: LanguageEnglish, wantOk: true},
		{code: "ru", want: LanguageRussian, wantOk: true},
		{code: "lv", want: LanguageLatvian, wantOk: true},
		{code: "de", want: Language("de"), wantOk: false},
		{code: "", want: Language(""), wantOk: false},
		{code: "LT", want: Language("LT"), wantOk: false},
	}
	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			got, ok := ParseLanguage(tt.code)
			ts.Equal(tt.want, got)
			ts.Equal(tt.wantOk, ok)
		})
	}
}
