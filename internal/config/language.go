package config

// CJK language codes (first 3 chars of the code).
var cjkCodes = map[string]bool{
	"zho": true,
	"jpn": true,
	"kor": true,
	"chi": true,
	"zh":  true,
	"ja":  true,
	"ko":  true,
}

// IsCJK returns true if the language code represents Chinese, Japanese, or Korean.
func IsCJK(langCode string) bool {
	if len(langCode) > 3 {
		langCode = langCode[:3]
	}
	return cjkCodes[langCode]
}

// Joiner returns the separator used when concatenating tokens or sentences for
// the given language: empty for Chinese and Japanese, a space otherwise.
func Joiner(langCode string) string {
	if len(langCode) > 2 {
		langCode = langCode[:2]
	}
	if langCode == "zh" || langCode == "ja" {
		return ""
	}
	return " "
}
