package intent

import "strings"

// Language 表示启发式识别出的语言标签。
type Language string

const (
	English     Language = "en"
	Spanish     Language = "es"
	French      Language = "fr"
	German      Language = "de"
	Arabic      Language = "ar"
	ArabicLatin Language = "ar_lat"
)

// Arabic 脚本所在的 Unicode 区块。
const (
	arabicBlockStart = '\u0600'
	arabicBlockEnd   = '\u06FF'
)

// languageMarker 描述一种语言的识别方式：关键词命中或自定义判定。
type languageMarker struct {
	Lang     Language
	Keywords []string
	Match    func(text string) bool
}

// languageMarkers 按优先级排列，第一个命中的语言生效。
var languageMarkers = []languageMarker{
	{Lang: Spanish, Keywords: []string{"hola", "gracias", "adios", "qué", "que"}},
	{Lang: French, Keywords: []string{"bonjour", "merci", "au revoir", "quoi"}},
	{Lang: German, Keywords: []string{"hallo", "danke", "auf wiedersehen", "was"}},
	{Lang: Arabic, Match: containsArabicScript},
	{Lang: ArabicLatin, Keywords: []string{"salam", "shukran", "habibi", "yalla", "khalas", "inshallah"}},
}

// DetectLanguage 对已转为小写的文本进行语言识别，默认返回英语。
func DetectLanguage(lowered string) Language {
	for _, marker := range languageMarkers {
		if marker.Match != nil {
			if marker.Match(lowered) {
				return marker.Lang
			}
			continue
		}
		if containsAny(lowered, marker.Keywords) {
			return marker.Lang
		}
	}
	return English
}

func containsArabicScript(text string) bool {
	for _, r := range text {
		if r >= arabicBlockStart && r <= arabicBlockEnd {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, word := range keywords {
		if word == "" {
			continue
		}
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
