// Package lang holds the label locales and the number words they need.
package lang

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the vocabulary of interval and chord labels.
type Locale int

const (
	English Locale = iota
	Chinese
)

var supported = []language.Tag{
	language.English, // first tag is the fallback
	language.Chinese,
}

var matcher = language.NewMatcher(supported)

func (l Locale) String() string {
	switch l {
	case Chinese:
		return "zh"
	}
	return "en"
}

// Tag is the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == Chinese {
		return language.Chinese
	}
	return language.English
}

// Match picks a locale for an Accept-Language header value. Unparseable or
// unsupported values give English.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Locale(idx)
}

// Parse reads a single language name such as "en", "zh-Hans" or "zh_CN".
func Parse(name string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return English, fmt.Errorf("unknown language %q: %w", name, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("unsupported language %q", name)
	}
	return Locale(idx), nil
}

var chineseDigits = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// ChineseNumeral writes n (0-99) in Chinese numerals, e.g. 12 -> 十二,
// 20 -> 二十. Larger values fall back to Arabic digits.
func ChineseNumeral(n int) string {
	switch {
	case n < 0 || n > 99:
		return strconv.Itoa(n)
	case n < 10:
		return chineseDigits[n]
	}

	var sb strings.Builder
	tens, ones := n/10, n%10
	if tens > 1 {
		sb.WriteString(chineseDigits[tens])
	}
	sb.WriteString("十")
	if ones > 0 {
		sb.WriteString(chineseDigits[ones])
	}
	return sb.String()
}

var intervalNames = map[int]string{
	1:  "unison",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "octave",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelfth",
	13: "thirteenth",
	14: "fourteenth",
	15: "double octave",
}

// IntervalName names a diatonic interval number in English, e.g.
// 3 -> third, 8 -> octave, 17 -> 17th.
func IntervalName(n int) string {
	if name, ok := intervalNames[n]; ok {
		return name
	}
	return Ordinal(n)
}

// Ordinal writes n with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
