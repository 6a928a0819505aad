package preprocess

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	urlRe        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	emailRe      = regexp.MustCompile(`\S+@\S+\.\S+`)
	currencyRe   = regexp.MustCompile(`\$(\d+)(?:\.(\d{2}))?`)
	timeRe       = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm|AM|PM)?\b`)
	ordinalRe    = regexp.MustCompile(`\b(\d+)(st|nd|rd|th)\b`)
	numberRe     = regexp.MustCompile(`\b\d{1,15}\b`)
)

var symbolReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"«", `"`, "»", `"`,
	"—", ", ", "–", ", ",
	"…", "...", "•", ",",
)

type Preprocessor struct{}

func NewPreprocessor() *Preprocessor {
	return &Preprocessor{}
}

// Process normalizes raw text into a form the phonemizer handles well:
// stripped markup, expanded contractions and numerals, ASCII punctuation.
func (p *Preprocessor) Process(text string) string {
	text = norm.NFC.String(text)
	text = urlRe.ReplaceAllString(text, "")
	text = htmlTagRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = expandContractions(text)
	text = expandCurrency(text)
	text = expandTime(text)
	text = expandOrdinals(text)
	text = expandCardinals(text)
	text = symbolReplacer.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var contractions = []struct{ from, to string }{
	{"won't", "will not"},
	{"can't", "cannot"},
	{"shan't", "shall not"},
	{"let's", "let us"},
	{"n't", " not"},
	{"'re", " are"},
	{"'ve", " have"},
	{"'ll", " will"},
	{"'d", " would"},
	{"'m", " am"},
	{"'s", " is"},
}

func expandContractions(text string) string {
	lower := strings.ToLower(text)
	for _, c := range contractions {
		lower = strings.ReplaceAll(lower, c.from, c.to)
	}
	if text != "" && unicode.IsUpper([]rune(text)[0]) {
		runes := []rune(lower)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return lower
}

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = []string{"", "thousand", "million", "billion", "trillion"}

func numberToWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var parts []string
	for scale := 0; n > 0; scale++ {
		if chunk := int(n % 1000); chunk > 0 {
			words := chunkToWords(chunk)
			if scale > 0 && scale < len(scaleWords) {
				words += " " + scaleWords[scale]
			}
			parts = append([]string{words}, parts...)
		}
		n /= 1000
	}

	result := strings.Join(parts, " ")
	if negative {
		return "negative " + result
	}
	return result
}

func chunkToWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n < 100:
		if ones := n % 10; ones != 0 {
			return tensWords[n/10] + " " + onesWords[ones]
		}
		return tensWords[n/10]
	}
	hundreds := onesWords[n/100] + " hundred"
	if rest := n % 100; rest != 0 {
		return hundreds + " " + chunkToWords(rest)
	}
	return hundreds
}

func parseDigits(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func expandCardinals(text string) string {
	return numberRe.ReplaceAllStringFunc(text, func(match string) string {
		return numberToWords(parseDigits(match))
	})
}

func expandCurrency(text string) string {
	return currencyRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := currencyRe.FindStringSubmatch(match)
		dollars := parseDigits(parts[1])
		result := numberToWords(dollars)
		if dollars == 1 {
			result += " dollar"
		} else {
			result += " dollars"
		}
		if parts[2] != "" && parts[2] != "00" {
			cents := parseDigits(parts[2])
			result += " and " + numberToWords(cents)
			if cents == 1 {
				result += " cent"
			} else {
				result += " cents"
			}
		}
		return result
	})
}

func expandTime(text string) string {
	return timeRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := timeRe.FindStringSubmatch(match)
		hour := parseDigits(parts[1])
		minute := parseDigits(parts[2])
		suffix := strings.ToLower(parts[3])

		result := numberToWords(hour)
		switch {
		case minute == 0 && suffix == "":
			result += " o'clock"
		case minute == 0:
			result += " " + suffix
		case minute < 10:
			result += " oh " + numberToWords(minute)
		default:
			result += " " + numberToWords(minute)
		}
		if suffix != "" && minute != 0 {
			result += " " + suffix
		}
		return result
	})
}

var ordinalWords = map[int64]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth",
	6: "sixth", 7: "seventh", 8: "eighth", 9: "ninth", 10: "tenth",
	11: "eleventh", 12: "twelfth", 13: "thirteenth", 14: "fourteenth",
	15: "fifteenth", 16: "sixteenth", 17: "seventeenth", 18: "eighteenth",
	19: "nineteenth", 20: "twentieth", 30: "thirtieth", 40: "fortieth",
	50: "fiftieth", 60: "sixtieth", 70: "seventieth", 80: "eightieth",
	90: "ninetieth",
}

func expandOrdinals(text string) string {
	return ordinalRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := ordinalRe.FindStringSubmatch(match)
		n := parseDigits(parts[1])
		if word, ok := ordinalWords[n]; ok {
			return word
		}
		if n > 20 && n < 100 {
			if word, ok := ordinalWords[n%10]; ok {
				return tensWords[n/10] + " " + word
			}
		}
		return numberToWords(n) + "th"
	})
}
