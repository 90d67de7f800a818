// Package textproc normalizes free-form user text for the AI engine: it
// expands fertility/medical abbreviations and collapses redundant
// punctuation. All tables are static and read-only.
package textproc

import (
	"fmt"
	"regexp"
	"strings"
)

// Mirrors Python's string.punctuation; used to strip surrounding punctuation
// from tokens before the abbreviation lookup.
const punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var abbreviations = map[string]string{
	"af":   "aunt flo (period)",
	"bbt":  "basal body temperature",
	"bd":   "baby dance (intercourse)",
	"bfn":  "big fat negative (negative pregnancy test)",
	"bfp":  "big fat positive (positive pregnancy test)",
	"cd":   "cycle day",
	"cm":   "cervical mucus",
	"dpo":  "days post ovulation",
	"ewcm": "egg white cervical mucus",
	"fet":  "frozen embryo transfer",
	"fsh":  "follicle stimulating hormone",
	"hcg":  "human chorionic gonadotropin",
	"hsg":  "hysterosalpingogram",
	"icsi": "intracytoplasmic sperm injection",
	"ivf":  "in vitro fertilization",
	"iui":  "intrauterine insemination",
	"lh":   "luteinizing hormone",
	"lp":   "luteal phase",
	"mc":   "miscarriage",
	"o":    "ovulation",
	"ohss": "ovarian hyperstimulation syndrome",
	"opk":  "ovulation predictor kit",
	"pcos": "polycystic ovary syndrome",
	"pg":   "pregnant",
	"pms":  "premenstrual syndrome",
	"re":   "reproductive endocrinologist",
	"sa":   "semen analysis",
	"ttc":  "trying to conceive",
	"tww":  "two week wait",
}

// Keeps ExtractKeywords output deterministic.
var abbreviationOrder = []string{
	"af", "bbt", "bd", "bfn", "bfp", "cd", "cm", "dpo", "ewcm", "fet",
	"fsh", "hcg", "hsg", "icsi", "ivf", "iui", "lh", "lp", "mc", "o",
	"ohss", "opk", "pcos", "pg", "pms", "re", "sa", "ttc", "tww",
}

var medicalTerms = []string{
	"ovulation", "menstruation", "follicle", "embryo", "implantation",
	"progesterone", "estrogen", "testosterone", "endometrium", "cervix",
	"uterus", "ovary", "fallopian", "sperm", "egg", "zygote", "blastocyst",
	"trophoblast", "placenta", "gestation", "trimester", "conception",
	"fertility", "infertility", "miscarriage", "pregnancy", "insemination",
}

var (
	ellipsisRun   = regexp.MustCompile(`\.{3,}`)
	bangRun       = regexp.MustCompile(`!{2,}`)
	questionRun   = regexp.MustCompile(`\?{2,}`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	abbreviationPatterns = compileAbbreviationPatterns()
)

func compileAbbreviationPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(abbreviationOrder))
	for _, abbr := range abbreviationOrder {
		patterns[abbr] = regexp.MustCompile(`\b` + regexp.QuoteMeta(abbr) + `\b`)
	}
	return patterns
}

// Normalize expands abbreviations and cleans redundant punctuation. The
// transform is lossy: inter-token whitespace collapses to single spaces, and
// an already-expanded token no longer matches its abbreviation key, so the
// function is not idempotent across repeated application. Empty input yields
// empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return cleanPunctuation(expandAbbreviations(text))
}

func expandAbbreviations(text string) string {
	words := strings.Fields(text)
	result := make([]string, 0, len(words))
	for _, word := range words {
		key := strings.ToLower(strings.Trim(word, punctuationChars))
		if expansion, ok := abbreviations[key]; ok {
			result = append(result, fmt.Sprintf("%s (%s)", word, expansion))
		} else {
			result = append(result, word)
		}
	}
	return strings.Join(result, " ")
}

// Runs collapse per character class and are never merged into each other, so
// mixed runs like "??!!" survive as-is.
func cleanPunctuation(text string) string {
	text = ellipsisRun.ReplaceAllString(text, "...")
	text = bangRun.ReplaceAllString(text, "!!")
	text = questionRun.ReplaceAllString(text, "??")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractKeywords returns the medical terms (substring match) and
// abbreviation keys (whole-word match) found in text, in table order.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)
	keywords := make([]string, 0)
	for _, term := range medicalTerms {
		if strings.Contains(lowered, term) {
			keywords = append(keywords, term)
		}
	}
	for _, abbr := range abbreviationOrder {
		if abbreviationPatterns[abbr].MatchString(lowered) {
			keywords = append(keywords, abbr)
		}
	}
	return keywords
}

// Summarize truncates text to at most maxLength runes, backing off to the
// last space boundary when one exists and appending "...". Text at or under
// the limit is returned unchanged.
func Summarize(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	cut := maxLength - len("...")
	if cut < 1 {
		cut = 1
	}
	prefix := string(runes[:cut])
	if idx := strings.LastIndex(prefix, " "); idx >= 0 {
		prefix = prefix[:idx]
	}
	return prefix + "..."
}
