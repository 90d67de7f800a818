// Package emotion implements keyword-based emotion and distress detection
// for user-authored text. The keyword tables are static and read-only after
// package initialization.
package emotion

import (
	"regexp"
	"strings"
)

// Label is one of the fixed emotion categories plus neutral.
type Label string

const (
	Happy      Label = "happy"
	Sad        Label = "sad"
	Angry      Label = "angry"
	Anxious    Label = "anxious"
	Distressed Label = "distressed"
	Hopeful    Label = "hopeful"
	Neutral    Label = "neutral"
)

// Result pairs the detected emotion with the 0-10 distress level.
type Result struct {
	Emotion       Label `json:"emotion"`
	DistressLevel int   `json:"distressLevel"`
}

type category struct {
	label    Label
	patterns []*regexp.Regexp
}

// Category order is fixed: on a score tie the first-declared category wins,
// except that distressed wins any tie it is part of.
var categories = []category{
	{Happy, compileKeywords([]string{
		"happy", "joy", "excited", "great", "wonderful", "amazing", "good",
		"delighted", "pleased", "glad", "thrilled", "ecstatic", "content",
		"cheerful", "joyful", "elated", "overjoyed", "blissful", "grateful",
	})},
	{Sad, compileKeywords([]string{
		"sad", "unhappy", "depressed", "down", "blue", "upset", "cry",
		"miserable", "heartbroken", "gloomy", "somber", "melancholy",
		"tearful", "sorrowful", "grief", "mourning", "dejected",
	})},
	{Angry, compileKeywords([]string{
		"angry", "mad", "furious", "annoyed", "frustrated", "irritated",
		"outraged", "enraged", "infuriated", "livid", "seething", "hostile",
		"resentful", "bitter", "indignant", "irate", "fuming",
	})},
	{Anxious, compileKeywords([]string{
		"anxious", "worried", "nervous", "stress", "afraid", "fear",
		"uneasy", "apprehensive", "concerned", "distressed", "panicked",
		"frightened", "terrified", "scared", "dread", "alarmed", "tense",
	})},
	{Distressed, compileKeywords([]string{
		"help", "emergency", "pain", "hurt", "terrible", "unbearable",
		"suicidal", "hopeless", "desperate", "overwhelmed", "suffering",
		"agony", "anguish", "torment", "torture", "trauma", "crisis",
	})},
	{Hopeful, compileKeywords([]string{
		"hope", "optimistic", "looking forward", "positive", "better",
		"promising", "encouraged", "reassured", "confident", "expectant",
		"anticipating", "eager", "enthusiastic", "motivated", "inspired",
	})},
}

// Distress phrases are matched by plain substring containment, not word
// boundaries, since several are multi-word.
var distressWeights = map[string]int{
	"suicidal":        10,
	"kill myself":     10,
	"end my life":     10,
	"want to die":     9,
	"can't go on":     9,
	"unbearable pain": 9,
	"emergency":       8,
	"severe pain":     8,
	"extreme pain":    8,
	"hopeless":        7,
	"desperate":       7,
	"suffering":       7,
	"overwhelmed":     6,
	"crisis":          6,
	"trauma":          6,
	"terrible pain":   6,
	"agony":           5,
	"anguish":         5,
	"distressed":      4,
	"hurting":         4,
	"painful":         3,
	"upset":           3,
	"worried":         2,
	"anxious":         2,
}

func compileKeywords(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, keyword := range keywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(keyword)+`\b`))
	}
	return patterns
}

// DetectEmotion returns the dominant emotion label for text, or Neutral when
// no category keyword occurs.
func DetectEmotion(text string) Label {
	if text == "" {
		return Neutral
	}

	lowered := strings.ToLower(text)
	best := Neutral
	bestScore := 0
	distressedScore := 0
	for _, cat := range categories {
		score := 0
		for _, pattern := range cat.patterns {
			score += len(pattern.FindAllStringIndex(lowered, -1))
		}
		if cat.label == Distressed {
			distressedScore = score
		}
		if score > bestScore {
			bestScore = score
			best = cat.label
		}
	}

	if bestScore == 0 {
		return Neutral
	}
	if distressedScore == bestScore {
		return Distressed
	}
	return best
}

// DetectDistressLevel returns the maximum severity weight among distress
// phrases contained in text, or 0 when none is present.
func DetectDistressLevel(text string) int {
	if text == "" {
		return 0
	}

	lowered := strings.ToLower(text)
	level := 0
	for phrase, weight := range distressWeights {
		if strings.Contains(lowered, phrase) && weight > level {
			level = weight
		}
	}
	return level
}

// Detect runs both detections over the same input.
func Detect(text string) Result {
	return Result{
		Emotion:       DetectEmotion(text),
		DistressLevel: DetectDistressLevel(text),
	}
}

// IsValidLabel reports whether value is one of the seven known labels.
func IsValidLabel(value string) bool {
	switch Label(value) {
	case Happy, Sad, Angry, Anxious, Distressed, Hopeful, Neutral:
		return true
	}
	return false
}
