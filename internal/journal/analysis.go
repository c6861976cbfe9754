// Package journal produces supportive responses to journal entries, either
// from the Gemini API or from local keyword analysis.
package journal

import (
	"slices"
	"strings"
	"unicode"
)

// Intensity is the overall emotional weight of an entry.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
)

func (i Intensity) String() string {
	switch i {
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Emotions and themes detected by Analyze.
const (
	EmotionAnxiety = "anxiety"
	EmotionSadness = "sadness"
	EmotionAnger   = "anger"
	EmotionJoy     = "joy"
	EmotionFatigue = "fatigue"
	EmotionHope    = "hope"

	ThemeRelationships = "relationships"
	ThemeWork          = "work"
	ThemeHealth        = "health"
	ThemePersonal      = "personal"
	ThemeLoss          = "loss"
)

type keywordGroup struct {
	name   string
	words  []string
	weight int
}

// Order matters: responses pick the first matching emotion.
var emotionKeywords = []keywordGroup{
	{EmotionAnxiety, []string{"anxious", "worried", "nervous", "stress", "overwhelmed", "fear", "scared", "panic", "uncertain", "restless"}, 2},
	{EmotionSadness, []string{"sad", "down", "depressed", "unhappy", "terrible", "bad", "lonely", "miserable", "hurt", "pain", "crying", "tears"}, 2},
	{EmotionAnger, []string{"angry", "mad", "frustrated", "upset", "annoyed", "rage", "hate", "furious", "irritated"}, 2},
	{EmotionJoy, []string{"happy", "joy", "excited", "great", "wonderful", "good", "amazing", "fantastic", "blessed", "peaceful", "grateful"}, 1},
	{EmotionFatigue, []string{"tired", "exhausted", "drained", "fatigue", "burnout", "worn", "weary"}, 1},
	{EmotionHope, []string{"hope", "optimistic", "better", "improving", "healing", "growing", "progress"}, 1},
}

var themeKeywords = []keywordGroup{
	{ThemeRelationships, []string{"relationship", "partner", "friend", "family", "love", "breakup", "marriage", "dating"}, 0},
	{ThemeWork, []string{"work", "job", "career", "boss", "colleague", "office", "project", "deadline"}, 0},
	{ThemeHealth, []string{"health", "sick", "doctor", "medicine", "therapy", "exercise", "sleep"}, 0},
	{ThemePersonal, []string{"myself", "identity", "confidence", "self-worth", "goals", "dreams", "future"}, 0},
	{ThemeLoss, []string{"loss", "grief", "death", "goodbye", "missing", "memorial", "funeral"}, 0},
}

// Analysis is the emotional context of an entry.
type Analysis struct {
	Emotions     []string
	Themes       []string
	Score        int
	Intensity    Intensity
	NeedsSupport bool
}

// HasEmotion reports whether name was detected.
func (a Analysis) HasEmotion(name string) bool {
	return slices.Contains(a.Emotions, name)
}

// HasTheme reports whether name was detected.
func (a Analysis) HasTheme(name string) bool {
	return slices.Contains(a.Themes, name)
}

// Analyze scores the emotions and themes of text by keyword. Each matching
// word adds its emotion's weight; a score above 2 is medium intensity and
// above 5 high.
func Analyze(text string) Analysis {
	words := tokenize(text)

	var a Analysis
	for _, g := range emotionKeywords {
		if n := countMatches(words, g.words); n > 0 {
			a.Emotions = append(a.Emotions, g.name)
			a.Score += n * g.weight
		}
	}
	for _, g := range themeKeywords {
		if countMatches(words, g.words) > 0 {
			a.Themes = append(a.Themes, g.name)
		}
	}

	switch {
	case a.Score > 5:
		a.Intensity = IntensityHigh
	case a.Score > 2:
		a.Intensity = IntensityMedium
	}

	negative := a.HasEmotion(EmotionAnxiety) || a.HasEmotion(EmotionSadness) || a.HasEmotion(EmotionAnger)
	a.NeedsSupport = negative && a.Intensity != IntensityLow
	return a
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func countMatches(words, keywords []string) int {
	n := 0
	for _, w := range words {
		if slices.Contains(keywords, w) {
			n++
		}
	}
	return n
}
