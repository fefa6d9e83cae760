package domain

// MoodPolarity maps mood labels to a sentiment polarity score in [-1, 1].
var MoodPolarity = map[string]float64{
	"happy":    1,
	"excited":  0.9,
	"grateful": 0.7,
	"calm":     0.3,
	"neutral":  0,
	"tired":    -0.2,
	"anxious":  -0.3,
	"sad":      -0.7,
	"angry":    -0.9,
}

// EmotionEmoji maps mood labels to a display emoji.
var EmotionEmoji = map[string]string{
	"happy":      "😊",
	"sad":        "😢",
	"angry":      "😠",
	"anxious":    "😟",
	"excited":    "🤩",
	"calm":       "😌",
	"neutral":    "😐",
	"grateful":   "🙏",
	"frustrated": "😤",
	"content":    "😊",
	"tired":      "😴",
	"stressed":   "😰",
}

// DefaultEmoji is used for mood labels outside EmotionEmoji.
const DefaultEmoji = "😐"

// Sentiment band colors.
const (
	ColorVeryPositive = "#10B981"
	ColorPositive     = "#34D399"
	ColorNeutral      = "#6B7280"
	ColorNegative     = "#F87171"
	ColorVeryNegative = "#EF4444"
)

// SentimentLabel buckets a polarity score into a display label.
func SentimentLabel(score float64) string {
	switch {
	case score >= 0.6:
		return "Very Positive"
	case score >= 0.2:
		return "Positive"
	case score >= -0.2:
		return "Neutral"
	case score >= -0.6:
		return "Negative"
	default:
		return "Very Negative"
	}
}

// SentimentColor returns the chart color for a polarity score.
func SentimentColor(score float64) string {
	switch {
	case score > 0.1:
		return ColorVeryPositive
	case score < -0.1:
		return ColorVeryNegative
	default:
		return ColorNeutral
	}
}

// Word cloud tuning.
const (
	// WordCloudTopN caps how many words the cloud carries.
	WordCloudTopN = 30
	// WordCloudMinLength drops tokens shorter than this.
	WordCloudMinLength = 4
	// WordCloudMaxSize bounds the visual size of a word.
	WordCloudMaxSize = 60
	// WordCloudBaseSize is the size before the per-occurrence step applies.
	WordCloudBaseSize = 12
	// WordCloudSizeStep is added per occurrence.
	WordCloudSizeStep = 2
)

// WordCloudSize maps a word frequency to a bounded visual size.
func WordCloudSize(frequency int) int {
	size := WordCloudBaseSize + WordCloudSizeStep*frequency
	if size > WordCloudMaxSize {
		return WordCloudMaxSize
	}
	return size
}

// StopWords are excluded from the word cloud.
var StopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "even": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "here": {}, "how": {},
	"into": {}, "just": {}, "like": {}, "more": {}, "most": {}, "much": {},
	"once": {}, "only": {}, "other": {}, "over": {}, "really": {}, "same": {},
	"should": {}, "some": {}, "somehow": {}, "such": {}, "than": {},
	"that": {}, "their": {}, "them": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "time": {}, "today": {},
	"under": {}, "until": {}, "very": {}, "was": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "will": {}, "with": {},
	"would": {}, "your": {},
}

// PositiveWords is the small lexicon used to classify word cloud sentiment.
var PositiveWords = map[string]struct{}{
	"amazing": {}, "beautiful": {}, "blessed": {}, "calm": {}, "excited": {},
	"fantastic": {}, "friends": {}, "fun": {}, "good": {}, "grateful": {},
	"great": {}, "happy": {}, "hope": {}, "love": {}, "loved": {},
	"peaceful": {}, "perfect": {}, "proud": {}, "relaxed": {}, "thankful": {},
	"wonderful": {},
}

// NegativeWords is the counterpart negative lexicon.
var NegativeWords = map[string]struct{}{
	"afraid": {}, "angry": {}, "anxious": {}, "awful": {}, "bad": {},
	"cried": {}, "crying": {}, "depressed": {}, "exhausted": {}, "hate": {},
	"hurt": {}, "lonely": {}, "lost": {}, "pain": {}, "sad": {},
	"scared": {}, "stressed": {}, "terrible": {}, "tired": {}, "worried": {},
	"worst": {},
}

// MoodKeywords maps mood labels to keywords used for text-based mood
// detection when the remote model is unreachable.
var MoodKeywords = map[string][]string{
	"happy": {
		"happy", "joy", "excited", "cheerful", "delighted", "pleased",
		"content", "satisfied", "glad", "elated",
	},
	"sad": {
		"sad", "depressed", "heartbroken", "lonely", "rejected", "crying",
	},
	"angry": {"angry", "mad", "rage", "betrayed", "cheated"},
	"anxious": {"worried", "scared", "insecure", "paranoid"},
	"excited": {
		"excited", "thrilled", "enthusiastic", "eager", "pumped", "energetic",
		"animated", "exhilarated", "ecstatic",
	},
	"calm": {
		"calm", "peaceful", "relaxed", "serene", "tranquil", "composed",
		"zen", "balanced", "centered", "still",
	},
	"grateful": {
		"grateful", "thankful", "appreciative", "blessed", "fortunate",
		"lucky", "indebted", "obliged",
	},
	"tired": {
		"tired", "exhausted", "weary", "fatigued", "drained", "sleepy",
		"lethargic", "spent",
	},
}

// Time-of-day band boundaries (hours).
const (
	MorningStartHour   = 6
	AfternoonStartHour = 12
	EveningStartHour   = 18
	NightStartHour     = 22
)

// TimeOfDay buckets an hour of day into a named band.
func TimeOfDay(hour int) string {
	switch {
	case hour >= MorningStartHour && hour < AfternoonStartHour:
		return "Morning"
	case hour >= AfternoonStartHour && hour < EveningStartHour:
		return "Afternoon"
	case hour >= EveningStartHour && hour < NightStartHour:
		return "Evening"
	default:
		return "Night"
	}
}

// Entry length band boundaries (words).
var LengthBucketBounds = []struct {
	Max   int
	Label string
}{
	{100, "0-100 words"},
	{300, "100-300 words"},
	{500, "300-500 words"},
	{0, "500+ words"},
}
