// Package domain defines the analytics result types and the fixed lexicons
// used by the heuristic tier. The insights bundle is schema-stable: every key
// is always present, empty slices and zero structs stand in for missing data.
package domain

// Source identifies which provider tier produced a result.
type Source string

const (
	SourceAI        Source = "ai"
	SourceSecondary Source = "secondary"
	SourceHeuristic Source = "heuristic"
)

// Capability names one analytic derived from a user's entries.
type Capability string

const (
	CapabilityMood                Capability = "mood"
	CapabilityEmotionDistribution Capability = "emotion_distribution"
	CapabilitySentimentAnalysis   Capability = "sentiment_analysis"
	CapabilityEmotionsOverTime    Capability = "emotions_over_time"
	CapabilityWordCloud           Capability = "word_cloud"
	CapabilityWritingPatterns     Capability = "writing_patterns"
	CapabilityMoodCorrelations    Capability = "mood_correlations"
)

// Capabilities lists every capability in bundle order.
var Capabilities = []Capability{
	CapabilityEmotionDistribution,
	CapabilitySentimentAnalysis,
	CapabilityEmotionsOverTime,
	CapabilityWordCloud,
	CapabilityWritingPatterns,
	CapabilityMoodCorrelations,
}

// EmotionSlice is one mood's share of the entries that carry a mood label.
type EmotionSlice struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"value"`
	Count      int     `json:"count"`
	Emoji      string  `json:"emoji"`
	Trend      string  `json:"trend"`
}

// SentimentBucket is one band of the sentiment distribution histogram.
type SentimentBucket struct {
	Sentiment  string  `json:"sentiment"`
	Percentage float64 `json:"value"`
	Color      string  `json:"color"`
}

// SentimentPoint is the mean sentiment for one calendar date.
type SentimentPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// SentimentAnalysis aggregates sentiment across the entry set.
type SentimentAnalysis struct {
	Distribution []SentimentBucket `json:"distribution"`
	OverTime     []SentimentPoint  `json:"over_time"`
	Average      float64           `json:"average_sentiment"`
	Volatility   float64           `json:"sentiment_volatility"`
}

// EmotionPoint holds per-mood entry counts for one calendar date.
type EmotionPoint struct {
	Date     string         `json:"date"`
	Emotions map[string]int `json:"emotions"`
}

// WordCloudItem is one word of the word cloud with its display attributes.
type WordCloudItem struct {
	Text      string `json:"text"`
	Frequency int    `json:"frequency"`
	Size      int    `json:"size"`
	Sentiment string `json:"sentiment"`
	Color     string `json:"color"`
}

// TimeSlot is one time-of-day band of the writing time distribution.
type TimeSlot struct {
	Time       string  `json:"time"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LengthBucket is one word-count band of the entry length distribution.
type LengthBucket struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WritingStats summarizes the entry set.
type WritingStats struct {
	TotalEntries      int     `json:"total_entries"`
	TotalWords        int     `json:"total_words"`
	AverageLength     float64 `json:"average_length"`
	LongestEntry      int     `json:"longest_entry"`
	ShortestEntry     int     `json:"shortest_entry"`
	WritingStreak     int     `json:"writing_streak"`
	MostProductiveDay string  `json:"most_productive_day"`
	FavoriteTime      string  `json:"favorite_time"`
	ConsistencyScore  float64 `json:"consistency_score"`
}

// ProductivityStats aggregates word output by calendar day.
type ProductivityStats struct {
	MostProductiveDate   string  `json:"most_productive_day"`
	AverageDailyWords    float64 `json:"average_daily_words"`
	AverageEntriesPerDay float64 `json:"average_entries_per_day"`
	Trend                string  `json:"productivity_trend"`
}

// WritingPatterns describes when and how much the user writes.
type WritingPatterns struct {
	TimeDistribution   []TimeSlot        `json:"time_distribution"`
	LengthDistribution []LengthBucket    `json:"length_distribution"`
	WeeklyPattern      map[string]int    `json:"weekly_pattern"`
	Stats              WritingStats      `json:"stats"`
	Productivity       ProductivityStats `json:"productivity"`
}

// MoodCorrelations relates mood labels to tags, entry length, and time.
type MoodCorrelations struct {
	MoodTagCorrelations    map[string][]string `json:"mood_tag_correlations"`
	MoodLengthCorrelations map[string]float64  `json:"mood_length_correlations"`
	TimeMoodCorrelations   map[string]string   `json:"time_mood_correlations"`
	MostCommonTransition   string              `json:"most_common_transition"`
	MostPositiveDay        string              `json:"most_positive_day"`
}

// InsightsBundle is the complete analytics result for one user's entry set.
// All six keys are always present.
type InsightsBundle struct {
	EmotionDistribution []EmotionSlice    `json:"emotion_distribution"`
	SentimentAnalysis   SentimentAnalysis `json:"sentiment_analysis"`
	EmotionsOverTime    []EmotionPoint    `json:"emotions_over_time"`
	WordCloud           []WordCloudItem   `json:"word_cloud"`
	WritingPatterns     WritingPatterns   `json:"writing_patterns"`
	MoodCorrelations    MoodCorrelations  `json:"mood_correlations"`
}

// EmptyBundle returns a schema-complete bundle with no data.
func EmptyBundle() InsightsBundle {
	return InsightsBundle{
		EmotionDistribution: []EmotionSlice{},
		SentimentAnalysis: SentimentAnalysis{
			Distribution: []SentimentBucket{},
			OverTime:     []SentimentPoint{},
		},
		EmotionsOverTime: []EmotionPoint{},
		WordCloud:        []WordCloudItem{},
		WritingPatterns: WritingPatterns{
			TimeDistribution:   []TimeSlot{},
			LengthDistribution: []LengthBucket{},
			WeeklyPattern:      map[string]int{},
		},
		MoodCorrelations: MoodCorrelations{
			MoodTagCorrelations:    map[string][]string{},
			MoodLengthCorrelations: map[string]float64{},
			TimeMoodCorrelations:   map[string]string{},
		},
	}
}

// Envelope is the orchestrator's response: callers can distinguish a
// degraded-but-successful result by inspecting Source.
type Envelope struct {
	Success  bool           `json:"success"`
	Insights InsightsBundle `json:"insights"`
	Source   Source         `json:"source"`
}

// MoodDetection is the result of mood detection over free text.
type MoodDetection struct {
	PrimaryMood    string   `json:"primary_mood"`
	Confidence     float64  `json:"confidence"`
	SentimentScore float64  `json:"sentiment_score"`
	Keywords       []string `json:"keywords"`
	Source         Source   `json:"source"`
}

// HealthStatus reports remote tier reachability.
type HealthStatus struct {
	AIAvailable        bool `json:"ai_available"`
	SecondaryAvailable bool `json:"secondary_available"`
}
