package provider

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

func heuristicEntry(mood, content string, createdAt time.Time, tags ...string) *entriesDomain.Entry {
	return &entriesDomain.Entry{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    "user-1",
		Title:     entriesDomain.PlainField("title"),
		Content:   entriesDomain.PlainField(content),
		Mood:      mood,
		Tags:      tags,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestHeuristicProviderEmotionDistribution(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()
	day1 := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("two happy one sad", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "good day", day1),
			heuristicEntry("sad", "bad day", day1),
			heuristicEntry("happy", "another good day", day2),
		}

		distribution, err := p.EmotionDistribution(ctx, entries)
		require.NoError(t, err)
		require.Len(t, distribution, 2)

		assert.Equal(t, "happy", distribution[0].Name)
		assert.Equal(t, float64(67), distribution[0].Percentage)
		assert.Equal(t, 2, distribution[0].Count)
		assert.Equal(t, "😊", distribution[0].Emoji)

		assert.Equal(t, "sad", distribution[1].Name)
		assert.Equal(t, float64(33), distribution[1].Percentage)
		assert.Equal(t, 1, distribution[1].Count)
	})

	t.Run("entries without mood are excluded entirely", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "good", day1),
			heuristicEntry("", "no mood", day1),
		}

		distribution, err := p.EmotionDistribution(ctx, entries)
		require.NoError(t, err)
		require.Len(t, distribution, 1)
		assert.Equal(t, float64(100), distribution[0].Percentage)
	})

	t.Run("percentages sum to 100 within rounding", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", day1),
			heuristicEntry("sad", "b", day1),
			heuristicEntry("calm", "c", day2),
		}

		distribution, err := p.EmotionDistribution(ctx, entries)
		require.NoError(t, err)
		sum := 0.0
		for _, slice := range distribution {
			sum += slice.Percentage
		}
		assert.InDelta(t, 100, sum, 1.5)
	})

	t.Run("no entries", func(t *testing.T) {
		distribution, err := p.EmotionDistribution(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, distribution)
	})
}

func TestHeuristicProviderSentimentAnalysis(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()

	t.Run("daily score is the mean of per-entry polarity", func(t *testing.T) {
		day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "good", day),
			heuristicEntry("sad", "bad", day.Add(2*time.Hour)),
		}

		result, err := p.SentimentAnalysis(ctx, entries)
		require.NoError(t, err)
		require.Len(t, result.OverTime, 1)
		assert.Equal(t, "2025-01-01", result.OverTime[0].Date)
		assert.InDelta(t, 0.15, result.OverTime[0].Score, 0.0001)
	})

	t.Run("over time is sorted ascending by date", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "later", time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("sad", "earlier", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
		}

		result, err := p.SentimentAnalysis(ctx, entries)
		require.NoError(t, err)
		require.Len(t, result.OverTime, 2)
		assert.Equal(t, "2025-01-01", result.OverTime[0].Date)
		assert.Equal(t, "2025-01-03", result.OverTime[1].Date)
	})

	t.Run("distribution buckets by polarity band", func(t *testing.T) {
		day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", day),   // 1.0 -> very positive
			heuristicEntry("calm", "b", day),    // 0.3 -> positive
			heuristicEntry("neutral", "c", day), // 0 -> neutral
			heuristicEntry("sad", "d", day),     // -0.7 -> very negative
		}

		result, err := p.SentimentAnalysis(ctx, entries)
		require.NoError(t, err)
		require.Len(t, result.Distribution, 5)
		assert.Equal(t, float64(25), result.Distribution[0].Percentage)
		assert.Equal(t, float64(25), result.Distribution[1].Percentage)
		assert.Equal(t, float64(25), result.Distribution[2].Percentage)
		assert.Equal(t, float64(0), result.Distribution[3].Percentage)
		assert.Equal(t, float64(25), result.Distribution[4].Percentage)
	})

	t.Run("no scored entries yields empty shapes", func(t *testing.T) {
		result, err := p.SentimentAnalysis(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Distribution)
		assert.Empty(t, result.OverTime)
		assert.Zero(t, result.Average)
	})
}

func TestHeuristicProviderWordCloud(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()
	day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("counts frequencies and classifies sentiment", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "grateful for the beach trip, grateful for family", day),
			heuristicEntry("sad", "terrible commute, the beach helped", day),
		}

		items, err := p.WordCloud(ctx, entries)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		// Most frequent word first.
		assert.Equal(t, "grateful", items[0].Text)
		assert.Equal(t, 2, items[0].Frequency)
		assert.Equal(t, 16, items[0].Size)
		assert.Equal(t, "positive", items[0].Sentiment)

		byText := map[string]domain.WordCloudItem{}
		for _, item := range items {
			byText[item.Text] = item
		}
		assert.Equal(t, "negative", byText["terrible"].Sentiment)
		assert.Equal(t, "neutral", byText["beach"].Sentiment)
		assert.NotContains(t, byText, "for")
		assert.NotContains(t, byText, "the")
	})

	t.Run("size is bounded", func(t *testing.T) {
		content := ""
		for i := 0; i < 40; i++ {
			content += "mountain "
		}
		items, err := p.WordCloud(ctx, []*entriesDomain.Entry{heuristicEntry("calm", content, day)})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, domain.WordCloudMaxSize, items[0].Size)
	})

	t.Run("keeps at most the top words", func(t *testing.T) {
		content := ""
		for i := 0; i < 40; i++ {
			content += "word" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + " "
		}
		items, err := p.WordCloud(ctx, []*entriesDomain.Entry{heuristicEntry("calm", content, day)})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(items), domain.WordCloudTopN)
	})
}

func TestHeuristicProviderWritingPatterns(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()

	t.Run("buckets time of day and lengths", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "short entry", time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)),
			heuristicEntry("calm", "another short entry", time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)

		require.Len(t, patterns.TimeDistribution, 4)
		assert.Equal(t, "Morning", patterns.TimeDistribution[0].Time)
		assert.Equal(t, 1, patterns.TimeDistribution[0].Count)
		assert.Equal(t, "Night", patterns.TimeDistribution[3].Time)
		assert.Equal(t, 1, patterns.TimeDistribution[3].Count)

		require.Len(t, patterns.LengthDistribution, 4)
		assert.Equal(t, "0-100 words", patterns.LengthDistribution[0].Range)
		assert.Equal(t, 2, patterns.LengthDistribution[0].Count)

		assert.Equal(t, 2, patterns.Stats.TotalEntries)
		assert.Equal(t, 5, patterns.Stats.TotalWords)
		assert.Equal(t, 3, patterns.Stats.LongestEntry)
		assert.Equal(t, 2, patterns.Stats.ShortestEntry)
		assert.Equal(t, "Wednesday", patterns.Stats.MostProductiveDay)
	})

	t.Run("writing streak counts consecutive days", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "b", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "c", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "d", time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, 3, patterns.Stats.WritingStreak)
	})

	t.Run("consistency score covers the written share of the span", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "b", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "c", time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.InDelta(t, 60.0, patterns.Stats.ConsistencyScore, 0.0001)
	})

	t.Run("single writing day scores full consistency", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("calm", "b", time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, patterns.Stats.ConsistencyScore, 0.0001)
	})

	t.Run("productivity aggregates daily output", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "one two three", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("calm", "four five", time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "six", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", patterns.Productivity.MostProductiveDate)
		assert.InDelta(t, 3.0, patterns.Productivity.AverageDailyWords, 0.0001)
		assert.InDelta(t, 1.5, patterns.Productivity.AverageEntriesPerDay, 0.0001)
		assert.Equal(t, "stable", patterns.Productivity.Trend)
	})

	t.Run("productivity trend rises with recent output", func(t *testing.T) {
		var entries []*entriesDomain.Entry
		for day := 1; day <= 7; day++ {
			entries = append(entries, heuristicEntry(
				"happy",
				strings.TrimSpace(strings.Repeat("word ", 10)),
				time.Date(2025, 1, day, 9, 0, 0, 0, time.UTC),
			))
		}
		entries = append(entries, heuristicEntry(
			"happy",
			strings.TrimSpace(strings.Repeat("word ", 100)),
			time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC),
		))

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "increasing", patterns.Productivity.Trend)
	})

	t.Run("most productive date prefers the earliest on ties", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "one two", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "one two", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
		}

		patterns, err := p.WritingPatterns(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", patterns.Productivity.MostProductiveDate)
	})

	t.Run("no entries yields empty shapes", func(t *testing.T) {
		patterns, err := p.WritingPatterns(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, patterns.TimeDistribution)
		assert.Empty(t, patterns.LengthDistribution)
		assert.Empty(t, patterns.WeeklyPattern)
		assert.Zero(t, patterns.Stats)
		assert.Zero(t, patterns.Productivity)
	})
}

func TestHeuristicProviderMoodCorrelations(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()

	t.Run("most common transition over ascending timestamps", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("sad", "b", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "c", time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("sad", "d", time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC)),
		}

		correlations, err := p.MoodCorrelations(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "happy-sad", correlations.MostCommonTransition)
	})

	t.Run("ties keep the first-seen transition", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("calm", "a", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "b", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("sad", "c", time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC)),
		}

		correlations, err := p.MoodCorrelations(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "calm-happy", correlations.MostCommonTransition)
	})

	t.Run("most positive day breaks ties by earliest date", func(t *testing.T) {
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "a", time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)),
			heuristicEntry("happy", "b", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)),
		}

		correlations, err := p.MoodCorrelations(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-02", correlations.MostPositiveDay)
	})

	t.Run("mood tag and length correlations", func(t *testing.T) {
		day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		entries := []*entriesDomain.Entry{
			heuristicEntry("happy", "one two three four", day, "exercise", "sun"),
			heuristicEntry("happy", "one two", day.Add(time.Hour), "exercise"),
			heuristicEntry("sad", "one two three four five six", day.Add(2*time.Hour), "work"),
		}

		correlations, err := p.MoodCorrelations(ctx, entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"exercise", "sun"}, correlations.MoodTagCorrelations["happy"])
		assert.Equal(t, []string{"work"}, correlations.MoodTagCorrelations["sad"])
		assert.Equal(t, 3.0, correlations.MoodLengthCorrelations["happy"])
		assert.Equal(t, 6.0, correlations.MoodLengthCorrelations["sad"])
		assert.Equal(t, "happy", correlations.TimeMoodCorrelations["Morning"])
	})

	t.Run("no entries yields empty shapes", func(t *testing.T) {
		correlations, err := p.MoodCorrelations(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, correlations.MoodTagCorrelations)
		assert.Empty(t, correlations.MostCommonTransition)
		assert.Empty(t, correlations.MostPositiveDay)
	})
}

func TestHeuristicProviderDetectMood(t *testing.T) {
	ctx := context.Background()
	p := NewHeuristicProvider()

	t.Run("keyword match picks the dominant mood", func(t *testing.T) {
		result, err := p.DetectMood(ctx, "I feel so grateful and thankful for everything")
		require.NoError(t, err)
		assert.Equal(t, "grateful", result.PrimaryMood)
		assert.Contains(t, result.Keywords, "grateful")
		assert.Contains(t, result.Keywords, "thankful")
		assert.InDelta(t, 0.7, result.SentimentScore, 0.0001)
	})

	t.Run("confidence scales with keyword hits", func(t *testing.T) {
		result, err := p.DetectMood(ctx, "I feel so grateful and thankful for everything")
		require.NoError(t, err)
		assert.InDelta(t, 0.2, result.Confidence, 0.0001)

		result, err = p.DetectMood(ctx, "grateful thankful blessed appreciative lucky")
		require.NoError(t, err)
		assert.Equal(t, "grateful", result.PrimaryMood)
		assert.InDelta(t, 0.5, result.Confidence, 0.0001)
	})

	t.Run("no keywords defaults to neutral", func(t *testing.T) {
		result, err := p.DetectMood(ctx, "the quarterly report is due on friday")
		require.NoError(t, err)
		assert.Equal(t, "neutral", result.PrimaryMood)
		assert.Equal(t, 0.5, result.Confidence)
		assert.Empty(t, result.Keywords)
	})

	t.Run("always reports the heuristic source", func(t *testing.T) {
		result, err := p.DetectMood(ctx, "exhausted and drained after the move")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceHeuristic, result.Source)
		assert.Equal(t, "tired", result.PrimaryMood)
	})
}
