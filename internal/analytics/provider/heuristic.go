package provider

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// HeuristicProvider is the Tier-3 terminal provider: pure computation over
// the given entries, no I/O, always available, never fails.
type HeuristicProvider struct {
	// now supplies the fallback timestamp for entries without one.
	now func() time.Time
}

// NewHeuristicProvider creates the local heuristic provider.
func NewHeuristicProvider() *HeuristicProvider {
	return &HeuristicProvider{now: time.Now}
}

func (p *HeuristicProvider) Name() domain.Source {
	return domain.SourceHeuristic
}

func (p *HeuristicProvider) Available(_ context.Context) bool {
	return true
}

// entryTime returns the entry's stored timestamp, falling back to the
// current time when the entry carries none.
func (p *HeuristicProvider) entryTime(entry *entriesDomain.Entry) time.Time {
	if entry.CreatedAt.IsZero() {
		return p.now().UTC()
	}
	return entry.CreatedAt
}

func (p *HeuristicProvider) entryDate(entry *entriesDomain.Entry) string {
	return p.entryTime(entry).Format("2006-01-02")
}

// EmotionDistribution counts entries per mood label. Entries without a mood
// are excluded from both numerator and denominator.
func (p *HeuristicProvider) EmotionDistribution(_ context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionSlice, error) {
	counts := map[string]int{}
	var order []string
	total := 0
	for _, entry := range entries {
		if entry.Mood == "" {
			continue
		}
		if _, seen := counts[entry.Mood]; !seen {
			order = append(order, entry.Mood)
		}
		counts[entry.Mood]++
		total++
	}

	distribution := make([]domain.EmotionSlice, 0, len(order))
	for _, mood := range order {
		count := counts[mood]
		emoji, ok := domain.EmotionEmoji[strings.ToLower(mood)]
		if !ok {
			emoji = domain.DefaultEmoji
		}
		distribution = append(distribution, domain.EmotionSlice{
			Name:       mood,
			Percentage: math.Round(float64(count) / float64(total) * 100),
			Count:      count,
			Emoji:      emoji,
			Trend:      p.emotionTrend(entries, mood),
		})
	}

	// Largest share first; ties keep first-seen order.
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})
	return distribution, nil
}

// emotionTrend compares the recent per-date frequency of a mood against its
// older frequency.
func (p *HeuristicProvider) emotionTrend(entries []*entriesDomain.Entry, mood string) string {
	countsByDate := map[string]int{}
	for _, entry := range entries {
		if entry.Mood == mood {
			countsByDate[p.entryDate(entry)]++
		}
	}
	if len(countsByDate) < 2 {
		return "stable"
	}

	dates := make([]string, 0, len(countsByDate))
	for date := range countsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	window := 3
	if len(dates) < window {
		window = len(dates)
	}
	olderAvg := 0.0
	for _, date := range dates[:window] {
		olderAvg += float64(countsByDate[date])
	}
	olderAvg /= float64(window)
	recentAvg := 0.0
	for _, date := range dates[len(dates)-window:] {
		recentAvg += float64(countsByDate[date])
	}
	recentAvg /= float64(window)

	switch {
	case recentAvg > olderAvg*1.2:
		return "increasing"
	case recentAvg < olderAvg*0.8:
		return "decreasing"
	default:
		return "stable"
	}
}

// SentimentAnalysis maps mood labels to polarity scores, buckets them into a
// distribution, and averages them per calendar date for charting.
func (p *HeuristicProvider) SentimentAnalysis(_ context.Context, entries []*entriesDomain.Entry) (domain.SentimentAnalysis, error) {
	result := domain.SentimentAnalysis{
		Distribution: []domain.SentimentBucket{},
		OverTime:     []domain.SentimentPoint{},
	}

	var scores []float64
	scoresByDate := map[string][]float64{}
	for _, entry := range entries {
		polarity, ok := domain.MoodPolarity[strings.ToLower(entry.Mood)]
		if !ok {
			continue
		}
		scores = append(scores, polarity)
		date := p.entryDate(entry)
		scoresByDate[date] = append(scoresByDate[date], polarity)
	}
	if len(scores) == 0 {
		return result, nil
	}

	result.Distribution = sentimentDistribution(scores)

	dates := make([]string, 0, len(scoresByDate))
	for date := range scoresByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		score := mean(scoresByDate[date])
		result.OverTime = append(result.OverTime, domain.SentimentPoint{
			Date:  date,
			Score: round3(score),
			Label: domain.SentimentLabel(score),
		})
	}

	result.Average = round3(mean(scores))
	result.Volatility = round3(stddev(scores))
	return result, nil
}

func sentimentDistribution(scores []float64) []domain.SentimentBucket {
	buckets := []domain.SentimentBucket{
		{Sentiment: "Very Positive", Color: domain.ColorVeryPositive},
		{Sentiment: "Positive", Color: domain.ColorPositive},
		{Sentiment: "Neutral", Color: domain.ColorNeutral},
		{Sentiment: "Negative", Color: domain.ColorNegative},
		{Sentiment: "Very Negative", Color: domain.ColorVeryNegative},
	}
	counts := make([]int, len(buckets))
	for _, score := range scores {
		switch {
		case score >= 0.6:
			counts[0]++
		case score >= 0.2:
			counts[1]++
		case score >= -0.2:
			counts[2]++
		case score >= -0.6:
			counts[3]++
		default:
			counts[4]++
		}
	}
	for i := range buckets {
		buckets[i].Percentage = round1(float64(counts[i]) / float64(len(scores)) * 100)
	}
	return buckets
}

// EmotionsOverTime counts moods per calendar date, ascending by date.
func (p *HeuristicProvider) EmotionsOverTime(_ context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionPoint, error) {
	byDate := map[string]map[string]int{}
	for _, entry := range entries {
		if entry.Mood == "" {
			continue
		}
		date := p.entryDate(entry)
		if byDate[date] == nil {
			byDate[date] = map[string]int{}
		}
		byDate[date][entry.Mood]++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]domain.EmotionPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, domain.EmotionPoint{Date: date, Emotions: byDate[date]})
	}
	return points, nil
}

// WordCloud tokenizes title and content, drops stop words and short tokens,
// and keeps the most frequent words with lexicon-based sentiment.
func (p *HeuristicProvider) WordCloud(_ context.Context, entries []*entriesDomain.Entry) ([]domain.WordCloudItem, error) {
	freq := map[string]int{}
	var order []string
	for _, entry := range entries {
		for _, word := range tokenize(entry.Title.Value + " " + entry.Content.Value) {
			if _, seen := freq[word]; !seen {
				order = append(order, word)
			}
			freq[word]++
		}
	}

	// Most frequent first; ties keep first-seen order.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > domain.WordCloudTopN {
		order = order[:domain.WordCloudTopN]
	}

	items := make([]domain.WordCloudItem, 0, len(order))
	for _, word := range order {
		sentiment, color := wordSentiment(word)
		items = append(items, domain.WordCloudItem{
			Text:      word,
			Frequency: freq[word],
			Size:      domain.WordCloudSize(freq[word]),
			Sentiment: sentiment,
			Color:     color,
		})
	}
	return items, nil
}

// tokenize lowercases text, strips punctuation, and drops stop words and
// tokens below the minimum length.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < domain.WordCloudMinLength {
			continue
		}
		if _, stop := domain.StopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

func wordSentiment(word string) (string, string) {
	if _, ok := domain.PositiveWords[word]; ok {
		return "positive", domain.ColorVeryPositive
	}
	if _, ok := domain.NegativeWords[word]; ok {
		return "negative", domain.ColorVeryNegative
	}
	return "neutral", domain.ColorNeutral
}

// WritingPatterns derives time-of-day, length, and weekly writing habits.
func (p *HeuristicProvider) WritingPatterns(_ context.Context, entries []*entriesDomain.Entry) (domain.WritingPatterns, error) {
	result := domain.WritingPatterns{
		TimeDistribution:   []domain.TimeSlot{},
		LengthDistribution: []domain.LengthBucket{},
		WeeklyPattern:      map[string]int{},
	}
	if len(entries) == 0 {
		return result, nil
	}

	timeSlots := []string{"Morning", "Afternoon", "Evening", "Night"}
	slotCounts := map[string]int{}
	lengthCounts := make([]int, len(domain.LengthBucketBounds))
	totalWords := 0
	longest := 0
	shortest := math.MaxInt
	dailyWords := map[string]int{}
	dailyEntries := map[string]int{}

	for _, entry := range entries {
		ts := p.entryTime(entry)
		slotCounts[domain.TimeOfDay(ts.Hour())]++
		result.WeeklyPattern[ts.Weekday().String()]++

		words := len(strings.Fields(entry.Content.Value))
		totalWords += words
		date := p.entryDate(entry)
		dailyWords[date] += words
		dailyEntries[date]++
		if words > longest {
			longest = words
		}
		if words < shortest {
			shortest = words
		}
		for i, bound := range domain.LengthBucketBounds {
			if bound.Max == 0 || words <= bound.Max {
				lengthCounts[i]++
				break
			}
		}
	}

	total := len(entries)
	favoriteTime := ""
	favoriteCount := -1
	for _, slot := range timeSlots {
		count := slotCounts[slot]
		result.TimeDistribution = append(result.TimeDistribution, domain.TimeSlot{
			Time:       slot,
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		})
		if count > favoriteCount {
			favoriteTime = slot
			favoriteCount = count
		}
	}
	for i, bound := range domain.LengthBucketBounds {
		result.LengthDistribution = append(result.LengthDistribution, domain.LengthBucket{
			Range:      bound.Label,
			Count:      lengthCounts[i],
			Percentage: round1(float64(lengthCounts[i]) / float64(total) * 100),
		})
	}

	dates := make([]string, 0, len(dailyWords))
	for date := range dailyWords {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result.Stats = domain.WritingStats{
		TotalEntries:      total,
		TotalWords:        totalWords,
		AverageLength:     round1(float64(totalWords) / float64(total)),
		LongestEntry:      longest,
		ShortestEntry:     shortest,
		WritingStreak:     writingStreak(dates),
		MostProductiveDay: mostProductiveDay(result.WeeklyPattern),
		FavoriteTime:      favoriteTime,
		ConsistencyScore:  consistencyScore(dates),
	}
	result.Productivity = productivityStats(dates, dailyWords, dailyEntries)
	return result, nil
}

// writingStreak counts consecutive calendar days ending at the most recent
// entry date. Dates must be sorted ascending and unique.
func writingStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	latest, err := time.Parse("2006-01-02", dates[len(dates)-1])
	if err != nil {
		return 0
	}
	streak := 1
	for i := len(dates) - 2; i >= 0; i-- {
		expected := latest.AddDate(0, 0, -(len(dates)-1-i)).Format("2006-01-02")
		if dates[i] != expected {
			break
		}
		streak++
	}
	return streak
}

// consistencyScore is the percentage of calendar days with at least one entry
// over the span from the first to the last entry date.
func consistencyScore(dates []string) float64 {
	if len(dates) == 0 {
		return 0
	}
	first, err := time.Parse("2006-01-02", dates[0])
	if err != nil {
		return 0
	}
	last, err := time.Parse("2006-01-02", dates[len(dates)-1])
	if err != nil {
		return 0
	}
	span := int(last.Sub(first).Hours()/24) + 1
	if span <= 0 {
		return 0
	}
	return round1(float64(len(dates)) / float64(span) * 100)
}

// productivityStats aggregates per-day word output. The most productive date
// prefers the earliest date on equal word counts.
func productivityStats(dates []string, dailyWords, dailyEntries map[string]int) domain.ProductivityStats {
	if len(dates) == 0 {
		return domain.ProductivityStats{}
	}

	bestDate := ""
	bestWords := -1
	totalWords := 0
	totalEntries := 0
	for _, date := range dates {
		totalWords += dailyWords[date]
		totalEntries += dailyEntries[date]
		if dailyWords[date] > bestWords {
			bestDate = date
			bestWords = dailyWords[date]
		}
	}

	days := float64(len(dates))
	return domain.ProductivityStats{
		MostProductiveDate:   bestDate,
		AverageDailyWords:    round1(float64(totalWords) / days),
		AverageEntriesPerDay: round1(float64(totalEntries) / days),
		Trend:                productivityTrend(dates, dailyWords),
	}
}

// productivityTrend compares average daily words over the last seven writing
// days against the first seven.
func productivityTrend(dates []string, dailyWords map[string]int) string {
	window := 7
	if len(dates) < window {
		window = len(dates)
	}

	recent := 0.0
	for _, date := range dates[len(dates)-window:] {
		recent += float64(dailyWords[date])
	}
	older := 0.0
	for _, date := range dates[:window] {
		older += float64(dailyWords[date])
	}
	recent /= float64(window)
	older /= float64(window)

	switch {
	case recent > older*1.1:
		return "increasing"
	case recent < older*0.9:
		return "decreasing"
	default:
		return "stable"
	}
}

// mostProductiveDay picks the weekday with the most entries, ties broken by
// weekday order starting at Sunday.
func mostProductiveDay(weekly map[string]int) string {
	best := ""
	bestCount := -1
	for day := time.Sunday; day <= time.Saturday; day++ {
		if count := weekly[day.String()]; count > bestCount {
			best = day.String()
			bestCount = count
		}
	}
	if bestCount <= 0 {
		return ""
	}
	return best
}

// MoodCorrelations relates moods to tags, entry length, and time of day, and
// derives the most common mood transition and the most positive day.
func (p *HeuristicProvider) MoodCorrelations(_ context.Context, entries []*entriesDomain.Entry) (domain.MoodCorrelations, error) {
	result := domain.MoodCorrelations{
		MoodTagCorrelations:    map[string][]string{},
		MoodLengthCorrelations: map[string]float64{},
		TimeMoodCorrelations:   map[string]string{},
	}
	if len(entries) == 0 {
		return result, nil
	}

	tagCounts := map[string]map[string]int{}
	tagOrder := map[string][]string{}
	lengthSums := map[string]int{}
	lengthCounts := map[string]int{}
	slotMoodCounts := map[string]map[string]int{}
	slotMoodOrder := map[string][]string{}
	polarityByDate := map[string][]float64{}

	for _, entry := range entries {
		if entry.Mood == "" {
			continue
		}
		if tagCounts[entry.Mood] == nil {
			tagCounts[entry.Mood] = map[string]int{}
		}
		for _, tag := range entry.Tags {
			if _, seen := tagCounts[entry.Mood][tag]; !seen {
				tagOrder[entry.Mood] = append(tagOrder[entry.Mood], tag)
			}
			tagCounts[entry.Mood][tag]++
		}

		lengthSums[entry.Mood] += len(strings.Fields(entry.Content.Value))
		lengthCounts[entry.Mood]++

		slot := domain.TimeOfDay(p.entryTime(entry).Hour())
		if slotMoodCounts[slot] == nil {
			slotMoodCounts[slot] = map[string]int{}
		}
		if _, seen := slotMoodCounts[slot][entry.Mood]; !seen {
			slotMoodOrder[slot] = append(slotMoodOrder[slot], entry.Mood)
		}
		slotMoodCounts[slot][entry.Mood]++

		if polarity, ok := domain.MoodPolarity[strings.ToLower(entry.Mood)]; ok {
			date := p.entryDate(entry)
			polarityByDate[date] = append(polarityByDate[date], polarity)
		}
	}

	for mood, order := range tagOrder {
		counts := tagCounts[mood]
		sort.SliceStable(order, func(i, j int) bool {
			return counts[order[i]] > counts[order[j]]
		})
		if len(order) > 3 {
			order = order[:3]
		}
		result.MoodTagCorrelations[mood] = order
	}
	for mood, sum := range lengthSums {
		result.MoodLengthCorrelations[mood] = round1(float64(sum) / float64(lengthCounts[mood]))
	}
	for slot, order := range slotMoodOrder {
		counts := slotMoodCounts[slot]
		best := order[0]
		for _, mood := range order[1:] {
			if counts[mood] > counts[best] {
				best = mood
			}
		}
		result.TimeMoodCorrelations[slot] = best
	}

	result.MostCommonTransition = p.mostCommonTransition(entries)
	result.MostPositiveDay = mostPositiveDay(polarityByDate)
	return result, nil
}

// mostCommonTransition counts consecutive mood pairs over timestamp-ascending
// entries; ties keep the first-seen pair.
func (p *HeuristicProvider) mostCommonTransition(entries []*entriesDomain.Entry) string {
	sorted := make([]*entriesDomain.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Mood != "" {
			sorted = append(sorted, entry)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return p.entryTime(sorted[i]).Before(p.entryTime(sorted[j]))
	})

	counts := map[string]int{}
	var order []string
	for i := 1; i < len(sorted); i++ {
		key := sorted[i-1].Mood + "-" + sorted[i].Mood
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	if len(order) == 0 {
		return ""
	}

	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return best
}

// mostPositiveDay picks the date with the highest mean polarity, ties broken
// by earliest date.
func mostPositiveDay(polarityByDate map[string][]float64) string {
	dates := make([]string, 0, len(polarityByDate))
	for date := range polarityByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	best := ""
	bestScore := math.Inf(-1)
	for _, date := range dates {
		if score := mean(polarityByDate[date]); score > bestScore {
			best = date
			bestScore = score
		}
	}
	return best
}

// DetectMood scores the text against the mood keyword lexicon and picks the
// strongest match, defaulting to neutral.
func (p *HeuristicProvider) DetectMood(_ context.Context, text string) (domain.MoodDetection, error) {
	lowered := strings.ToLower(text)

	type moodScore struct {
		mood string
		hits int
	}
	var scores []moodScore
	var matched []string
	matchedSet := map[string]struct{}{}

	moods := make([]string, 0, len(domain.MoodKeywords))
	for mood := range domain.MoodKeywords {
		moods = append(moods, mood)
	}
	sort.Strings(moods)

	for _, mood := range moods {
		hits := 0
		for _, keyword := range domain.MoodKeywords[mood] {
			if strings.Contains(lowered, keyword) {
				hits++
				if _, seen := matchedSet[keyword]; !seen {
					matchedSet[keyword] = struct{}{}
					matched = append(matched, keyword)
				}
			}
		}
		if hits > 0 {
			scores = append(scores, moodScore{mood: mood, hits: hits})
		}
	}

	result := domain.MoodDetection{
		PrimaryMood: "neutral",
		Confidence:  0.5,
		Keywords:    []string{},
		Source:      domain.SourceHeuristic,
	}
	if matched != nil {
		result.Keywords = matched
	}
	if len(scores) > 0 {
		best := scores[0]
		for _, candidate := range scores[1:] {
			if candidate.hits > best.hits {
				best = candidate
			}
		}
		result.PrimaryMood = best.mood
		result.Confidence = math.Min(float64(best.hits)/10, 1)
	}
	result.SentimentScore = domain.MoodPolarity[result.PrimaryMood]
	return result, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
