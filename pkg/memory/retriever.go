package memory

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/store"

	"github.com/google/uuid"
)

// charsPerToken is the budget approximation used everywhere memory gets
// truncated.
const charsPerToken = 4

// shortTermDetailDays bounds how far back itemized meal/workout/sleep lines
// reach; averages still use the whole retention window.
const shortTermDetailDays = 3

// shortTermMaxItems bounds itemized lines per activity field.
const shortTermMaxItems = 5

// maxListItems bounds how many list values get formatted per profile field.
const maxListItems = 5

// ProfileSource is the long-term tier: the permanent user profile.
type ProfileSource interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error)
}

// ActivitySource is the short-term tier: the rolling daily-log window.
type ActivitySource interface {
	FindRecent(ctx context.Context, userId uuid.UUID, days int) ([]entity.DailyLog, error)
}

// ConversationSource is the working tier: the per-session conversation.
type ConversationSource interface {
	RecentTurns(ctx context.Context, userId, sessionId uuid.UUID, count int) ([]entity.ConversationTurn, error)
}

// Budgets carries the per-tier token caps.
type Budgets struct {
	LongTerm  int
	ShortTerm int
	Working   int
}

// Retriever fetches query-relevant slices of all three memory tiers. A
// failure in one tier degrades that tier to an empty string; Retrieve itself
// never fails.
type Retriever struct {
	profiles      ProfileSource
	activity      ActivitySource
	conversation  ConversationSource
	budgets       Budgets
	retentionDays int
	log           logger.ILogger
	recorder      metrics.Recorder
}

func NewRetriever(profiles ProfileSource, activity ActivitySource, conversation ConversationSource, budgets Budgets, retentionDays int, log logger.ILogger, recorder metrics.Recorder) *Retriever {
	return &Retriever{
		profiles:      profiles,
		activity:      activity,
		conversation:  conversation,
		budgets:       budgets,
		retentionDays: retentionDays,
		log:           log,
		recorder:      recorder,
	}
}

// Retrieve returns one formatted, budget-truncated string per tier, selected
// by the query's topics.
func (r *Retriever) Retrieve(ctx context.Context, userId, sessionId uuid.UUID, query string) store.MemoryContext {
	spec := SpecForQuery(query)

	return store.MemoryContext{
		LongTerm:  r.fetchTier(ctx, "long_term", func() (string, error) { return r.fetchLongTerm(ctx, userId, spec.LongTermFields) }),
		ShortTerm: r.fetchTier(ctx, "short_term", func() (string, error) { return r.fetchShortTerm(ctx, userId, spec.ShortTermFields) }),
		Working:   r.fetchTier(ctx, "working", func() (string, error) { return r.fetchWorking(ctx, userId, sessionId, spec.MessageCount) }),
	}
}

// fetchTier isolates one tier's failure and records the fetch.
func (r *Retriever) fetchTier(ctx context.Context, tier string, fetch func() (string, error)) string {
	start := time.Now()
	text, err := fetch()
	r.recorder.ObserveMemoryFetch(tier, err == nil, time.Since(start))
	if err != nil {
		r.log.Warn("memory", "tier fetch failed, degrading to empty", map[string]interface{}{
			"tier":  tier,
			"error": err.Error(),
		})
		return ""
	}
	return text
}

type memoryLine struct {
	key   string
	value string
}

func (r *Retriever) fetchLongTerm(ctx context.Context, userId uuid.UUID, fields []string) (string, error) {
	profile, err := r.profiles.FindByUserId(ctx, userId)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", nil
	}

	var lines []memoryLine
	for _, field := range fields {
		value := profile.Field(field)
		if value == nil {
			continue
		}
		lines = append(lines, memoryLine{key: field, value: formatValue(value)})
	}

	return truncateToTokens(renderLines(lines), r.budgets.LongTerm), nil
}

func (r *Retriever) fetchShortTerm(ctx context.Context, userId uuid.UUID, fields []string) (string, error) {
	recent, err := r.activity.FindRecent(ctx, userId, r.retentionDays)
	if err != nil {
		return "", err
	}
	if len(recent) == 0 {
		return "", nil
	}

	detail := recent
	if len(detail) > shortTermDetailDays {
		detail = detail[:shortTermDetailDays]
	}

	var lines []memoryLine
	for _, field := range fields {
		switch field {
		case "meals":
			var meals []string
			for _, day := range detail {
				for _, meal := range day.Meals {
					meals = append(meals, fmt.Sprintf("%s: %s", day.Date.Format("2006-01-02"), strings.Join(meal.Foods, ", ")))
				}
			}
			if len(meals) > 0 {
				lines = append(lines, memoryLine{"recent_meals", joinCapped(meals, shortTermMaxItems)})
			}

		case "workouts":
			var workouts []string
			for _, day := range detail {
				for _, workout := range day.Workouts {
					workouts = append(workouts, fmt.Sprintf("%s: %s (%dmin, %s)",
						day.Date.Format("2006-01-02"), workout.Type, workout.DurationMin, workout.Intensity))
				}
			}
			if len(workouts) > 0 {
				lines = append(lines, memoryLine{"recent_workouts", joinCapped(workouts, shortTermMaxItems)})
			}

		case "sleep":
			var sleeps []string
			for _, day := range detail {
				if day.Sleep != nil {
					sleeps = append(sleeps, fmt.Sprintf("%s: quality %d/5", day.Date.Format("2006-01-02"), day.Sleep.Quality))
				}
			}
			if len(sleeps) > 0 {
				lines = append(lines, memoryLine{"recent_sleep", strings.Join(sleeps, ", ")})
			}

		case "calories_consumed":
			lines = append(lines, memoryLine{"avg_daily_calories", fmt.Sprintf("%d", averageOf(recent, func(d entity.DailyLog) int { return d.CaloriesConsumed }))})

		case "protein_total":
			lines = append(lines, memoryLine{"avg_daily_protein", fmt.Sprintf("%dg", averageOf(recent, func(d entity.DailyLog) int { return d.ProteinTotal }))})

		case "calories_burned":
			lines = append(lines, memoryLine{"avg_daily_burned", fmt.Sprintf("%d", averageOf(recent, func(d entity.DailyLog) int { return d.CaloriesBurned }))})
		}
	}

	return truncateToTokens(renderLines(lines), r.budgets.ShortTerm), nil
}

func (r *Retriever) fetchWorking(ctx context.Context, userId, sessionId uuid.UUID, messageCount int) (string, error) {
	turns, err := r.conversation.RecentTurns(ctx, userId, sessionId, messageCount)
	if err != nil {
		return "", err
	}
	if len(turns) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}
	return truncateToTokens(strings.Join(lines, "\n"), r.budgets.Working), nil
}

func renderLines(lines []memoryLine) string {
	if len(lines) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, fmt.Sprintf("- %s: %s", line.key, line.value))
	}
	return strings.Join(rendered, "\n")
}

func formatValue(value interface{}) string {
	if list, ok := value.([]string); ok {
		return joinCapped(list, maxListItems)
	}
	return fmt.Sprintf("%v", value)
}

func joinCapped(items []string, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, ", ")
}

func averageOf(logs []entity.DailyLog, pick func(entity.DailyLog) int) int {
	if len(logs) == 0 {
		return 0
	}
	var total int
	for _, log := range logs {
		total += pick(log)
	}
	return total / len(logs)
}

// truncateToTokens enforces a token budget on formatted memory text. Budgets
// are approximate: charsPerToken characters per token, with three characters
// reclaimed for the ellipsis on overflow. A budget too small to hold the
// ellipsis yields an empty string, and the cut never splits a UTF-8 rune.
func truncateToTokens(text string, maxTokens int) string {
	maxChars := maxTokens * charsPerToken
	if len(text) <= maxChars {
		return text
	}
	if maxChars <= 3 {
		return ""
	}

	cut := maxChars - 3
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
