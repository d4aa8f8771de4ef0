package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"adaptive-coach-be/internal/entity"
	"adaptive-coach-be/internal/pkg/metrics"
	"adaptive-coach-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeProfiles struct {
	profile *entity.UserProfile
	err     error
}

func (f fakeProfiles) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	return f.profile, f.err
}

type fakeActivity struct {
	logs []entity.DailyLog
	err  error
}

func (f fakeActivity) FindRecent(ctx context.Context, userId uuid.UUID, days int) ([]entity.DailyLog, error) {
	return f.logs, f.err
}

type fakeConversation struct {
	turns []entity.ConversationTurn
	err   error
}

func (f fakeConversation) RecentTurns(ctx context.Context, userId, sessionId uuid.UUID, count int) ([]entity.ConversationTurn, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.turns) > count {
		return f.turns[:count], nil
	}
	return f.turns, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var bigBudgets = Budgets{LongTerm: 1000, ShortTerm: 1000, Working: 1000}

func newTestRetriever(profiles ProfileSource, activity ActivitySource, conversation ConversationSource, budgets Budgets) *Retriever {
	return NewRetriever(profiles, activity, conversation, budgets, 30, nopLogger{}, metrics.NoopRecorder{})
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Age:          17,
		WeightKg:     70,
		Injuries:     []string{"knee pain"},
		Allergies:    []string{"peanuts"},
		FitnessLevel: entity.LevelBeginner,
		PrimaryGoal:  entity.GoalBuildMuscle,
	}
}

func day(daysAgo int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour)
}

func TestRetrieveLongTermSelectsQueryRelevantFields(t *testing.T) {
	retriever := newTestRetriever(fakeProfiles{profile: testProfile()}, fakeActivity{}, fakeConversation{}, bigBudgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "safe workout with my injuries")

	assert.Contains(t, mc.LongTerm, "- injuries: knee pain")
	assert.Contains(t, mc.LongTerm, "- fitness_level: beginner")
	assert.Contains(t, mc.LongTerm, "- primary_goal: build_muscle")
	assert.NotContains(t, mc.LongTerm, "allergies", "fields outside the topic must not leak in")
}

func TestRetrieveMissingProfileYieldsEmptyTier(t *testing.T) {
	retriever := newTestRetriever(fakeProfiles{}, fakeActivity{}, fakeConversation{}, bigBudgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "workout ideas")

	assert.Empty(t, mc.LongTerm)
	assert.Empty(t, mc.ShortTerm)
	assert.Empty(t, mc.Working)
}

func TestRetrieveTierFailureIsIsolated(t *testing.T) {
	retriever := newTestRetriever(
		fakeProfiles{err: errors.New("db down")},
		fakeActivity{logs: []entity.DailyLog{{
			Date:     day(0),
			Workouts: []entity.WorkoutLog{{Type: "running", DurationMin: 30, Intensity: "high"}},
		}}},
		fakeConversation{turns: []entity.ConversationTurn{{Role: "user", Content: "hi"}}},
		bigBudgets,
	)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "workout ideas")

	assert.Empty(t, mc.LongTerm)
	assert.Contains(t, mc.ShortTerm, "recent_workouts")
	assert.Contains(t, mc.Working, "user: hi")
}

func TestRetrieveBudgetTruncation(t *testing.T) {
	profile := testProfile()
	profile.Injuries = []string{"a very long injury description that keeps going and going well past any budget"}

	budgets := bigBudgets
	budgets.LongTerm = 10
	retriever := newTestRetriever(fakeProfiles{profile: profile}, fakeActivity{}, fakeConversation{}, budgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "workout ideas")

	assert.Len(t, mc.LongTerm, 10*4)
	assert.True(t, strings.HasSuffix(mc.LongTerm, "..."))
}

func TestRetrieveZeroBudgetReturnsEmpty(t *testing.T) {
	profile := testProfile()
	profile.Injuries = []string{"a very long injury description that keeps going and going well past any budget"}

	budgets := bigBudgets
	budgets.LongTerm = 0
	retriever := newTestRetriever(fakeProfiles{profile: profile}, fakeActivity{}, fakeConversation{}, budgets)

	var mc store.MemoryContext
	assert.NotPanics(t, func() {
		mc = retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "workout ideas")
	})
	assert.Empty(t, mc.LongTerm)
}

func TestTruncateToTokensRuneBoundary(t *testing.T) {
	// 25 two-byte runes: 50 bytes total, over a 10-token (40-char) budget.
	// The cut lands mid-rune at byte 37 and must back up to byte 36.
	text := strings.Repeat("é", 25)

	got := truncateToTokens(text, 10)

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("é", 18)+"...", got)
}

func TestTruncateToTokensTinyBudget(t *testing.T) {
	assert.Equal(t, "", truncateToTokens("plenty of text here", 0))
	assert.Equal(t, "", truncateToTokens("plenty of text here", -1))
}

func TestRetrieveShortTermFormatting(t *testing.T) {
	logs := []entity.DailyLog{
		{
			Date:             day(0),
			Meals:            []entity.MealLog{{Foods: []string{"eggs", "toast"}, Calories: 450, Protein: 30}},
			Workouts:         []entity.WorkoutLog{{Type: "running", DurationMin: 30, Intensity: "high"}},
			Sleep:            &entity.SleepLog{Quality: 4},
			CaloriesConsumed: 2200,
			ProteinTotal:     120,
		},
		{
			Date:             day(1),
			Sleep:            &entity.SleepLog{Quality: 3},
			CaloriesConsumed: 1800,
			ProteinTotal:     80,
		},
	}
	retriever := newTestRetriever(fakeProfiles{profile: testProfile()}, fakeActivity{logs: logs}, fakeConversation{}, bigBudgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "weekly plan please")

	assert.Contains(t, mc.ShortTerm, "- recent_meals: "+day(0).Format("2006-01-02")+": eggs, toast")
	assert.Contains(t, mc.ShortTerm, "- recent_workouts: "+day(0).Format("2006-01-02")+": running (30min, high)")
	assert.Contains(t, mc.ShortTerm, "- recent_sleep: "+day(0).Format("2006-01-02")+": quality 4/5, "+day(1).Format("2006-01-02")+": quality 3/5")
}

func TestRetrieveShortTermAverages(t *testing.T) {
	logs := []entity.DailyLog{
		{Date: day(0), CaloriesConsumed: 2200, CaloriesBurned: 400, ProteinTotal: 120},
		{Date: day(1), CaloriesConsumed: 1800, CaloriesBurned: 200, ProteinTotal: 80},
	}
	retriever := newTestRetriever(fakeProfiles{profile: testProfile()}, fakeActivity{logs: logs}, fakeConversation{}, bigBudgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "progress toward my target weight")

	assert.Contains(t, mc.ShortTerm, "- avg_daily_calories: 2000")
	assert.Contains(t, mc.ShortTerm, "- avg_daily_burned: 300")
}

func TestRetrieveWorkingFormatsTurns(t *testing.T) {
	turns := []entity.ConversationTurn{
		{Role: "user", Content: "how much protein do I need"},
		{Role: "assistant", Content: "about 150g a day"},
	}
	retriever := newTestRetriever(fakeProfiles{profile: testProfile()}, fakeActivity{}, fakeConversation{turns: turns}, bigBudgets)

	mc := retriever.Retrieve(context.Background(), uuid.New(), uuid.New(), "workout ideas")

	assert.Equal(t, "user: how much protein do I need\nassistant: about 150g a day", mc.Working)
}
