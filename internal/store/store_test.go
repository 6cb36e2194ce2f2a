package store_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-reminders/internal/model"
	"voice-reminders/internal/store"
	"voice-reminders/tests/testutil"
)

var base = time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC)

func reminderAt(id string, at time.Time) model.Reminder {
	return model.Reminder{
		ID:        id,
		Title:     "title " + id,
		Message:   "message " + id,
		Datetime:  at,
		CreatedAt: base,
	}
}

func TestReminderCRUD(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	// Insert out of order; reads must come back sorted by datetime.
	require.NoError(t, s.CreateReminder(ctx, reminderAt("c", base.Add(3*time.Hour))))
	require.NoError(t, s.CreateReminder(ctx, reminderAt("a", base.Add(time.Hour))))
	require.NoError(t, s.CreateReminder(ctx, reminderAt("b", base.Add(2*time.Hour))))

	reminders, err := s.GetReminders(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Equal(t, "a", reminders[0].ID)
	assert.Equal(t, "b", reminders[1].ID)
	assert.Equal(t, "c", reminders[2].ID)
	assert.True(t, reminders[0].Datetime.Equal(base.Add(time.Hour)))

	require.NoError(t, s.DeleteReminder(ctx, "b"))
	reminders, err = s.GetReminders(ctx)
	require.NoError(t, err)
	assert.Len(t, reminders, 2)

	assert.Error(t, s.DeleteReminder(ctx, "b"))
}

func TestCreateReminderValidation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	r := reminderAt("r1", base.Add(time.Hour))
	r.Message = "   "
	assert.Error(t, s.CreateReminder(ctx, r))

	r = reminderAt("", base.Add(time.Hour))
	assert.Error(t, s.CreateReminder(ctx, r))
}

func TestCreateReminderDerivesTitle(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	r := reminderAt("r1", base.Add(time.Hour))
	r.Title = ""
	r.Message = strings.Repeat("walk the dog ", 5)
	require.NoError(t, s.CreateReminder(ctx, r))

	got, err := s.GetReminderByID(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got.Title, "..."))
	assert.Equal(t, model.DeriveTitle(r.Message), got.Title)
}

func TestReminderVoiceFlagRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	r := reminderAt("r1", base.Add(time.Hour))
	r.IsVoice = true
	require.NoError(t, s.CreateReminder(ctx, r))

	got, err := s.GetReminderByID(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.IsVoice)
}

func TestGetReminderByIDNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetReminderByID(context.Background(), "missing")
	assert.Error(t, err)
}

func TestHouseTaskCompletion(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task := model.HouseTask{
		ID:        "t1",
		Title:     "Vacuum",
		Area:      "Living room",
		Frequency: model.FrequencyWeekly,
		CreatedAt: base,
	}
	require.NoError(t, s.CreateHouseTask(ctx, task))

	got, err := s.GetHouseTaskByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got.LastCompleted)

	done := base.Add(time.Hour)
	require.NoError(t, s.CompleteHouseTask(ctx, "t1", done))

	got, err = s.GetHouseTaskByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got.LastCompleted)
	assert.True(t, got.LastCompleted.Equal(done))

	// Completion only stamps the timestamp.
	assert.Equal(t, "Vacuum", got.Title)
	assert.Equal(t, "Living room", got.Area)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)

	assert.Error(t, s.CompleteHouseTask(ctx, "missing", done))
}

func TestHouseTaskValidation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	assert.Error(t, s.CreateHouseTask(ctx, model.HouseTask{Area: "Kitchen"}))
	assert.Error(t, s.CreateHouseTask(ctx, model.HouseTask{Title: "Mop"}))
	assert.Error(t, s.CreateHouseTask(ctx, model.HouseTask{
		Title: "Mop", Area: "Kitchen", Frequency: "fortnightly",
	}))

	// Empty frequency defaults to weekly.
	require.NoError(t, s.CreateHouseTask(ctx, model.HouseTask{
		ID: "t2", Title: "Mop", Area: "Kitchen", CreatedAt: base,
	}))
	got, err := s.GetHouseTaskByID(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)
}

func TestLifeGoalFlow(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateLifeGoal(ctx, model.LifeGoal{
		ID: "g1", Title: "Run a marathon", Category: model.CategoryHealth, DateCreated: base,
	}))
	require.NoError(t, s.CreateLifeGoal(ctx, model.LifeGoal{
		ID: "g2", Title: "Learn woodworking", Category: model.CategoryPersonal, DateCreated: base.Add(time.Minute),
	}))

	health := model.CategoryHealth
	goals, err := s.GetLifeGoals(ctx, store.GoalFilter{Category: &health})
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "g1", goals[0].ID)
	assert.False(t, goals[0].Completed)

	require.NoError(t, s.CompleteLifeGoal(ctx, "g1"))

	completed := true
	goals, err = s.GetLifeGoals(ctx, store.GoalFilter{Completed: &completed})
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "g1", goals[0].ID)
	assert.True(t, goals[0].Completed)

	assert.Error(t, s.CompleteLifeGoal(ctx, "missing"))
}

func TestLifeGoalAlwaysStartsIncomplete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateLifeGoal(ctx, model.LifeGoal{
		ID: "g1", Title: "Ship the album", DateCreated: base, Completed: true,
	}))

	goals, err := s.GetLifeGoals(ctx, store.GoalFilter{})
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.False(t, goals[0].Completed)
	// Empty category defaults to personal.
	assert.Equal(t, model.CategoryPersonal, goals[0].Category)
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)

	settings.VoiceNotifications = false
	settings.Volume = 0.3
	require.NoError(t, s.SaveSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestSettingsAndProfileDoNotClobberEachOther(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	birth := time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveLifeProfile(ctx, model.LifeProfile{
		BirthDate:      birth,
		LifeExpectancy: 85,
	}))

	require.NoError(t, s.SaveSettings(ctx, model.Settings{
		VoiceNotifications: false,
		Vibration:          false,
		Volume:             0.1,
	}))

	profile, err := s.GetLifeProfile(ctx)
	require.NoError(t, err)
	assert.True(t, profile.BirthDate.Equal(birth))
	assert.Equal(t, float64(85), profile.LifeExpectancy)

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.VoiceNotifications)
	assert.Equal(t, 0.1, settings.Volume)
}

func TestLifeProfileDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)

	profile, err := s.GetLifeProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, profile.BirthDate.IsZero())
	assert.Equal(t, float64(model.DefaultLifeExpectancy), profile.LifeExpectancy)
}
