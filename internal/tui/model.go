package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carlamendes/bloom/internal/app"
	"github.com/carlamendes/bloom/internal/models"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWorkouts
	StateChallenge
	StateAchievements
)

const tabCount = 4

type Model struct {
	app   *app.App
	state SessionState
	keys  KeyMap
	help  help.Model
	xpBar progress.Model

	user         models.User
	hasUser      bool
	stats        models.DailyStats
	workouts     []models.Workout
	challenge    []models.ChallengeDay
	achievements []models.Achievement

	workoutCursor   int
	challengeCursor int

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(a *app.App) Model {
	now := time.Now()

	m := Model{
		app:          a,
		state:        StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		xpBar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		stats:        a.Stats.Stats(now),
		workouts:     a.Stats.Workouts(now),
		challenge:    a.Challenge.List(),
		achievements: a.Achievements.List(),
	}

	if user, err := a.Ledger.Get(); err == nil {
		m.user = user
		m.hasUser = true
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads every pane's data after a state-changing action.
func (m *Model) refresh() {
	now := time.Now()
	m.stats = m.app.Stats.Stats(now)
	m.workouts = m.app.Stats.Workouts(now)
	m.challenge = m.app.Challenge.List()
	m.achievements = m.app.Achievements.List()
	if user, err := m.app.Ledger.Get(); err == nil {
		m.user = user
		m.hasUser = true
	}
}

// levelProgress returns the fraction of the way from the current level's XP
// threshold to the next one.
func (m Model) levelProgress() float64 {
	floor := 100 * (m.user.Level - 1) * (m.user.Level - 1)
	next := 100 * m.user.Level * m.user.Level
	if m.user.Level == 1 {
		floor = 0
		next = 100
	}
	if next <= floor {
		return 0
	}

	frac := float64(m.user.XP-floor) / float64(next-floor)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac
}
