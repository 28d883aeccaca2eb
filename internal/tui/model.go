package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
	"github.com/jordan-corbett-digital/gnomemode/internal/ui"
)

const (
	countdownInterval = time.Second
	messageInterval   = 2 * time.Minute
)

type dashboardModel struct {
	ctx       context.Context
	svc       *engine.Service
	messenger *gnome.Messenger

	width  int
	height int

	now      time.Time
	message  string
	lastLog  string
	quitting bool
}

// tickMsg drives the 1-second countdown refresh.
type tickMsg time.Time

// messageTickMsg triggers a gnome message refresh.
type messageTickMsg struct{}

type gnomeLineMsg string

type checkInMsg struct {
	res *engine.CheckInResult
	err error
}

type failMsg struct {
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service, messenger *gnome.Messenger) dashboardModel {
	return dashboardModel{
		ctx:       ctx,
		svc:       svc,
		messenger: messenger,
		now:       svc.Clock().Now(),
		lastLog:   "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.gnomeLineCmd(), messageTickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func messageTickCmd() tea.Cmd {
	return tea.Tick(messageInterval, func(time.Time) tea.Msg { return messageTickMsg{} })
}

func (m dashboardModel) gnomeLineCmd() tea.Cmd {
	req := m.gnomeRequest(gnome.ContextDashboard)
	return func() tea.Msg {
		return gnomeLineMsg(m.messenger.Generate(m.ctx, req))
	}
}

func (m dashboardModel) gnomeRequest(c gnome.Context) gnome.Request {
	p := m.svc.Progression
	prof := m.svc.Profile
	return gnome.Request{
		Tone:        gnome.ParseTone(prof.GnomeTone),
		SpeakerName: prof.GnomeName,
		Context:     c,
		User: gnome.UserData{
			Streak:    p.Streak,
			Level:     p.Level,
			XP:        p.XP,
			Coins:     p.Coins,
			Day:       p.Day,
			Intention: prof.Intention,
			Nemesis:   prof.Nemesis,
		},
	}
}

func (m dashboardModel) checkInCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CheckInSuccess(m.ctx, nil)
		return checkInMsg{res: res, err: err}
	}
}

func (m dashboardModel) failCmd() tea.Cmd {
	penalty := m.svc.Profile.Wager
	return func() tea.Msg {
		_, err := m.svc.CheckInFail(m.ctx, penalty)
		return failMsg{err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Ticks stop once the model is quitting so no orphaned callback
		// outlives the view.
		if m.quitting {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, tickCmd()

	case messageTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.gnomeLineCmd(), messageTickCmd())

	case gnomeLineMsg:
		m.message = string(msg)
		return m, nil

	case checkInMsg:
		if msg.err != nil {
			m.lastLog = "Check-in failed to save: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Checked in: +%d XP, +%d coins (streak %d)", msg.res.XPAwarded, msg.res.CoinsAwarded, msg.res.Streak)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, m.gnomeLineCmd()

	case failMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Stake transferred. The garden wilts."
		return m, m.gnomeLineCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "c":
			if m.svc.Progression.CheckedInToday {
				m.lastLog = "Already checked in today."
				return m, nil
			}
			m.lastLog = "Checking in…"
			return m, m.checkInCmd()
		case "f":
			if m.svc.Progression.CheckedInToday {
				m.lastLog = "Already checked in today."
				return m, nil
			}
			m.lastLog = "Confessing…"
			return m, m.failCmd()
		case "g":
			return m, m.gnomeLineCmd()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	p := m.svc.Progression
	info := engine.CalculateLevel(p.XP)

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconGnome, "gnomemode") + "\n\n")

	healthy := p.GardenState == engine.GardenHealthy
	garden := ui.Good.Render("healthy")
	if !healthy {
		garden = ui.Bad.Render("failing")
	}

	b.WriteString(ui.LabelValue("Garden", ui.GardenIcon(healthy)+" "+garden) + "\n")
	b.WriteString(ui.LabelValue("Level", fmt.Sprintf("%d  %s", p.Level, ui.ProgressBar(engine.ProgressPercent(info.XPIntoLevel, info.XPIntoLevel+info.XPToNext), 20))) + "\n")
	b.WriteString(ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, p.Coins)) + "\n")
	b.WriteString(ui.LabelValue("Streak", fmt.Sprintf("%s %d (day %d)", ui.IconFire, p.Streak, p.Day)) + "\n")
	if p.StakeLost > 0 {
		b.WriteString(ui.LabelValue("Stake lost", ui.Bad.Render(fmt.Sprintf("%.2f", p.StakeLost))) + "\n")
	}

	if next := m.svc.CheckIn.NextScheduledTime(m.now); next != nil {
		countdown := engine.FormatCountdown(*next, m.now)
		b.WriteString(ui.LabelValue("Next check-in", fmt.Sprintf("%s %s (%s)", ui.IconClock, next.Format("15:04"), countdown)) + "\n")
	} else {
		b.WriteString(ui.LabelValue("Next check-in", ui.Muted.Render("no schedule yet, run `gnome setup schedule`")) + "\n")
	}

	goals := m.svc.DailyGoals
	if len(goals.Items) > 0 {
		done := 0
		for _, g := range goals.Items {
			if g.Completed {
				done++
			}
		}
		b.WriteString(ui.LabelValue("Daily goals", fmt.Sprintf("%d/%d", done, len(goals.Items))) + "\n")
	}

	if m.message != "" {
		name := m.svc.Profile.GnomeName
		b.WriteString("\n" + ui.Panel.Render(ui.PanelTitle.Render(name+":")+" "+m.message) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("c check in · f confess · g poke gnome · q quit") + "\n")
	return b.String()
}
