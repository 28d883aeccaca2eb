// Package gnome generates the gnome's short personality lines, backed by
// the Gemini API with local fallback lines. Generation is decorative: it
// never touches game state and any failure degrades to a canned line.
package gnome

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type Tone string

const (
	ToneSoft   Tone = "soft"
	ToneSpicy  Tone = "spicy"
	ToneCursed Tone = "cursed"
)

// ParseTone maps user input to a Tone, defaulting to spicy.
func ParseTone(s string) Tone {
	switch Tone(strings.TrimSpace(strings.ToLower(s))) {
	case ToneSoft:
		return ToneSoft
	case ToneCursed:
		return ToneCursed
	default:
		return ToneSpicy
	}
}

// Context names the situation a line is generated for.
type Context string

const (
	ContextDashboard      Context = "dashboard"
	ContextCheckInSuccess Context = "checkin_success"
	ContextCheckInFail    Context = "checkin_fail"
	ContextQuestComplete  Context = "quest_complete"
	ContextLevelUp        Context = "level_up"
)

// UserData carries the progress snapshot woven into prompts.
type UserData struct {
	Streak    int
	Level     int
	XP        int
	Coins     int
	Day       int
	Intention []string
	Nemesis   string
}

// Request describes one line to generate.
type Request struct {
	Tone        Tone
	SpeakerName string
	Context     Context
	User        UserData
}

const DefaultModel = "gemini-2.0-flash"

// Messenger talks to Gemini. A nil client (no API key configured) is valid
// and serves fallbacks only.
type Messenger struct {
	client *genai.Client
	model  string
	log    *zap.Logger
	rand   *rand.Rand
}

// NewMessenger builds a Messenger. An empty apiKey disables the API and
// the messenger serves fallback lines only.
func NewMessenger(ctx context.Context, apiKey, model string, log *zap.Logger) *Messenger {
	if log == nil {
		log = zap.NewNop()
	}
	if model == "" {
		model = DefaultModel
	}

	m := &Messenger{model: model, log: log}
	if apiKey == "" {
		log.Debug("no gemini api key configured, gnome lines are local only")
		return m
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Warn("gemini client init failed, gnome lines are local only", zap.Error(err))
		return m
	}
	m.client = client
	return m
}

// Generate returns one short line for the request. Dashboard lines never
// hit the API; every other context tries the API once and falls back on
// any failure.
func (m *Messenger) Generate(ctx context.Context, req Request) string {
	if req.Context == ContextDashboard || m.client == nil {
		return m.Fallback(req.Context, req.Tone)
	}

	prompt := buildPrompt(req)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := m.client.Models.GenerateContent(ctx, m.model, contents, nil)
	if err != nil {
		m.log.Warn("gnome line generation failed", zap.String("context", string(req.Context)), zap.Error(err))
		return m.Fallback(req.Context, req.Tone)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return m.Fallback(req.Context, req.Tone)
	}
	return text
}

func buildPrompt(req Request) string {
	name := req.SpeakerName
	if name == "" {
		name = "Slappy"
	}
	return fmt.Sprintf("%s\n\n%s\n\nYour name is %s. Respond as this gnome character. Be concise, personality-driven, and match the tone.",
		tonePrompt(req.Tone), contextPrompt(req.Context, req.User), name)
}

func tonePrompt(tone Tone) string {
	switch tone {
	case ToneSoft:
		return "You are a supportive, gentle gnome. Be encouraging but still have a bit of playful sarcasm. Keep it light and friendly."
	case ToneCursed:
		return "You are an unhinged, chaotic gnome. Use dark humor, memes, and absurdity. Be completely unhinged but still supportive in your own weird way."
	case ToneSpicy:
		return "You are a sarcastic, witty gnome with attitude. Roast the user playfully when they fail, celebrate when they succeed. Be sassy but not mean."
	default:
		return "You are a playful gnome."
	}
}

func contextPrompt(c Context, u UserData) string {
	intention := "breaking habits"
	if len(u.Intention) > 0 {
		intention = strings.Join(u.Intention, ", ")
	}
	nemesis := u.Nemesis
	if nemesis == "" {
		nemesis = "the enemy"
	}

	switch c {
	case ContextCheckInSuccess:
		return fmt.Sprintf("The user just successfully completed their daily check-in! Streak: %d, Day: %d. Generate a celebratory, personality-driven reaction. 1-2 sentences.", u.Streak, u.Day)
	case ContextCheckInFail:
		return fmt.Sprintf("The user just failed their daily check-in. Streak broken: %d, Day: %d. Their nemesis %s gets money when they fail. Generate a reaction that matches the gnome's tone. 1-2 sentences.", u.Streak, u.Day, nemesis)
	case ContextQuestComplete:
		return "The user just completed a quest! Generate a brief congratulatory message. 1 sentence."
	case ContextLevelUp:
		return fmt.Sprintf("The user just leveled up! New level: %d. Generate an excited, celebratory message. 1 sentence.", u.Level)
	default:
		return fmt.Sprintf("Generate a short, personality-driven message for the gnome to display on the dashboard. Current stats: Day %d, Streak: %d, Level: %d, XP: %d, Coins: %d. The user is working on: %s. Their nemesis is: %s. Keep it to 1-2 sentences max.", u.Day, u.Streak, u.Level, u.XP, u.Coins, intention, nemesis)
	}
}
