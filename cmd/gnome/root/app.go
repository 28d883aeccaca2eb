package root

import (
	"context"

	"go.uber.org/zap"

	"github.com/jordan-corbett-digital/gnomemode/internal/config"
	"github.com/jordan-corbett-digital/gnomemode/internal/engine"
	"github.com/jordan-corbett-digital/gnomemode/internal/gnome"
	"github.com/jordan-corbett-digital/gnomemode/internal/logging"
	"github.com/jordan-corbett-digital/gnomemode/internal/storage"
)

type app struct {
	cfg       config.Config
	log       *zap.Logger
	svc       *engine.Service
	messenger *gnome.Messenger
}

// openApp wires config, logger, storage and the engine, and runs the
// session-start date rollover.
func openApp(ctx context.Context) (*app, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(ctx, storage.NewStore(db), engine.SystemClock(), log)
	if err := svc.StartDay(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	messenger := gnome.NewMessenger(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)

	cleanup := func() {
		_ = log.Sync()
		_ = db.Close()
	}
	return &app{cfg: cfg, log: log, svc: svc, messenger: messenger}, cleanup, nil
}

func (a *app) gnomeRequest(c gnome.Context) gnome.Request {
	p := a.svc.Progression
	prof := a.svc.Profile
	tone := a.cfg.Tone
	if prof.GnomeTone != "" {
		tone = prof.GnomeTone
	}
	return gnome.Request{
		Tone:        gnome.ParseTone(tone),
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
