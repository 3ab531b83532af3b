package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/domain/membership/usecases"
	"github.com/devbydaniel/minutes/internal/prompt"
	"github.com/devbydaniel/minutes/internal/store"
)

type App struct {
	Update    *usecases.Update
	Seed      *usecases.Seed
	Reconcile *usecases.Reconcile
	Roster    *usecases.Roster
	Meetings  *usecases.Meetings

	Ledgers *store.LedgerStore
	Journal *store.Journal
	Logger  *zap.Logger
	Now     func() time.Time

	cfg *config.Config
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if info, err := os.Stat(cfg.MinutesDir); err != nil {
		logger.Warn("minutes directory not accessible", zap.String("path", cfg.MinutesDir), zap.Error(err))
	} else if !info.IsDir() {
		return nil, fmt.Errorf("minutes directory %s is not a directory", cfg.MinutesDir)
	}

	ledgers := &store.LedgerStore{
		Root:   cfg.MinutesDir,
		Group:  cfg.Group,
		Width:  cfg.IDWidth,
		Logger: logger.Named("store"),
	}
	meetings := &store.MeetingStore{
		Ledgers: ledgers,
		Header:  cfg.AttendanceHeader,
	}
	journal := &store.Journal{Ledgers: ledgers}

	return &App{
		Update: &usecases.Update{
			Ledgers:   ledgers,
			Meetings:  meetings,
			Journal:   journal,
			Threshold: cfg.Threshold,
			Now:       time.Now,
			Logger:    logger.Named("update"),
		},
		Seed: &usecases.Seed{Ledgers: ledgers, Journal: journal, Now: time.Now},
		Reconcile: &usecases.Reconcile{
			Ledgers:  ledgers,
			Meetings: meetings,
			Journal:  journal,
			Now:      time.Now,
		},
		Roster:   &usecases.Roster{Ledgers: ledgers},
		Meetings: &usecases.Meetings{Meetings: meetings, Journal: journal},
		Ledgers:  ledgers,
		Journal:  journal,
		Logger:   logger,
		Now:      time.Now,
		cfg:      cfg,
	}, nil
}

// Term resolves the term to operate on. An empty override means the term
// containing the current time, computed fresh on every call.
func (a *App) Term(override string) (membership.Term, error) {
	if override != "" {
		return membership.ParseTerm(override)
	}
	return membership.TermAt(a.Now()), nil
}

// ResolverOptions are the per-invocation knobs for answering decisions.
type ResolverOptions struct {
	NonInteractive bool
	AnswersFile    string
	In             *os.File
	Out            io.Writer
}

// Resolver picks how join decisions get answered: an answers file wins,
// then non-interactive mode, then the configured interactive mode.
func (a *App) Resolver(opts ResolverOptions) (prompt.Resolver, error) {
	answers := opts.AnswersFile
	if answers == "" {
		answers = a.cfg.AnswersFile
	}
	if answers != "" {
		return prompt.LoadScripted(answers)
	}
	if opts.NonInteractive {
		return prompt.Decline{}, nil
	}

	switch a.cfg.Interactive {
	case config.InteractiveNever:
		return prompt.Decline{}, nil
	case config.InteractiveAuto:
		if opts.In == nil || !term.IsTerminal(int(opts.In.Fd())) {
			a.Logger.Info("stdin is not a terminal, declining all decisions")
			return prompt.Decline{}, nil
		}
	}
	return &prompt.Interactive{In: opts.In, Out: opts.Out}, nil
}
