package usecases

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/prompt"
	"github.com/devbydaniel/minutes/internal/store"
)

// Update recomputes a term's ledger from its minutes.
type Update struct {
	Ledgers   *store.LedgerStore
	Meetings  *store.MeetingStore
	Journal   *store.Journal
	Threshold int
	Now       func() time.Time
	Logger    *zap.Logger
}

// UpdateOptions holds options for one update run.
type UpdateOptions struct {
	Term     membership.Term
	Resolver prompt.Resolver
	DryRun   bool // compute and resolve, but write nothing
}

// UpdateResult describes what an update changed.
type UpdateResult struct {
	Term     membership.Term
	Latest   string
	Seeded   bool
	Promoted []string
	Declined []string
	Demoted  []string
	Ledger   membership.Ledger
	Saved    bool
}

// Execute loads the term's ledger (seeding it from the prior term when the
// term is new), applies the meeting history, asks opts.Resolver about
// every pending promotion and writes the result back.
//
// When the term has no minutes yet the error wraps
// membership.ErrInsufficientHistory and the returned result still reports
// whether the ledger was seeded.
func (u *Update) Execute(opts *UpdateOptions) (*UpdateResult, error) {
	log := u.logger().With(zap.Stringer("term", opts.Term))
	result := &UpdateResult{Term: opts.Term}

	if !opts.DryRun {
		lock, err := store.Lock(u.Ledgers.TermDir(opts.Term))
		if err != nil {
			return nil, err
		}
		defer lock.Unlock()
	}

	ledger, journal, seeded, err := u.loadOrSeed(opts.Term, opts.DryRun)
	if err != nil {
		return nil, err
	}
	result.Seeded = seeded

	meetings, err := u.Meetings.ReadAll(opts.Term)
	if err != nil {
		return nil, err
	}

	plan, err := membership.Compute(membership.Input{
		Ledger:    ledger,
		Meetings:  meetings,
		Applied:   journal.AppliedSet(),
		Threshold: u.Threshold,
	})
	if err != nil {
		if errors.Is(err, membership.ErrInsufficientHistory) {
			return result, fmt.Errorf("%w: %s has no minutes in %s", err, opts.Term, u.Ledgers.TermDir(opts.Term))
		}
		return nil, err
	}
	result.Latest = plan.Latest
	result.Demoted = plan.Demoted
	log.Debug("computed plan",
		zap.String("latest", plan.Latest),
		zap.Int("meetings", len(meetings)),
		zap.Strings("counted", plan.Counted),
		zap.Int("decisions", len(plan.Decisions)),
	)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = prompt.Decline{}
	}
	answers, err := resolver.Resolve(plan.Decisions)
	if err != nil {
		return nil, fmt.Errorf("resolving decisions: %w", err)
	}
	result.Promoted, result.Declined = plan.Promoted(answers)
	result.Ledger = plan.Resolve(answers)

	for _, id := range result.Promoted {
		log.Info("promoted member", zap.String("member", id))
	}
	for _, id := range result.Demoted {
		log.Info("demoted member", zap.String("member", id))
	}

	if opts.DryRun {
		return result, nil
	}
	if err := u.commit(opts.Term, journal, result.Ledger, plan.Counted); err != nil {
		return nil, err
	}
	result.Saved = true
	return result, nil
}

// commit writes the ledger between two journal writes so that a crash at
// any point leaves a journal Reconcile can resolve.
func (u *Update) commit(term membership.Term, journal *store.JournalState, ledger membership.Ledger, counted []string) error {
	data, err := u.Ledgers.Encode(ledger)
	if err != nil {
		return err
	}
	journal.Begin(counted, store.Digest(data))
	if err := u.Journal.Save(term, journal, u.now()); err != nil {
		return fmt.Errorf("recording pending update: %w", err)
	}
	if err := u.Ledgers.Write(term, data); err != nil {
		return err
	}
	journal.Commit()
	if err := u.Journal.Save(term, journal, u.now()); err != nil {
		return fmt.Errorf("recording applied meetings: %w", err)
	}
	return nil
}

func (u *Update) loadOrSeed(term membership.Term, dryRun bool) (membership.Ledger, *store.JournalState, bool, error) {
	ledger, digest, err := u.Ledgers.LoadWithDigest(term)
	if err == nil {
		journal, err := u.Journal.Load(term)
		if err != nil {
			return nil, nil, false, err
		}
		if err := journal.Reconcile(digest); err != nil {
			return nil, nil, false, fmt.Errorf("%w: %s does not describe %s; check the ledger and run `minutes reconcile`",
				err, u.Journal.Path(term), u.Ledgers.Path(term))
		}
		return ledger, journal, false, nil
	}
	if !errors.Is(err, membership.ErrLedgerNotFound) {
		return nil, nil, false, err
	}

	prior := term.Prior()
	u.logger().Info("ledger missing, seeding from prior term", zap.Stringer("term", term), zap.Stringer("prior", prior))
	if dryRun {
		ledger, digest, err := u.Ledgers.LoadWithDigest(prior)
		if errors.Is(err, membership.ErrLedgerNotFound) {
			return nil, nil, false, fmt.Errorf("%w: %s", membership.ErrPriorLedgerMissing, err)
		}
		if err != nil {
			return nil, nil, false, err
		}
		return ledger, &store.JournalState{LedgerDigest: digest}, true, nil
	}
	journal, err := seedTerm(u.Ledgers, u.Journal, term, prior, u.now())
	if err != nil {
		return nil, nil, false, err
	}
	ledger, err = u.Ledgers.Load(term)
	return ledger, journal, true, err
}

// seedTerm copies prior's ledger into term and starts a journal for it
// with no meetings applied.
func seedTerm(ledgers *store.LedgerStore, journal *store.Journal, term, prior membership.Term, at time.Time) (*store.JournalState, error) {
	if err := ledgers.Seed(term, prior); err != nil {
		return nil, err
	}
	_, digest, err := ledgers.LoadWithDigest(term)
	if err != nil {
		return nil, err
	}
	state := &store.JournalState{LedgerDigest: digest}
	if err := journal.Save(term, state, at); err != nil {
		return nil, err
	}
	return state, nil
}

func (u *Update) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u *Update) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}
