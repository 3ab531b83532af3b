package usecases

import (
	"time"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/store"
)

// Reconcile rewrites a term's journal to describe the ledger as it is on
// disk. It is the way back after the ledger was created or edited by hand.
type Reconcile struct {
	Ledgers  *store.LedgerStore
	Meetings *store.MeetingStore
	Journal  *store.Journal
	Now      func() time.Time
}

// Execute records every meeting up to and including through as already
// counted in the ledger. An empty through records none.
func (r *Reconcile) Execute(term membership.Term, through string) (*store.JournalState, error) {
	lock, err := store.Lock(r.Ledgers.TermDir(term))
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	_, digest, err := r.Ledgers.LoadWithDigest(term)
	if err != nil {
		return nil, err
	}
	ids, err := r.Meetings.List(term)
	if err != nil {
		return nil, err
	}

	state := &store.JournalState{Applied: []string{}, LedgerDigest: digest}
	if through != "" {
		for _, id := range ids {
			if id <= through {
				state.Applied = append(state.Applied, id)
			}
		}
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	if err := r.Journal.Save(term, state, now()); err != nil {
		return nil, err
	}
	return state, nil
}
