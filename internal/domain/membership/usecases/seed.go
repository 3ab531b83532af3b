package usecases

import (
	"time"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/store"
)

// Seed starts a term's ledger from a copy of the prior term's.
type Seed struct {
	Ledgers *store.LedgerStore
	Journal *store.Journal
	Now     func() time.Time
}

// Execute seeds term and returns the term it was copied from.
func (s *Seed) Execute(term membership.Term) (membership.Term, error) {
	lock, err := store.Lock(s.Ledgers.TermDir(term))
	if err != nil {
		return membership.Term{}, err
	}
	defer lock.Unlock()

	prior := term.Prior()
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	_, err = seedTerm(s.Ledgers, s.Journal, term, prior, now())
	return prior, err
}
