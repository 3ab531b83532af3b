package usecases

import (
	"fmt"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/store"
)

// Roster answers read-only questions about a term's ledger.
type Roster struct {
	Ledgers *store.LedgerStore
}

// StateFilters are the accepted values for List's state argument.
var StateFilters = []string{"all", "on_roster", "off_roster", "counter"}

// List returns the ledger records in state, in canonical order.
func (r *Roster) List(term membership.Term, state string) ([]membership.Record, error) {
	var keep func(membership.Status) bool
	switch state {
	case "", "all":
		keep = func(membership.Status) bool { return true }
	case "on_roster":
		keep = membership.Status.IsOnRoster
	case "off_roster":
		keep = membership.Status.IsOffRoster
	case "counter":
		keep = membership.Status.IsCounter
	default:
		return nil, fmt.Errorf("unknown state %q (want one of %v)", state, StateFilters)
	}

	ledger, err := r.Ledgers.Load(term)
	if err != nil {
		return nil, err
	}
	return ledger.Filter(keep), nil
}

// Quorum is the number of on-roster members needed for quorum in term.
func (r *Roster) Quorum(term membership.Term) (int, error) {
	ledger, err := r.Ledgers.Load(term)
	if err != nil {
		return 0, err
	}
	return ledger.Quorum(), nil
}
