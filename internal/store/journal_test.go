package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

func TestJournalEmptyWhenMissing(t *testing.T) {
	j := &Journal{Ledgers: newLedgerStore(t)}
	state, err := j.Load(fall)
	require.NoError(t, err)
	assert.Empty(t, state.Applied)
	assert.Empty(t, state.AppliedSet())
	assert.ErrorIs(t, state.Reconcile(Digest([]byte("alice  on_roster\n"))), ErrJournalMismatch)
}

func TestJournalSaveLoad(t *testing.T) {
	j := &Journal{Ledgers: newLedgerStore(t)}
	at := time.Date(2026, 9, 10, 20, 0, 0, 0, time.UTC)

	state := &JournalState{LedgerDigest: "old"}
	state.Begin([]string{"2026-09-10", "2026-09-03"}, "new")
	require.NoError(t, j.Save(fall, state, at))

	loaded, err := j.Load(fall)
	require.NoError(t, err)
	require.NotNil(t, loaded.Pending)
	assert.Equal(t, "new", loaded.Pending.LedgerDigest)
	assert.True(t, loaded.UpdatedAt.Equal(at))

	loaded.Commit()
	assert.Equal(t, []string{"2026-09-03", "2026-09-10"}, loaded.Applied)
	assert.Equal(t, "new", loaded.LedgerDigest)
	assert.Nil(t, loaded.Pending)
	assert.True(t, loaded.AppliedSet()["2026-09-10"])
}

func TestJournalReconcile(t *testing.T) {
	pending := func() *JournalState {
		s := &JournalState{Applied: []string{"2026-09-03"}, LedgerDigest: "old"}
		s.Begin([]string{"2026-09-10"}, "new")
		return s
	}

	t.Run("ledger written before crash", func(t *testing.T) {
		s := pending()
		require.NoError(t, s.Reconcile("new"))
		assert.Equal(t, []string{"2026-09-03", "2026-09-10"}, s.Applied)
		assert.Equal(t, "new", s.LedgerDigest)
		assert.Nil(t, s.Pending)
	})

	t.Run("ledger not written before crash", func(t *testing.T) {
		s := pending()
		require.NoError(t, s.Reconcile("old"))
		assert.Equal(t, []string{"2026-09-03"}, s.Applied)
		assert.Equal(t, "old", s.LedgerDigest)
		assert.Nil(t, s.Pending)
	})

	t.Run("ledger edited by hand", func(t *testing.T) {
		assert.ErrorIs(t, pending().Reconcile("other"), ErrJournalMismatch)
		s := &JournalState{LedgerDigest: "old"}
		assert.ErrorIs(t, s.Reconcile("other"), ErrJournalMismatch)
		assert.NoError(t, s.Reconcile("old"))
	})
}

func TestLedgerDigestMatchesEncode(t *testing.T) {
	s := newLedgerStore(t)
	ledger := membership.Ledger{"alice": membership.OnRoster, "carol": membership.Counter(2)}
	data, err := s.Encode(ledger)
	require.NoError(t, err)
	require.NoError(t, s.Write(fall, data))

	got, digest, err := s.LoadWithDigest(fall)
	require.NoError(t, err)
	assert.Equal(t, ledger, got)
	assert.Equal(t, Digest(data), digest)
}
