package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

const journalFileName = "membership.state.json"

// ErrJournalMismatch means the journal cannot say which meetings the
// ledger's counters already include: it is missing, or the ledger was
// changed behind its back.
var ErrJournalMismatch = errors.New("journal does not match ledger")

// Digest identifies ledger file contents.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PendingCommit is an update whose ledger write may or may not have
// happened.
type PendingCommit struct {
	Meetings     []string `json:"meetings"`
	LedgerDigest string   `json:"ledger_digest"`
}

// JournalState records which meetings have already been folded into the
// counters of a term's ledger, and the digest of the ledger it describes.
type JournalState struct {
	Applied      []string       `json:"applied"`
	LedgerDigest string         `json:"ledger_digest"`
	Pending      *PendingCommit `json:"pending,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AppliedSet returns Applied as a lookup set.
func (j *JournalState) AppliedSet() map[string]bool {
	set := make(map[string]bool, len(j.Applied))
	for _, id := range j.Applied {
		set[id] = true
	}
	return set
}

// Reconcile checks the journal against the digest of the ledger on disk.
// An interrupted update is rolled forward when its ledger was written and
// dropped when it was not.
func (j *JournalState) Reconcile(ledgerDigest string) error {
	if p := j.Pending; p != nil {
		switch ledgerDigest {
		case p.LedgerDigest:
			j.Applied = mergeIDs(j.Applied, p.Meetings)
			j.LedgerDigest = p.LedgerDigest
		case j.LedgerDigest:
		default:
			return ErrJournalMismatch
		}
		j.Pending = nil
		return nil
	}
	if j.LedgerDigest != ledgerDigest {
		return ErrJournalMismatch
	}
	return nil
}

// Begin marks meetings as about to be applied by writing a ledger with
// the given digest.
func (j *JournalState) Begin(meetings []string, ledgerDigest string) {
	j.Pending = &PendingCommit{Meetings: meetings, LedgerDigest: ledgerDigest}
}

// Commit completes the pending update.
func (j *JournalState) Commit() {
	if j.Pending == nil {
		return
	}
	j.Applied = mergeIDs(j.Applied, j.Pending.Meetings)
	j.LedgerDigest = j.Pending.LedgerDigest
	j.Pending = nil
}

func mergeIDs(ids, more []string) []string {
	seen := make(map[string]bool, len(ids)+len(more))
	out := make([]string, 0, len(ids)+len(more))
	for _, id := range append(append([]string{}, ids...), more...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Journal stores a JournalState next to each term's ledger.
type Journal struct {
	Ledgers *LedgerStore
}

// Path is term's journal file.
func (j *Journal) Path(term membership.Term) string {
	return filepath.Join(j.Ledgers.TermDir(term), journalFileName)
}

// Load returns term's journal, or an empty one if none was written yet.
func (j *Journal) Load(term membership.Term) (*JournalState, error) {
	data, err := os.ReadFile(j.Path(term))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &JournalState{}, nil
		}
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	var state JournalState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing journal %s: %w", j.Path(term), err)
	}
	return &state, nil
}

// Save replaces term's journal with state.
func (j *Journal) Save(term membership.Term, state *JournalState, at time.Time) error {
	state.UpdatedAt = at.UTC()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}
	path := j.Path(term)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating term directory: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}
