package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

const ledgerFileName = "membership"

// LedgerStore owns the membership file of every term under
// <Root>/<Group>/<year>/<season>/.
type LedgerStore struct {
	Root   string
	Group  string
	Width  int
	Logger *zap.Logger
}

// TermDir is the directory holding a term's minutes and ledger.
func (s *LedgerStore) TermDir(term membership.Term) string {
	return filepath.Join(s.Root, s.Group, strconv.Itoa(term.Year), string(term.Season))
}

// Path is the ledger file for term.
func (s *LedgerStore) Path(term membership.Term) string {
	return filepath.Join(s.TermDir(term), ledgerFileName)
}

// Exists reports whether term already has a ledger.
func (s *LedgerStore) Exists(term membership.Term) bool {
	_, err := os.Stat(s.Path(term))
	return err == nil
}

// Load reads term's ledger. It fails with membership.ErrLedgerNotFound
// when the term has not been seeded yet.
func (s *LedgerStore) Load(term membership.Term) (membership.Ledger, error) {
	ledger, _, err := s.LoadWithDigest(term)
	return ledger, err
}

// LoadWithDigest is Load plus the Digest of the file's bytes.
func (s *LedgerStore) LoadWithDigest(term membership.Term) (membership.Ledger, string, error) {
	path := s.Path(term)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: term %s (%s)", membership.ErrLedgerNotFound, term, path)
		}
		return nil, "", fmt.Errorf("reading ledger: %w", err)
	}
	ledger, err := membership.ParseLedger(bytes.NewReader(data), path)
	if err != nil {
		return nil, "", err
	}
	s.logger().Debug("loaded ledger", zap.Stringer("term", term), zap.String("path", path), zap.Int("members", len(ledger)))
	return ledger, Digest(data), nil
}

// Seed copies prior's ledger byte for byte into term. An existing ledger
// for term is never overwritten.
func (s *LedgerStore) Seed(term, prior membership.Term) error {
	dst := s.Path(term)
	if s.Exists(term) {
		return fmt.Errorf("ledger for %s already exists at %s", term, dst)
	}
	src := s.Path(prior)
	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s has no ledger at %s; create %s by hand", membership.ErrPriorLedgerMissing, prior, src, dst)
		}
		return fmt.Errorf("reading prior ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating term directory: %w", err)
	}
	if err := writeFileAtomic(dst, data, 0o644); err != nil {
		return fmt.Errorf("seeding ledger: %w", err)
	}
	s.logger().Info("seeded ledger", zap.Stringer("term", term), zap.Stringer("prior", prior), zap.String("path", dst))
	return nil
}

// Encode renders ledger exactly as Save writes it.
func (s *LedgerStore) Encode(ledger membership.Ledger) ([]byte, error) {
	var buf bytes.Buffer
	if err := ledger.Format(&buf, s.Width); err != nil {
		return nil, fmt.Errorf("formatting ledger: %w", err)
	}
	return buf.Bytes(), nil
}

// Save replaces term's ledger with ledger.
func (s *LedgerStore) Save(term membership.Term, ledger membership.Ledger) error {
	data, err := s.Encode(ledger)
	if err != nil {
		return err
	}
	return s.Write(term, data)
}

// Write replaces term's ledger with already encoded bytes.
func (s *LedgerStore) Write(term membership.Term, data []byte) error {
	path := s.Path(term)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating term directory: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	s.logger().Info("saved ledger", zap.Stringer("term", term), zap.String("path", path))
	return nil
}

func (s *LedgerStore) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// writeFileAtomic writes data to a temp file beside path and renames it
// into place, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
