package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

// MeetingStore reads minutes files from the same term directories the
// LedgerStore manages.
type MeetingStore struct {
	Ledgers *LedgerStore
	Header  string
}

// List returns the ids of every minutes file in term, oldest first. A term
// directory that does not exist yet has no meetings.
func (m *MeetingStore) List(term membership.Term) ([]string, error) {
	entries, err := os.ReadDir(m.Ledgers.TermDir(term))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.Type().IsRegular() && membership.IsMeetingID(e.Name()) {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Path is the minutes file for meeting id in term.
func (m *MeetingStore) Path(term membership.Term, id string) string {
	return filepath.Join(m.Ledgers.TermDir(term), id)
}

// Read parses the attendance section of one meeting.
func (m *MeetingStore) Read(term membership.Term, id string) (membership.Meeting, error) {
	path := m.Path(term, id)
	f, err := os.Open(path)
	if err != nil {
		return membership.Meeting{}, fmt.Errorf("opening minutes: %w", err)
	}
	defer f.Close()

	attendees, err := membership.ReadAttendance(f, m.Header)
	if err != nil {
		return membership.Meeting{}, fmt.Errorf("%s: %w", path, err)
	}
	return membership.Meeting{ID: id, Attendees: attendees}, nil
}

// ReadAll reads every meeting in term.
func (m *MeetingStore) ReadAll(term membership.Term) ([]membership.Meeting, error) {
	ids, err := m.List(term)
	if err != nil {
		return nil, err
	}
	meetings := make([]membership.Meeting, 0, len(ids))
	for _, id := range ids {
		meeting, err := m.Read(term, id)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}
	return meetings, nil
}
