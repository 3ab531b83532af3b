package usecases

import (
	"sort"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/store"
)

// MeetingSummary is one line of the meetings listing.
type MeetingSummary struct {
	ID        string
	Attendees int
	Applied   bool
	Err       error // set when the minutes could not be parsed
}

// Meetings lists and inspects a term's minutes.
type Meetings struct {
	Meetings *store.MeetingStore
	Journal  *store.Journal
}

// List summarizes every meeting in term, newest first. Unparseable
// minutes are reported in the summary instead of failing the listing.
func (m *Meetings) List(term membership.Term) ([]MeetingSummary, error) {
	ids, err := m.Meetings.List(term)
	if err != nil {
		return nil, err
	}
	journal, err := m.Journal.Load(term)
	if err != nil {
		return nil, err
	}
	applied := journal.AppliedSet()

	summaries := make([]MeetingSummary, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		s := MeetingSummary{ID: ids[i], Applied: applied[ids[i]]}
		meeting, err := m.Meetings.Read(term, ids[i])
		if err != nil {
			s.Err = err
		} else {
			s.Attendees = len(meeting.Attendees)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// Attendance returns the sorted attendee ids of one meeting.
func (m *Meetings) Attendance(term membership.Term, id string) ([]string, error) {
	meeting, err := m.Meetings.Read(term, id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(meeting.Attendees))
	for a := range meeting.Attendees {
		out = append(out, a)
	}
	sort.Strings(out)
	return out, nil
}
