package membership

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMalformedRecord     = errors.New("malformed meeting record")
	ErrMalformedLedger     = errors.New("malformed ledger")
	ErrLedgerNotFound      = errors.New("ledger not found")
	ErrPriorLedgerMissing  = errors.New("prior term ledger missing")
	ErrInsufficientHistory = errors.New("no meetings recorded for term")
	ErrUnknownTerm         = errors.New("unknown term")
)

// Kind distinguishes the three shapes a Status can take.
type Kind int

const (
	KindCounter Kind = iota
	KindOnRoster
	KindOffRoster
)

const (
	onRosterToken  = "on_roster"
	offRosterToken = "off_roster"
)

// Status is a member's standing in a ledger: on the roster, off the roster,
// or accruing attendances towards eligibility.
type Status struct {
	kind  Kind
	count int
}

var (
	OnRoster  = Status{kind: KindOnRoster}
	OffRoster = Status{kind: KindOffRoster}
)

// Counter returns a transitional status holding n attendances.
func Counter(n int) Status {
	if n < 0 {
		n = 0
	}
	return Status{kind: KindCounter, count: n}
}

func (s Status) Kind() Kind { return s.kind }

// Count is the accrued attendance count. It is zero for roster states.
func (s Status) Count() int { return s.count }

func (s Status) IsOnRoster() bool  { return s.kind == KindOnRoster }
func (s Status) IsOffRoster() bool { return s.kind == KindOffRoster }
func (s Status) IsCounter() bool   { return s.kind == KindCounter }

func (s Status) String() string {
	switch s.kind {
	case KindOnRoster:
		return onRosterToken
	case KindOffRoster:
		return offRosterToken
	default:
		return strconv.Itoa(s.count)
	}
}

// ParseStatus reads a status token. The archived "bod"/"offbod" tokens are
// accepted and mapped to their roster equivalents.
func ParseStatus(token string) (Status, error) {
	switch token {
	case onRosterToken, "bod":
		return OnRoster, nil
	case offRosterToken, "offbod":
		return OffRoster, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return Status{}, fmt.Errorf("invalid status %q", token)
	}
	return Counter(n), nil
}

// Record is one line of a ledger.
type Record struct {
	MemberID string
	Status   Status
}

// Meeting is a single meeting's identifier and the members who attended.
type Meeting struct {
	ID        string
	Attendees map[string]struct{}
}

// NewMeeting builds a Meeting from a list of attendee ids.
func NewMeeting(id string, attendees ...string) Meeting {
	set := make(map[string]struct{}, len(attendees))
	for _, a := range attendees {
		set[a] = struct{}{}
	}
	return Meeting{ID: id, Attendees: set}
}

func (m Meeting) Attended(memberID string) bool {
	_, ok := m.Attendees[memberID]
	return ok
}
