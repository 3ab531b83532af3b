package membership

import (
	"fmt"
	"sort"
)

// DefaultThreshold is the number of attendances a tracked member needs
// before they may be offered a seat.
const DefaultThreshold = 4

// DecisionKind says why a member needs a yes/no answer.
type DecisionKind int

const (
	// Eligible members reached the threshold and attended the latest meeting.
	Eligible DecisionKind = iota
	// Join members attended the latest meeting but are not tracked by a
	// counter: either newcomers or lapsed members.
	Join
)

func (k DecisionKind) String() string {
	switch k {
	case Eligible:
		return "eligible"
	case Join:
		return "join"
	default:
		return fmt.Sprintf("DecisionKind(%d)", int(k))
	}
}

// Decision is a pending promotion that only an operator can approve.
type Decision struct {
	MemberID    string
	Kind        DecisionKind
	Attendances int
}

// Input is everything Compute needs.
type Input struct {
	Ledger   Ledger
	Meetings []Meeting
	// Applied holds ids of meetings whose attendance is already included
	// in the ledger's counters. Those meetings still count towards
	// last-attended but are not added to counters again.
	Applied   map[string]bool
	Threshold int
}

// Plan is the outcome of Compute before any decision is answered. Next
// is the ledger as it would be if every decision were answered "no".
type Plan struct {
	Latest    string
	Next      Ledger
	Decisions []Decision
	Demoted   []string
	// Counted lists meetings whose attendance was added to counters.
	Counted []string
}

// Compute derives the next ledger from the current one and the term's
// meeting history. It never mutates in.Ledger.
func Compute(in Input) (*Plan, error) {
	if len(in.Meetings) == 0 {
		return nil, ErrInsufficientHistory
	}
	threshold := in.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	meetings := make([]Meeting, len(in.Meetings))
	copy(meetings, in.Meetings)
	sort.SliceStable(meetings, func(i, j int) bool { return meetings[i].ID < meetings[j].ID })
	latest := meetings[len(meetings)-1]

	accrued := make(map[string]int)
	lastAttended := make(map[string]string)
	var counted []string
	for _, m := range meetings {
		fresh := !in.Applied[m.ID]
		if fresh {
			counted = append(counted, m.ID)
		}
		for id := range m.Attendees {
			lastAttended[id] = m.ID
			if fresh {
				accrued[id]++
			}
		}
	}

	plan := &Plan{
		Latest:  latest.ID,
		Next:    make(Ledger, len(in.Ledger)+len(accrued)),
		Counted: counted,
	}
	attendedLatest := func(id string) bool { return lastAttended[id] == latest.ID }

	for id, st := range in.Ledger {
		switch {
		case st.IsOnRoster():
			if attendedLatest(id) {
				plan.Next[id] = OnRoster
			} else {
				plan.Next[id] = OffRoster
				plan.Demoted = append(plan.Demoted, id)
			}
		case st.IsOffRoster():
			plan.Next[id] = OffRoster
			if attendedLatest(id) {
				plan.Decisions = append(plan.Decisions, Decision{MemberID: id, Kind: Join, Attendances: accrued[id]})
			}
		default:
			total := st.Count() + accrued[id]
			plan.Next[id] = Counter(total)
			if total >= threshold && attendedLatest(id) {
				plan.Decisions = append(plan.Decisions, Decision{MemberID: id, Kind: Eligible, Attendances: total})
			}
		}
	}

	for id, n := range accrued {
		if _, known := in.Ledger[id]; known {
			continue
		}
		plan.Next[id] = Counter(n)
		if !attendedLatest(id) {
			continue
		}
		kind := Join
		if n >= threshold {
			kind = Eligible
		}
		plan.Decisions = append(plan.Decisions, Decision{MemberID: id, Kind: kind, Attendances: n})
	}

	sort.Slice(plan.Decisions, func(i, j int) bool { return plan.Decisions[i].MemberID < plan.Decisions[j].MemberID })
	sort.Strings(plan.Demoted)
	return plan, nil
}

// Resolve applies answers to the plan's decisions and returns the final
// ledger. Members answered true are promoted; everyone else keeps the
// status already in Next. Answers for members without a pending decision
// are ignored.
func (p *Plan) Resolve(answers map[string]bool) Ledger {
	out := p.Next.Clone()
	for _, d := range p.Decisions {
		if answers[d.MemberID] {
			out[d.MemberID] = OnRoster
		}
	}
	return out
}

// Promoted splits the plan's decisions by answer.
func (p *Plan) Promoted(answers map[string]bool) (promoted, declined []string) {
	for _, d := range p.Decisions {
		if answers[d.MemberID] {
			promoted = append(promoted, d.MemberID)
		} else {
			declined = append(declined, d.MemberID)
		}
	}
	return promoted, declined
}
