package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/domain/membership/usecases"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) Term(term membership.Term, ledgerPath string, exists bool) {
	fmt.Fprintf(f.w, "📅 %s\n", term)
	if exists {
		fmt.Fprintf(f.w, "   ledger: %s\n", ledgerPath)
	} else {
		fmt.Fprintf(f.w, "   ledger: %s (not created yet)\n", ledgerPath)
	}
}

func (f *Formatter) UpdateResult(r *usecases.UpdateResult) {
	if r.Seeded {
		fmt.Fprintf(f.w, "🌱 Seeded %s from %s\n", r.Term, r.Term.Prior())
	}
	fmt.Fprintf(f.w, "🗓️  Latest meeting: %s\n", r.Latest)
	f.memberLine("⬆️  Promoted", r.Promoted)
	f.memberLine("⏸️  Declined", r.Declined)
	f.memberLine("⬇️  Removed", r.Demoted)

	on := 0
	for _, st := range r.Ledger {
		if st.IsOnRoster() {
			on++
		}
	}
	fmt.Fprintf(f.w, "👥 %d on roster, quorum %d\n", on, r.Ledger.Quorum())
	if r.Saved {
		fmt.Fprintf(f.w, "✅ Ledger saved for %s\n", r.Term)
	} else {
		fmt.Fprintf(f.w, "ℹ️  Dry run, nothing written\n")
	}
}

func (f *Formatter) memberLine(label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(f.w, "%s: %s\n", label, strings.Join(ids, ", "))
}

func (f *Formatter) Ledger(records []membership.Record, width int) {
	for _, rec := range records {
		fmt.Fprintf(f.w, "%-*s  %s\n", width, rec.MemberID, rec.Status)
	}
}

func (f *Formatter) MeetingListHeader(term membership.Term) {
	fmt.Fprintf(f.w, "📁 Meetings in %s:\n\n", term)
}

func (f *Formatter) MeetingListItem(m usecases.MeetingSummary) {
	switch {
	case m.Err != nil:
		fmt.Fprintf(f.w, "  %s ❌ %v\n", m.ID, m.Err)
	case m.Applied:
		fmt.Fprintf(f.w, "  %s  %d attended ✅\n", m.ID, m.Attendees)
	default:
		fmt.Fprintf(f.w, "  %s  %d attended\n", m.ID, m.Attendees)
	}
}

func (f *Formatter) Attendees(ids []string) {
	for _, id := range ids {
		fmt.Fprintln(f.w, id)
	}
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
