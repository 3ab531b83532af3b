package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/domain/membership/usecases"
)

func TestUpdateResult(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).UpdateResult(&usecases.UpdateResult{
		Term:     membership.Term{Year: 2026, Season: membership.Fall},
		Latest:   "2026-09-03",
		Seeded:   true,
		Promoted: []string{"carol"},
		Demoted:  []string{"bob"},
		Ledger: membership.Ledger{
			"alice": membership.OnRoster,
			"carol": membership.OnRoster,
			"bob":   membership.OffRoster,
		},
		Saved: true,
	})

	out := buf.String()
	assert.Contains(t, out, "Seeded 2026/Fall from 2026/Spring")
	assert.Contains(t, out, "Promoted: carol")
	assert.Contains(t, out, "Removed: bob")
	assert.NotContains(t, out, "Declined")
	assert.Contains(t, out, "2 on roster, quorum 2")
	assert.Contains(t, out, "Ledger saved")
}

func TestMeetingListItem(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)
	f.MeetingListItem(usecases.MeetingSummary{ID: "2026-09-10", Attendees: 3})
	f.MeetingListItem(usecases.MeetingSummary{ID: "2026-09-03", Attendees: 5, Applied: true})
	f.MeetingListItem(usecases.MeetingSummary{ID: "2026-08-27", Err: errors.New("no attendance")})

	assert.Equal(t,
		"  2026-09-10  3 attended\n"+
			"  2026-09-03  5 attended ✅\n"+
			"  2026-08-27 ❌ no attendance\n",
		buf.String())
}
