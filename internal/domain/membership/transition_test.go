package membership

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statusComparer = cmp.Comparer(func(a, b Status) bool { return a == b })

func TestComputeRequiresHistory(t *testing.T) {
	_, err := Compute(Input{Ledger: Ledger{"alice": OnRoster}})
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

func TestComputePromotesAndDemotes(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster, "bob": OnRoster, "carol": Counter(3)},
		Meetings: []Meeting{
			NewMeeting("2026-09-03", "alice", "carol"),
		},
	}
	plan, err := Compute(in)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-03", plan.Latest)
	assert.Equal(t, []Decision{{MemberID: "carol", Kind: Eligible, Attendances: 4}}, plan.Decisions)
	assert.Equal(t, []string{"bob"}, plan.Demoted)

	got := plan.Resolve(map[string]bool{"carol": true})
	want := Ledger{"alice": OnRoster, "bob": OffRoster, "carol": OnRoster}
	if diff := cmp.Diff(want, got, statusComparer); diff != "" {
		t.Fatalf("resolved ledger mismatch (-want +got):\n%s", diff)
	}

	declined := plan.Resolve(map[string]bool{"carol": false})
	assert.Equal(t, Counter(4), declined["carol"])
}

func TestComputeEligibilityNeedsLatestMeeting(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster},
		Meetings: []Meeting{
			NewMeeting("2026-09-03", "alice", "dave"),
			NewMeeting("2026-09-10", "alice", "dave"),
			NewMeeting("2026-09-17", "alice", "dave"),
			NewMeeting("2026-09-24", "alice", "dave"),
			NewMeeting("2026-10-01", "alice"),
		},
	}
	plan, err := Compute(in)
	require.NoError(t, err)
	assert.Empty(t, plan.Decisions)
	assert.Equal(t, Counter(4), plan.Next["dave"])
}

func TestComputeOrdersMeetingsByDate(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster, "bob": OnRoster},
		Meetings: []Meeting{
			NewMeeting("2026-10-01", "alice"),
			NewMeeting("2026-09-03", "alice", "bob"),
		},
	}
	plan, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", plan.Latest)
	assert.Equal(t, []string{"bob"}, plan.Demoted)
	assert.Equal(t, OffRoster, plan.Next["bob"])
}

func TestComputeJoinDecisions(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster, "erin": OffRoster, "carol": Counter(1)},
		Meetings: []Meeting{
			NewMeeting("2026-09-03", "alice", "frank"),
			NewMeeting("2026-09-10", "alice", "carol", "erin", "gina"),
		},
	}
	plan, err := Compute(in)
	require.NoError(t, err)

	assert.Equal(t, []Decision{
		{MemberID: "erin", Kind: Join, Attendances: 1},
		{MemberID: "gina", Kind: Join, Attendances: 1},
	}, plan.Decisions)

	// frank only came to an earlier meeting and carol is still accruing.
	assert.Equal(t, Counter(1), plan.Next["frank"])
	assert.Equal(t, Counter(2), plan.Next["carol"])
	assert.Equal(t, OffRoster, plan.Next["erin"])
	assert.Equal(t, Counter(1), plan.Next["gina"])

	got := plan.Resolve(map[string]bool{"erin": true, "gina": false, "frank": true})
	assert.Equal(t, OnRoster, got["erin"])
	assert.Equal(t, Counter(1), got["gina"])
	assert.Equal(t, Counter(1), got["frank"], "answers without a decision are ignored")

	promoted, declined := plan.Promoted(map[string]bool{"erin": true})
	assert.Equal(t, []string{"erin"}, promoted)
	assert.Equal(t, []string{"gina"}, declined)
}

func TestComputeNewcomerReachingThreshold(t *testing.T) {
	in := Input{
		Ledger: Ledger{},
		Meetings: []Meeting{
			NewMeeting("2026-09-03", "hank"),
			NewMeeting("2026-09-10", "hank"),
			NewMeeting("2026-09-17", "hank"),
			NewMeeting("2026-09-24", "hank"),
		},
	}
	plan, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, []Decision{{MemberID: "hank", Kind: Eligible, Attendances: 4}}, plan.Decisions)
}

func TestComputeSkipsAppliedMeetingsWhenCounting(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster, "carol": Counter(3)},
		Meetings: []Meeting{
			NewMeeting("2026-09-03", "alice", "carol"),
			NewMeeting("2026-09-10", "alice", "carol"),
		},
		Applied: map[string]bool{"2026-09-03": true},
	}
	plan, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, Counter(4), plan.Next["carol"])
	assert.Equal(t, []string{"2026-09-10"}, plan.Counted)
	assert.Equal(t, OnRoster, plan.Next["alice"])
}

func TestComputeCustomThreshold(t *testing.T) {
	in := Input{
		Ledger:    Ledger{"carol": Counter(1)},
		Meetings:  []Meeting{NewMeeting("2026-09-03", "carol")},
		Threshold: 2,
	}
	plan, err := Compute(in)
	require.NoError(t, err)
	require.Len(t, plan.Decisions, 1)
	assert.Equal(t, Eligible, plan.Decisions[0].Kind)
}

func TestComputeIsIdempotent(t *testing.T) {
	in := Input{
		Ledger: Ledger{"alice": OnRoster, "bob": OnRoster, "carol": Counter(3), "erin": OffRoster},
		Meetings: []Meeting{
			NewMeeting("2026-09-10", "alice", "carol", "ivan"),
			NewMeeting("2026-09-03", "bob", "carol"),
		},
	}
	answers := map[string]bool{"carol": true, "ivan": false}

	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Resolve(answers), second.Resolve(answers), statusComparer); diff != "" {
		t.Fatalf("second run differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, Ledger{"alice": OnRoster, "bob": OnRoster, "carol": Counter(3), "erin": OffRoster}, in.Ledger, "input ledger must not change")
}
