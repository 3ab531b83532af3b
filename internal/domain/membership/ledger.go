package membership

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultIDWidth is the minimum column width used for member ids on disk.
const DefaultIDWidth = 16

// Ledger maps member ids to their current status for one term.
type Ledger map[string]Status

// ParseLedger reads a ledger file. Each non-blank line must hold exactly a
// member id and a status separated by whitespace. name is only used in
// error messages.
func ParseLedger(r io.Reader, name string) (Ledger, error) {
	ledger := make(Ledger)
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, ok, err := nextLine(br)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if !ok {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: expected \"member status\", got %q", ErrMalformedLedger, name, lineNo, line)
		}
		status, err := ParseStatus(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedLedger, name, lineNo, err)
		}
		if _, dup := ledger[fields[0]]; dup {
			return nil, fmt.Errorf("%w: %s:%d: duplicate member %q", ErrMalformedLedger, name, lineNo, fields[0])
		}
		ledger[fields[0]] = status
	}
	return ledger, nil
}

// Format writes the ledger in canonical order, one record per line, with
// the member id padded to at least width characters followed by two
// spaces and the status.
func (l Ledger) Format(w io.Writer, width int) error {
	if width <= 0 {
		width = DefaultIDWidth
	}
	bw := bufio.NewWriter(w)
	for _, rec := range l.Sorted() {
		if _, err := fmt.Fprintf(bw, "%-*s  %s\n", width, rec.MemberID, rec.Status); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Sorted returns the records with on-roster members first, then everyone
// else, each group ordered by member id.
func (l Ledger) Sorted() []Record {
	records := make([]Record, 0, len(l))
	for id, st := range l {
		records = append(records, Record{MemberID: id, Status: st})
	}
	sort.Slice(records, func(i, j int) bool {
		ai, aj := records[i].Status.IsOnRoster(), records[j].Status.IsOnRoster()
		if ai != aj {
			return ai
		}
		return records[i].MemberID < records[j].MemberID
	})
	return records
}

// Filter returns the records matching keep, in canonical order.
func (l Ledger) Filter(keep func(Status) bool) []Record {
	var out []Record
	for _, rec := range l.Sorted() {
		if keep(rec.Status) {
			out = append(out, rec)
		}
	}
	return out
}

// Clone returns a shallow copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Quorum is two thirds of the on-roster members, rounded up.
func (l Ledger) Quorum() int {
	n := 0
	for _, st := range l {
		if st.IsOnRoster() {
			n++
		}
	}
	return (2*n + 2) / 3
}
