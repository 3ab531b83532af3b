package membership

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultAttendanceHeader marks the start of the attendee list in minutes.
const DefaultAttendanceHeader = "Attendance:"

var meetingIDPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// IsMeetingID reports whether name looks like a minutes file (YYYY-MM-DD).
// Other files in a term directory, such as uploaded PDFs or the ledger,
// are not meetings.
func IsMeetingID(name string) bool {
	return meetingIDPattern.MatchString(name)
}

// ReadAttendance returns the attendees listed under header. Collection
// stops at the first blank line, at a line holding more than one token,
// or at end of input. A header followed directly by a blank line yields
// an empty set.
func ReadAttendance(r io.Reader, header string) (map[string]struct{}, error) {
	if header == "" {
		header = DefaultAttendanceHeader
	}
	br := bufio.NewReader(r)
	found := false
	for {
		line, ok, err := nextLine(br)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if line == header {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no %q line", ErrMalformedRecord, header)
	}

	attendees := make(map[string]struct{})
	for {
		line, ok, err := nextLine(br)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if !ok || len(fields) != 1 {
			break
		}
		attendees[fields[0]] = struct{}{}
	}
	return attendees, nil
}

// nextLine reads one line of any length and strips its terminator. ok is
// false once input is exhausted.
func nextLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}
