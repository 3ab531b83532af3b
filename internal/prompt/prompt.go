// Package prompt answers the yes/no decisions produced by the membership
// engine, either by asking an operator or from a fixed policy.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devbydaniel/minutes/internal/domain/membership"
)

// ErrNoAnswer is returned when input ends before every decision is answered.
var ErrNoAnswer = errors.New("input closed before all decisions were answered")

// Resolver turns pending decisions into answers keyed by member id.
type Resolver interface {
	Resolve(decisions []membership.Decision) (map[string]bool, error)
}

// Interactive asks on Out and reads replies from In, repeating the
// question until it gets y, yes, n or no.
type Interactive struct {
	In  io.Reader
	Out io.Writer
}

func (p *Interactive) Resolve(decisions []membership.Decision) (map[string]bool, error) {
	answers := make(map[string]bool, len(decisions))
	if len(decisions) == 0 {
		return answers, nil
	}
	reader := bufio.NewReader(p.In)
	for _, d := range decisions {
		for {
			fmt.Fprint(p.Out, question(d))
			line, err := reader.ReadString('\n')
			reply := strings.ToLower(strings.TrimSpace(line))
			if yes, ok := parseReply(reply); ok {
				answers[d.MemberID] = yes
				break
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					fmt.Fprintln(p.Out)
					return nil, fmt.Errorf("%w: waiting on %s", ErrNoAnswer, d.MemberID)
				}
				return nil, err
			}
		}
	}
	return answers, nil
}

func question(d membership.Decision) string {
	switch d.Kind {
	case membership.Eligible:
		return fmt.Sprintf("%s is eligible to join (%d meetings attended). Would they like to join? (y/n) ", d.MemberID, d.Attendances)
	default:
		return fmt.Sprintf("%s is not on the roster. Would they like to join? (y/n) ", d.MemberID)
	}
}

func parseReply(reply string) (yes, ok bool) {
	switch reply {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// Decline answers every decision with "no". It is the resolver for
// unattended runs.
type Decline struct{}

func (Decline) Resolve(decisions []membership.Decision) (map[string]bool, error) {
	answers := make(map[string]bool, len(decisions))
	for _, d := range decisions {
		answers[d.MemberID] = false
	}
	return answers, nil
}

// Scripted answers from a fixed map. Members missing from the map are
// declined.
type Scripted struct {
	Answers map[string]bool
}

func (s *Scripted) Resolve(decisions []membership.Decision) (map[string]bool, error) {
	answers := make(map[string]bool, len(decisions))
	for _, d := range decisions {
		answers[d.MemberID] = s.Answers[d.MemberID]
	}
	return answers, nil
}

// LoadScripted reads a YAML mapping of member id to true/false.
//
//	alice: true
//	bob: false
func LoadScripted(path string) (*Scripted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	answers := map[string]bool{}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return &Scripted{Answers: answers}, nil
}
