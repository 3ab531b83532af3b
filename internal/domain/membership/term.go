package membership

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

type Season string

const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
)

// Term buckets meetings and one ledger by year and season.
type Term struct {
	Year   int
	Season Season
}

// TermAt returns the term containing t. Fall starts after August 20,
// Spring runs until May 20, and everything in between is Summer.
func TermAt(t time.Time) Term {
	month, day := t.Month(), t.Day()
	var season Season
	switch {
	case month > time.August || (month == time.August && day > 20):
		season = Fall
	case month < time.May || (month == time.May && day < 20):
		season = Spring
	default:
		season = Summer
	}
	return Term{Year: t.Year(), Season: season}
}

// ParseTerm accepts the "<year>/<season>" form produced by Term.String.
func ParseTerm(s string) (Term, error) {
	year, season, ok := strings.Cut(s, "/")
	if !ok {
		return Term{}, fmt.Errorf("%w: %q (want <year>/<Fall|Spring|Summer>)", ErrUnknownTerm, s)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return Term{}, fmt.Errorf("%w: bad year in %q", ErrUnknownTerm, s)
	}
	switch Season(season) {
	case Spring, Summer, Fall:
	default:
		return Term{}, fmt.Errorf("%w: bad season in %q", ErrUnknownTerm, s)
	}
	return Term{Year: y, Season: Season(season)}, nil
}

// Prior is the term whose ledger seeds this one. Summer and Fall both
// inherit from the Spring of the same year; Spring inherits from the
// previous Fall.
func (t Term) Prior() Term {
	switch t.Season {
	case Spring:
		return Term{Year: t.Year - 1, Season: Fall}
	default:
		return Term{Year: t.Year, Season: Spring}
	}
}

// Path is the term's directory relative to a minutes group.
func (t Term) Path() string {
	return path.Join(strconv.Itoa(t.Year), string(t.Season))
}

func (t Term) String() string { return t.Path() }
