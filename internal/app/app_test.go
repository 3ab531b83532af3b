package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/domain/membership"
	"github.com/devbydaniel/minutes/internal/prompt"
)

func newApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	cfg.MinutesDir = t.TempDir()
	if mutate != nil {
		mutate(cfg)
	}
	a, err := New(cfg, nil)
	require.NoError(t, err)
	return a
}

func TestTermIsComputedPerCall(t *testing.T) {
	a := newApp(t, nil)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	a.Now = func() time.Time { return now }

	term, err := a.Term("")
	require.NoError(t, err)
	assert.Equal(t, "2026/Spring", term.String())

	now = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	term, err = a.Term("")
	require.NoError(t, err)
	assert.Equal(t, "2026/Fall", term.String())

	term, err = a.Term("2019/Summer")
	require.NoError(t, err)
	assert.Equal(t, membership.Term{Year: 2019, Season: membership.Summer}, term)

	_, err = a.Term("nope")
	assert.ErrorIs(t, err, membership.ErrUnknownTerm)
}

func TestResolverSelection(t *testing.T) {
	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("carol: true\n"), 0o644))

	a := newApp(t, nil)
	r, err := a.Resolver(ResolverOptions{AnswersFile: answers})
	require.NoError(t, err)
	assert.IsType(t, &prompt.Scripted{}, r)

	r, err = a.Resolver(ResolverOptions{NonInteractive: true})
	require.NoError(t, err)
	assert.IsType(t, prompt.Decline{}, r)

	// auto mode without a terminal declines.
	r, err = a.Resolver(ResolverOptions{})
	require.NoError(t, err)
	assert.IsType(t, prompt.Decline{}, r)

	always := newApp(t, func(c *config.Config) { c.Interactive = config.InteractiveAlways })
	r, err = always.Resolver(ResolverOptions{In: os.Stdin, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	assert.IsType(t, &prompt.Interactive{}, r)

	configured := newApp(t, func(c *config.Config) { c.AnswersFile = answers })
	r, err = configured.Resolver(ResolverOptions{})
	require.NoError(t, err)
	assert.IsType(t, &prompt.Scripted{}, r)
}

func TestNewRejectsFileAsMinutesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	cfg := config.Default()
	cfg.MinutesDir = path

	_, err := New(cfg, nil)
	assert.Error(t, err)
}
