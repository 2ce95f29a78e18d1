package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cbodonnell/corebreaker/pkg/game"
	"github.com/cbodonnell/corebreaker/pkg/messages"
	"github.com/cbodonnell/corebreaker/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	repository := repositories.NewMemoryRepository()
	store := repositories.NewSaveStore(context.Background(), repositories.NewSaveStoreOptions{
		Repository: repository,
		Slot:       "repl",
	})
	engine := game.NewEngine(game.NewEngineOptions{
		Store:  store,
		Random: game.NewRandom(3),
	})

	out := &bytes.Buffer{}
	play(engine, strings.NewReader("garage\n1\nhelp\n\nback\n"), out)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome!"))
	assert.Contains(t, text, "upgraded! Lv.2")
	assert.Contains(t, text, messages.HelpText)
	assert.NotContains(t, text, "> garage")

	stored, err := repository.LoadSave(context.Background(), "repl")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Equipment.GloveLv)
}
