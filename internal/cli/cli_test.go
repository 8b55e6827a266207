package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/klokku/eventboard/internal/config"
	"github.com/klokku/eventboard/pkg/board"
	"github.com/klokku/eventboard/pkg/event"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTerminal(t *testing.T, client event.Client) (*terminal, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	term, err := newTerminal(config.Defaults(), client, &out, &errOut)
	require.NoError(t, err)
	return term, &out, &errOut
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestListCommand(t *testing.T) {
	t.Run("Prints events as a table", func(t *testing.T) {
		client := event.NewClientStub(
			event.Event{ID: "1", Title: "Yoga in the Park"},
			event.Event{ID: "2", Title: "Lake 5K Run"},
		)
		term, out, _ := setupTerminal(t, client)

		err := runList(testCommand(), term, outputTable)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Yoga in the Park")
		assert.Contains(t, out.String(), "Lake 5K Run")
		assert.True(t, term.quiet)
	})

	t.Run("Prints the view as JSON", func(t *testing.T) {
		term, out, _ := setupTerminal(t, event.NewClientStub())

		err := runList(testCommand(), term, outputJSON)

		require.NoError(t, err)
		var view board.View
		require.NoError(t, json.Unmarshal(out.Bytes(), &view))
		assert.Equal(t, []board.Entry{{Text: board.NoEventsMessage, Kind: board.KindPlaceholder}}, view.Entries)
	})

	t.Run("Failed load prints the error entry and fails", func(t *testing.T) {
		client := event.NewClientStub()
		client.SetListError(&event.StatusError{Op: "list events", StatusCode: 500})
		term, out, _ := setupTerminal(t, client)

		err := runList(testCommand(), term, outputTable)

		assert.Error(t, err)
		assert.Contains(t, out.String(), "Failed to load events.")
	})

	t.Run("Unknown format is rejected before loading", func(t *testing.T) {
		client := event.NewClientStub()
		term, _, _ := setupTerminal(t, client)

		err := runList(testCommand(), term, "yaml")

		assert.ErrorContains(t, err, "unsupported output format")
		assert.Equal(t, 0, client.ListCalls())
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("Adds the trimmed title", func(t *testing.T) {
		client := event.NewClientStub()
		term, out, errOut := setupTerminal(t, client)

		err := runAdd(testCommand(), term, "  Standup ", outputTable)

		require.NoError(t, err)
		assert.Equal(t, []string{"Standup"}, client.CreatedTitles())
		assert.Contains(t, out.String(), "Standup")
		assert.NotContains(t, out.String(), board.NoEventsMessage)
		assert.Empty(t, errOut.String())
	})

	t.Run("Short title prints the banner and fails", func(t *testing.T) {
		client := event.NewClientStub()
		term, _, errOut := setupTerminal(t, client)

		err := runAdd(testCommand(), term, "ab", outputTable)

		assert.ErrorIs(t, err, event.ErrTitleTooShort)
		assert.Contains(t, errOut.String(), "Event title must be at least 3 characters")
		assert.Empty(t, client.CreatedTitles())
	})

	t.Run("Service failure prints the banner and fails", func(t *testing.T) {
		client := event.NewClientStub()
		client.SetCreateError(&event.StatusError{Op: "create event", StatusCode: 500})
		term, _, errOut := setupTerminal(t, client)

		err := runAdd(testCommand(), term, "Standup", outputTable)

		assert.Error(t, err)
		assert.Contains(t, errOut.String(), board.CreateFailedMessage)
	})

	t.Run("Unknown format is rejected before anything is created", func(t *testing.T) {
		client := event.NewClientStub()
		term, out, _ := setupTerminal(t, client)

		err := runAdd(testCommand(), term, "Standup", "yaml")

		assert.ErrorContains(t, err, "unsupported output format")
		assert.Empty(t, client.CreatedTitles())
		assert.Equal(t, 0, client.ListCalls())
		assert.Empty(t, out.String())
	})
}
