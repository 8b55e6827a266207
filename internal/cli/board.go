package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/klokku/eventboard/internal/config"
	"github.com/klokku/eventboard/internal/utils"
	"github.com/klokku/eventboard/pkg/board"
	"github.com/klokku/eventboard/pkg/event"
	"github.com/mattn/go-isatty"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// terminal drives one board from the command line.
type terminal struct {
	board  *board.Board
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

func newTerminal(cfg config.Application, client event.Client, out, errOut io.Writer) (*terminal, error) {
	b, err := board.NewBoard(client, utils.SystemClock{}, cfg.Banner.HideAfter)
	if err != nil {
		return nil, err
	}
	return &terminal{board: b, out: out, errOut: errOut, quiet: !isTerminal(errOut)}, nil
}

func openTerminal(cfg config.Application) (*terminal, error) {
	client := event.NewClient(cfg.EventService.BaseURL, nil)
	return newTerminal(cfg, client, os.Stdout, os.Stderr)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// withSpinner shows progress on stderr while fn waits on the Event Service.
func (t *terminal) withSpinner(suffix string, fn func() error) error {
	if t.quiet {
		return fn()
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.errOut))
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return fn()
}

func (t *terminal) ready(ctx context.Context) error {
	return t.withSpinner("Fetching events from server...", func() error {
		return t.board.Ready(ctx)
	})
}

func (t *terminal) submit(ctx context.Context, title string) error {
	return t.withSpinner("Adding event...", func() error {
		return t.board.Submit(ctx, title)
	})
}

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, "":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", format, outputTable, outputJSON)
	}
}

func (t *terminal) render(format string) error {
	view := t.board.Snapshot()
	switch format {
	case outputJSON:
		enc := json.NewEncoder(t.out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case outputTable, "":
		if view.Banner.Visible {
			fmt.Fprintln(t.errOut, text.FgRed.Sprint(view.Banner.Message))
		}
		t.renderTable(view)
		return nil
	default:
		return validateOutput(format)
	}
}

func (t *terminal) renderTable(view board.View) {
	tw := table.NewWriter()
	tw.SetOutputMirror(t.out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title"})
	for _, entry := range view.Entries {
		switch entry.Kind {
		case board.KindEvent:
			tw.AppendRow(table.Row{entry.ID, entry.Text})
		case board.KindError:
			tw.AppendRow(table.Row{"", text.FgRed.Sprint(entry.Text)})
		default:
			tw.AppendRow(table.Row{"", text.FgHiBlack.Sprint(entry.Text)})
		}
	}
	tw.Render()
}
