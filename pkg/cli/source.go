package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/Slach/chartfmt/pkg/client"
	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/Slach/chartfmt/pkg/layout"
	"github.com/Slach/chartfmt/pkg/render"
)

const defaultColumns = 80

// loadDataset reads the dataset from --query when set, otherwise from
// --input.
func (a *app) loadDataset(ctx context.Context) (dataset.Dataset, error) {
	loc := a.cfg.Location()
	switch {
	case a.cli.Query != "":
		if a.cli.ShowQuery {
			a.echoQuery(os.Stderr)
		}
		chCtx, err := a.cfg.Context(a.cli.ConnectTo)
		if err != nil {
			return dataset.Dataset{}, err
		}
		c := client.NewClient(chCtx, a.version, loc)
		defer func() {
			if err := c.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close ClickHouse connection")
			}
		}()
		return c.QueryDataset(ctx, a.cli.Query)
	case a.cli.Input == "-":
		return dataset.Decode(os.Stdin, loc)
	case a.cli.Input != "":
		return dataset.LoadFile(a.cli.Input, loc)
	default:
		return dataset.Dataset{}, errors.New("either --input or --query is required")
	}
}

// echoQuery writes the query to w, highlighted when styling is on.
func (a *app) echoQuery(w io.Writer) {
	sql := strings.TrimSpace(a.cli.Query) + "\n"
	if a.theme().Enabled {
		if err := quick.Highlight(w, sql, "sql", "terminal256", "monokai"); err == nil {
			return
		}
	}
	_, _ = io.WriteString(w, sql)
}

// columns is the viewport width in terminal columns.
func (a *app) columns() int {
	if a.cli.Width > 0 {
		return a.cli.Width
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultColumns
}

// theme styles output only when stdout is a terminal.
func (a *app) theme() render.Theme {
	if a.cli.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return render.Theme{}
	}
	return render.DefaultTheme()
}

// viewport converts terminal columns to pixels at the configured character
// width.
func (a *app) viewport() layout.Viewport {
	return layout.Viewport{
		Width:         int(float64(a.columns()) * a.cfg.Layout.PixelsPerCharacter),
		Preview:       a.cli.Preview,
		MobilePreview: a.cli.MobilePreview,
	}
}
