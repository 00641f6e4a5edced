package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Netflix/go-env"
	"github.com/olekukonko/tablewriter"

	"github.com/heartmarshall/truefeedback-backend/internal/app"
	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
	"github.com/heartmarshall/truefeedback-backend/internal/client/compose"
	"github.com/heartmarshall/truefeedback-backend/internal/client/notice"
	"github.com/heartmarshall/truefeedback-backend/internal/client/suggest"
	"github.com/heartmarshall/truefeedback-backend/internal/config"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config is read from the environment.
type Config struct {
	APIURL   string        `env:"SENDNOTE_API_URL,default=http://localhost:8080"`
	Timeout  time.Duration `env:"SENDNOTE_TIMEOUT,default=10s"`
	Colors   bool          `env:"SENDNOTE_COLORS,default=true"`
	LogLevel string        `env:"LOG_LEVEL,default=warn"`
}

type options struct {
	api     string
	to      string
	message string
	suggest string
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("sendnote", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.api, "api", "", "server base URL (overrides SENDNOTE_API_URL)")
	fs.StringVar(&o.to, "to", "", "recipient: username, @username, u/username or profile link")
	fs.StringVar(&o.message, "message", "", "note to send")
	fs.StringVar(&o.suggest, "suggest", "", "list recipients whose username starts with this text")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.suggest == "" && o.to == "" {
		return o, errors.New("either -to or -suggest is required")
	}
	if o.to != "" && o.message == "" {
		return o, errors.New("-message is required with -to")
	}
	return o, nil
}

// run is main without the process exit, so deferred cleanup always happens.
func run(ctx context.Context, args, environ []string, stdout io.Writer) (int, error) {
	var cfg Config
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := env.Unmarshal(es, &cfg); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	opts, err := parseFlags(args, stdout)
	if err != nil {
		return exitConfig, err
	}
	if opts.api != "" {
		cfg.APIURL = opts.api
	}

	logger := app.NewLogger(config.LogConfig{Level: cfg.LogLevel, Format: "text"})
	client := api.New(cfg.APIURL, api.WithLogger(logger))
	terminal := notice.NewTerminal(stdout, cfg.Colors)

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if opts.suggest != "" {
		found, err := lookup(ctx, client, opts.suggest, logger)
		if err != nil {
			return exitRuntime, err
		}
		printCandidates(stdout, found)
		if opts.to == "" {
			return exitOK, nil
		}
	}

	form := compose.New(client, terminal, compose.WithLogger(logger))
	form.SetTarget(opts.to)
	form.SetContent(opts.message)
	if err := form.Submit(ctx); err != nil {
		// The terminal notice already told the user why.
		return exitRuntime, nil
	}
	return exitOK, nil
}

// lookup runs one query through the suggestion engine and returns the
// settled list.
func lookup(ctx context.Context, s suggest.Searcher, prefix string, logger *slog.Logger) ([]domain.SuggestionCandidate, error) {
	snaps := make(chan suggest.Snapshot, 8)
	eng := suggest.New(s,
		suggest.WithLogger(logger),
		suggest.WithOnChange(func(snap suggest.Snapshot) { snaps <- snap }),
	)
	defer eng.Close()

	eng.Input(prefix)
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("suggestions: %w", ctx.Err())
		case snap := <-snaps:
			if snap.Phase == suggest.PhaseIdle {
				return snap.Candidates, nil
			}
		}
	}
}

func printCandidates(w io.Writer, found []domain.SuggestionCandidate) {
	if len(found) == 0 {
		fmt.Fprintln(w, "No matching recipients")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Recipient", "Accepting"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, c := range found {
		accepting := "yes"
		if !c.AcceptingMessages {
			accepting = "not accepting"
		}
		table.Append([]string{"@" + c.Handle, accepting})
	}
	table.Render()
}
