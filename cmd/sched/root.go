package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sched/internal/adapter/download"
	"sched/internal/adapter/gotransit"
	"sched/internal/adapter/sqlite"
	"sched/internal/adapter/viewer"
	"sched/internal/alias"
	"sched/internal/config"
	"sched/internal/domain"
	"sched/internal/tempfile"
)

// pdfName is the fixed file name under the sched temp directory.
const pdfName = "sched.pdf"

func newRootCommand() *cobra.Command {
	var (
		indexURL string
		timeout  time.Duration
		delay    time.Duration
		noOpen   bool
	)

	rootCmd := &cobra.Command{
		Use:   "sched <name-or-alias>...",
		Short: "Fetch and open GO Transit line timetables",
		Long: "sched resolves a line name, short code or route number to the currently\n" +
			"published PDF timetable, downloads it and opens it in the default viewer.\n" +
			"Multiple arguments are joined into a single name, so quoting is optional:\n" +
			"'sched lakeshore west' and 'sched \"lakeshore west\"' are equivalent.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}

			cfg := config.Load()
			if cmd.Flags().Changed("index-url") {
				cfg.IndexURL = indexURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.HTTPTimeout = timeout
			}
			if cmd.Flags().Changed("delay") {
				cfg.ViewerDelay = delay
			}

			return runFetch(cmd.Context(), cfg, queryFromArgs(args), noOpen)
		},
	}

	rootCmd.Flags().StringVar(&indexURL, "index-url", config.DefaultIndexURL, "Schedule index page URL")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.Flags().DurationVar(&delay, "delay", 2*time.Second, "Pause after opening the viewer before cleanup")
	rootCmd.Flags().BoolVar(&noOpen, "no-open", false, "Download only, do not open the viewer")

	rootCmd.AddCommand(newHistoryCommand())

	return rootCmd
}

// queryFromArgs joins the raw arguments into a single alias string.
func queryFromArgs(args []string) string {
	return strings.Join(args, " ")
}

func runFetch(ctx context.Context, cfg *config.Config, query string, noOpen bool) error {
	table, err := alias.Load()
	if err != nil {
		return err
	}

	var store domain.LookupStore
	repo, err := sqlite.New(cfg.DBPath)
	if err != nil {
		// History is an extra; a broken database must not block the fetch.
		log.Printf("warning: lookup history disabled: %v", err)
	} else {
		defer repo.Close()
		store = repo
	}

	svc := domain.NewScheduleService(
		table,
		gotransit.NewLocator(cfg.IndexURL, cfg.HTTPTimeout),
		download.New(cfg.HTTPTimeout),
		store,
	)

	dest := tempfile.Acquire(pdfName)
	defer dest.Release()

	fmt.Fprintf(os.Stdout, "Getting schedule for %s\n", table.Normalize(query))

	lookup, err := svc.Fetch(ctx, query, dest)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "PDF link: %s\n", lookup.URL)
	fmt.Fprintf(os.Stdout, "Saved to %s\n", dest.Path())

	if noOpen {
		return nil
	}

	if err := viewer.Open(dest.Path()); err != nil {
		return err
	}

	// The deferred release removes the PDF when this returns. The pause
	// is a best-effort window for the viewer to open the file first; a
	// slow viewer can still lose the race.
	time.Sleep(cfg.ViewerDelay)
	return nil
}
