package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"sched/internal/adapter/sqlite"
	"sched/internal/config"
)

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently fetched schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()

			repo, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open lookup history: %w", err)
			}
			defer repo.Close()

			lookups, err := repo.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(lookups) == 0 {
				fmt.Fprintln(out, "No schedules fetched yet.")
				return nil
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Query", "Line", "PDF", "Fetched"})
			for _, l := range lookups {
				tw.AppendRow(table.Row{l.ID, l.Query, l.Code, l.URL, l.FetchedAt.Format("2006-01-02 15:04")})
			}
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
			})
			fmt.Fprintln(out, tw.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	return cmd
}
