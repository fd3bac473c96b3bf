package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/agency-dashboard-api/pkg/database"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  "Creates the clients, scopes and posts tables if they do not exist. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				_, err := fmt.Fprint(cmd.OutOrStdout(), database.Schema())
				return err
			}
			db, err := database.NewPostgres(cmd.Context(), opts.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			opts.log.Info("schema applied")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the schema instead of applying it")

	return cmd
}
