// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/docuvault/document-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  "Apply, roll back, and inspect the embedded schema migrations.",
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL connection string")
	migrateCmd.PersistentFlags().StringP("format", "f", "text", "output format (text or json)")
	_ = migrateCmd.MarkPersistentFlagRequired("dsn")

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE:  withProvider(migrateDown),
	}
	downCmd.Flags().Int64("to", -1, "roll back to this version instead of one step")

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  withProvider(migrateUp),
		},
		downCmd,
		&cobra.Command{
			Use:   "status",
			Short: "Show the state of every migration",
			RunE:  withProvider(migrateStatus),
		},
		&cobra.Command{
			Use:   "check",
			Short: "Exit non-zero when migrations are pending",
			RunE:  withProvider(migrateCheck),
		},
	)

	rootCmd.AddCommand(migrateCmd)
}

// withProvider opens the database, builds a goose provider over the embedded
// migrations, and hands both to the subcommand.
func withProvider(run func(cmd *cobra.Command, provider *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("unknown output format %q", format)
		}

		db, err := openMigrationDB(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		var opts []goose.ProviderOption
		if format == "json" {
			opts = append(opts, goose.WithLogger(goose.NopLogger()))
		}

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
		if err != nil {
			return fmt.Errorf("failed to create migration provider: %w", err)
		}

		cmd.SilenceUsage = true
		return run(cmd, provider)
	}
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid dsn: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach the database: %w", err)
	}

	return db, nil
}

func migrateUp(cmd *cobra.Command, provider *goose.Provider) error {
	results, err := provider.Up(cmd.Context())
	if err != nil {
		return err
	}
	return writeResults(cmd, results)
}

func migrateDown(cmd *cobra.Command, provider *goose.Provider) error {
	to, _ := cmd.Flags().GetInt64("to")

	var results []*goose.MigrationResult
	var err error
	if to >= 0 {
		results, err = provider.DownTo(cmd.Context(), to)
	} else {
		var result *goose.MigrationResult
		result, err = provider.Down(cmd.Context())
		if err == nil {
			results = append(results, result)
		}
	}
	if err != nil {
		return err
	}
	return writeResults(cmd, results)
}

func writeResults(cmd *cobra.Command, results []*goose.MigrationResult) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
	}

	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

func migrateStatus(cmd *cobra.Command, provider *goose.Provider) error {
	statuses, err := provider.Status(cmd.Context())
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(statuses)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "APPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return tw.Flush()
}

func migrateCheck(cmd *cobra.Command, provider *goose.Provider) error {
	hasPending, err := provider.HasPending(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	version, versionErr := provider.GetDBVersion(cmd.Context())

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		status := "ok"
		if hasPending {
			status = "pending"
		} else if versionErr != nil {
			status = "unknown"
		}
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
			"status":  status,
			"version": version,
		}); err != nil {
			return err
		}
		if hasPending {
			return fmt.Errorf("migrations are pending")
		}
		return nil
	}

	if hasPending {
		return fmt.Errorf("migrations are pending: current version %d", version)
	}
	if versionErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "database is up to date (version %d)\n", version)
	return nil
}
