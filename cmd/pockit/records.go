package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pockit/internal/cli"
)

const defaultListLimit = 20

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "List recorded transactions, newest first",
		Args:    cobra.NoArgs,
		RunE:    runTransactions,
	}

	cmd.Flags().Int("limit", defaultListLimit, "Maximum rows to show (0 for all)")

	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	records, err := store.ListTransactions(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No transactions recorded yet. Try 'pockit chat'."))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Transactions"))
	return cli.WriteTransactions(out, records)
}

func milestonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "List recorded savings milestones, newest first",
		Args:  cobra.NoArgs,
		RunE:  runMilestones,
	}

	cmd.Flags().Int("limit", defaultListLimit, "Maximum rows to show (0 for all)")

	return cmd
}

func runMilestones(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	records, err := store.ListMilestones(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list milestones: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No savings milestones recorded yet."))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Savings milestones"))
	return cli.WriteMilestones(out, records)
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			summaries, err := store.SpendingByCategory(ctx)
			if err != nil {
				return fmt.Errorf("failed to summarize spending: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No spending recorded yet."))
				return nil
			}

			fmt.Fprintln(out, cli.ChartIcon+" "+cli.TitleStyle.Render("Spending by category"))
			return cli.WriteSummary(out, summaries)
		},
	}
}
