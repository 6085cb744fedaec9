package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	targetsUser    string
	targetsSales   float64
	targetsInvoice float64
)

// targetsCmd groups sales target operations
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Sales target operations",
}

var targetsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show targets and progress",
	Long: `Shows sales and invoice targets with progress percentages.
Admins see every sales user; sales users see their own record.`,
	RunE: runTargetsShow,
}

var targetsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set targets for a sales user (admin only)",
	RunE:  runTargetsSet,
}

func init() {
	targetsSetCmd.Flags().StringVar(&targetsUser, "user", "", "Sales user ID (required)")
	targetsSetCmd.Flags().Float64Var(&targetsSales, "sales", 0, "Monthly sales target")
	targetsSetCmd.Flags().Float64Var(&targetsInvoice, "invoice", 0, "Monthly invoice target")
	targetsSetCmd.MarkFlagRequired("user")

	targetsCmd.AddCommand(targetsShowCmd)
	targetsCmd.AddCommand(targetsSetCmd)
}

func runTargetsShow(cmd *cobra.Command, args []string) error {
	store, err := newStore(cmd.Context())
	if err != nil {
		return err
	}

	names := make(map[string]string)
	for _, u := range store.Salespeople() {
		names[u.ID] = u.Name
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tSALES TARGET\tSALES %\tINVOICE TARGET\tINVOICE %")
	for userID, t := range store.AllTargets() {
		p := store.CalculateUserProgress(userID)
		name := names[userID]
		if name == "" {
			name = userID
		}
		fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\t%.2f\t%.1f%%\n",
			name, t.SalesTarget, p.Sales, t.InvoiceTarget, p.Invoice)
	}
	return w.Flush()
}

func runTargetsSet(cmd *cobra.Command, args []string) error {
	store, err := newStore(cmd.Context())
	if err != nil {
		return err
	}

	t, err := store.SetUserTargets(cmd.Context(), targetsUser, targetsSales, targetsInvoice)
	if err != nil {
		return err
	}

	fmt.Printf("Targets for %s: sales %.2f, invoice %.2f\n", t.UserID, t.SalesTarget, t.InvoiceTarget)
	return nil
}
