package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"leadcrm/internal/types"
)

var leadsStatus string

// leadsCmd groups lead operations
var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Lead operations",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads visible to the logged-in user",
	RunE:  runLeadsList,
}

func init() {
	leadsListCmd.Flags().StringVar(&leadsStatus, "status", "", "Filter by status (new, contacted, qualified, converted, lost)")
	leadsCmd.AddCommand(leadsListCmd)
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	store, err := newStore(cmd.Context())
	if err != nil {
		return err
	}

	leads := store.Leads()
	if leadsStatus != "" {
		filtered := leads[:0]
		for _, l := range leads {
			if l.Status == types.LeadStatus(leadsStatus) {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tSTATUS\tSOURCE\tPAID\tBILLED\tASSIGNED")
	for _, l := range leads {
		assigned := l.AssignedTo
		if assigned == "" {
			assigned = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
			l.ID, l.Name, l.CompanyName, l.Status, l.Source, l.PricePaid, l.InvoiceBilled, assigned)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d lead(s)\n", len(leads))
	return nil
}
