package records

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"servicelog/cmd/client/cmd/types"
	"servicelog/internal/app/client"
	"servicelog/internal/domain/servicerecord"
)

// RecordsCmd is the parent command for service record operations.
var RecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage service records",
	Long:  `List, inspect, create, update and delete equipment service records.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client not initialized")
	}
	return app, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(records []servicerecord.ServiceRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tEQUIPMENT\tHOURS\tTECHNICIAN")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\t%.2f\t%s\n",
			rec.ID,
			rec.Date.Format("2006-01-02"),
			rec.ServiceType,
			rec.EquipmentID,
			rec.EquipmentType,
			rec.ServiceTime,
			rec.Technician,
		)
	}
	w.Flush()
}

func printRecord(rec servicerecord.ServiceRecord) {
	bold := color.New(color.Bold)

	bold.Printf("%s %s\n", rec.ServiceType, rec.Date.Format("2006-01-02"))
	fmt.Printf("ID:          %s\n", rec.ID)
	fmt.Printf("Equipment:   %s (%s)\n", rec.EquipmentID, rec.EquipmentType)
	fmt.Printf("Hours:       %.2f\n", rec.ServiceTime)
	fmt.Printf("Technician:  %s\n", rec.Technician)
	if rec.PartsUsed != nil {
		fmt.Printf("Parts used:  %s\n", *rec.PartsUsed)
	}
	fmt.Printf("Notes:       %s\n", rec.ServiceNotes)
	fmt.Printf("Updated:     %s\n", rec.UpdatedAt.Format("2006-01-02 15:04"))
}
