package records

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"servicelog/internal/domain/servicerecord"
)

var (
	updateDate       string
	updateType       string
	updateHours      float64
	updateEquipID    string
	updateEquipType  string
	updateTech       string
	updateParts      string
	updateClearParts bool
	updateNotes      string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a service record",
	Long: `Update fields of an existing service record.

Only the flags you pass are sent; everything else keeps its stored value.
Use --clear-parts to remove the parts list from a record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var req servicerecord.UpdateRequest

		if updateDate != "" {
			date, err := time.Parse("2006-01-02", updateDate)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}
			req.Date = &date
		}
		if cmd.Flags().Changed("type") {
			req.ServiceType = &updateType
		}
		if cmd.Flags().Changed("hours") {
			req.ServiceTime = servicerecord.NewHours(updateHours)
		}
		if cmd.Flags().Changed("equipment-id") {
			req.EquipmentID = &updateEquipID
		}
		if cmd.Flags().Changed("equipment-type") {
			req.EquipmentType = &updateEquipType
		}
		if cmd.Flags().Changed("technician") {
			req.Technician = &updateTech
		}
		if updateClearParts {
			req.PartsUsed = servicerecord.OptionalString{Set: true}
		} else if cmd.Flags().Changed("parts") {
			req.PartsUsed = servicerecord.OptionalString{Set: true, Value: &updateParts}
		}
		if cmd.Flags().Changed("notes") {
			req.ServiceNotes = &updateNotes
		}

		rec, err := app.UpdateRecord(cmd.Context(), args[0], req)
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		color.Green("Updated record %s", rec.ID)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateDate, "date", "", "service date (YYYY-MM-DD)")
	UpdateCmd.Flags().StringVar(&updateType, "type", "", "service type")
	UpdateCmd.Flags().Float64Var(&updateHours, "hours", 0, "service duration in hours")
	UpdateCmd.Flags().StringVar(&updateEquipID, "equipment-id", "", "equipment identifier")
	UpdateCmd.Flags().StringVar(&updateEquipType, "equipment-type", "", "equipment type")
	UpdateCmd.Flags().StringVar(&updateTech, "technician", "", "technician name")
	UpdateCmd.Flags().StringVar(&updateParts, "parts", "", "parts used")
	UpdateCmd.Flags().BoolVar(&updateClearParts, "clear-parts", false, "remove the parts list")
	UpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "service notes")
}
