package records

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"servicelog/internal/domain/servicerecord"
)

var (
	createDate      string
	createType      string
	createHours     float64
	createEquipID   string
	createEquipType string
	createTech      string
	createParts     string
	createNotes     string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service record",
	Long: `Create a new service record.

All flags except --parts are required by the server; a request with missing
fields is rejected with the list of required ones.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		req := servicerecord.CreateRequest{
			ServiceType:   createType,
			EquipmentID:   createEquipID,
			EquipmentType: createEquipType,
			Technician:    createTech,
			ServiceNotes:  createNotes,
		}

		if createDate != "" {
			date, err := time.Parse("2006-01-02", createDate)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}
			req.Date = &date
		}

		if cmd.Flags().Changed("hours") {
			req.ServiceTime = servicerecord.NewHours(createHours)
		}

		if createParts != "" {
			req.PartsUsed = &createParts
		}

		rec, err := app.CreateRecord(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		color.Green("Created record %s", rec.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createDate, "date", "", "service date (YYYY-MM-DD)")
	CreateCmd.Flags().StringVar(&createType, "type", "", "service type, e.g. \"Oil Change\"")
	CreateCmd.Flags().Float64Var(&createHours, "hours", 0, "service duration in hours")
	CreateCmd.Flags().StringVar(&createEquipID, "equipment-id", "", "equipment identifier")
	CreateCmd.Flags().StringVar(&createEquipType, "equipment-type", "", "equipment type, e.g. \"Excavator\"")
	CreateCmd.Flags().StringVar(&createTech, "technician", "", "technician name")
	CreateCmd.Flags().StringVar(&createParts, "parts", "", "parts used (optional)")
	CreateCmd.Flags().StringVar(&createNotes, "notes", "", "service notes")
}
