package records

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"servicelog/internal/domain/servicerecord"
)

var (
	listCached bool
	listJSON   bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your service records",
	Long: `List all service records you own, newest first.

With --cached the last fetched listing is shown without contacting the
server, which works offline.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var records []servicerecord.ServiceRecord
		if listCached {
			cached, err := app.ListCached()
			if err != nil {
				return fmt.Errorf("read cache: %w", err)
			}
			for _, c := range cached {
				records = append(records, c.ServiceRecord)
			}
		} else {
			records, err = app.ListRecords(cmd.Context())
			if err != nil {
				return fmt.Errorf("list records: %w", err)
			}
		}

		if listJSON {
			return printJSON(records)
		}

		if len(records) == 0 {
			color.Yellow("No service records found")
			return nil
		}

		printTable(records)
		return nil
	},
}

func init() {
	ListCmd.Flags().BoolVar(&listCached, "cached", false, "read from the local cache instead of the server")
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
