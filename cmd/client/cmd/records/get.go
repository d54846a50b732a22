package records

import (
	"fmt"

	"github.com/spf13/cobra"

	"servicelog/internal/domain/servicerecord"
)

var (
	getCached bool
	getJSON   bool
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single service record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var rec servicerecord.ServiceRecord
		if getCached {
			cached, err := app.GetCached(args[0])
			if err != nil {
				return fmt.Errorf("read cache: %w", err)
			}
			rec = cached.ServiceRecord
		} else {
			rec, err = app.GetRecord(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get record: %w", err)
			}
		}

		if getJSON {
			return printJSON(rec)
		}

		printRecord(rec)
		return nil
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getCached, "cached", false, "read from the local cache instead of the server")
	GetCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
}
