package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if !app.IsAuthenticated() {
			color.Yellow("Not signed in")
			return nil
		}

		info, err := app.Session(cmd.Context())
		if err != nil {
			return fmt.Errorf("session lookup failed: %w", err)
		}

		fmt.Printf("Signed in as %s (%s)\n", info.User.Email, info.User.Name)
		fmt.Printf("Session expires %s\n", info.Session.ExpiresAt.Format("2006-01-02 15:04"))
		return nil
	},
}
