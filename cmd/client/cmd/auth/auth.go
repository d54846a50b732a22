package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"servicelog/cmd/client/cmd/types"
	"servicelog/internal/app/client"
)

// AuthCmd is the parent command for account and session operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account and session",
	Long:  `Register, sign in, sign out and inspect the current session.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client not initialized")
	}
	return app, nil
}
