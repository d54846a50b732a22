package cmd

import (
	"servicelog/cmd/client/cmd/auth"
	"servicelog/cmd/client/cmd/records"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	rootCmd.AddCommand(records.RecordsCmd)
	records.RecordsCmd.AddCommand(records.ListCmd)
	records.RecordsCmd.AddCommand(records.GetCmd)
	records.RecordsCmd.AddCommand(records.CreateCmd)
	records.RecordsCmd.AddCommand(records.UpdateCmd)
	records.RecordsCmd.AddCommand(records.DeleteCmd)
}
