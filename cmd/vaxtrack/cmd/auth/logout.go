package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of this device",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		color.Green("You have been logged out.")
		return nil
	},
}
