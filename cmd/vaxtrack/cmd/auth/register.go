package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaxtrack/internal/domain/user"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long: `Register a new user on this device.

You will be asked for your name, CPF and a password. The CPF may be
typed with or without punctuation; it is stored digits-only.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		name := promptLine("Name")
		cpf := promptLine("CPF")

		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password")
		if err != nil {
			return err
		}

		u, err := a.Register(cmd.Context(), user.RegisterInput{
			Name:            name,
			CPF:             cpf,
			Password:        password,
			PasswordConfirm: confirm,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("Registration complete. You are now logged in as %s (%s).",
			u.Name, user.FormatCPF(u.CPF))
		return nil
	},
}
