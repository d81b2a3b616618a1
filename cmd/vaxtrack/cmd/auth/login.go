package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaxtrack/internal/domain/user"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with CPF and password",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := appFromContext(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		cpf := promptLine("CPF")
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		u, err := a.Login(cmd.Context(), cpf, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if u.Name != "" {
			color.Green("Welcome back, %s!", u.Name)
		} else {
			color.Green("Welcome back, %s!", user.FormatCPF(u.CPF))
		}
		return nil
	},
}
