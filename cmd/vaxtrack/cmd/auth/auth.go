package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vaxtrack/cmd/vaxtrack/cmd/types"
	"vaxtrack/internal/app"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Registration and login",
}

func init() {
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
}

func appFromContext(cmd *cobra.Command) (*app.App, error) {
	a, ok := cmd.Context().Value(types.AppKey).(*app.App)
	if !ok || a == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return a, nil
}

func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}

func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
