package vaccine

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vaxtrack/cmd/vaxtrack/cmd/types"
	"vaxtrack/internal/app"
	"vaxtrack/internal/domain/user"
)

var VaccinesCmd = &cobra.Command{
	Use:     "vaccine",
	Aliases: []string{"vaccines"},
	Short:   "Manage your vaccine records",
}

func init() {
	VaccinesCmd.AddCommand(addCmd)
	VaccinesCmd.AddCommand(listCmd)
	VaccinesCmd.AddCommand(deleteCmd)
	VaccinesCmd.AddCommand(nextCmd)
}

// requireUser returns the app and the logged-in identity; vaccine
// commands refuse to run without an active session.
func requireUser(cmd *cobra.Command) (*app.App, user.User, error) {
	a, ok := cmd.Context().Value(types.AppKey).(*app.App)
	if !ok || a == nil {
		return nil, user.User{}, fmt.Errorf("application is not initialized")
	}

	u, err := a.CurrentUser(cmd.Context())
	if err != nil {
		a.Close()
		return nil, user.User{}, fmt.Errorf("you must be logged in: run 'vaxtrack auth login'")
	}
	return a, u, nil
}

func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
