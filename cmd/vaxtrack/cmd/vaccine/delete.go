package vaccine

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a vaccine record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		id := args[0]

		if !deleteYes {
			answer := promptLine(fmt.Sprintf("Delete record %s? [y/N]", id))
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := a.DeleteVaccine(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete vaccine: %w", err)
		}

		color.Green("Record deleted.")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
