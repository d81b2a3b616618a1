package vaccine

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaxtrack/internal/domain/vaccine"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the soonest upcoming dose",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, u, err := requireUser(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if u.Name != "" {
			fmt.Printf("Hello, %s!\n\n", u.Name)
		}

		rec, err := a.NextDose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query next dose: %w", err)
		}

		if rec == nil {
			fmt.Println("You have no scheduled vaccines at the moment.")
			return nil
		}

		d, _ := rec.NextDoseDate()
		color.Cyan("Next dose: %s", rec.Name)
		fmt.Printf("Scheduled for %s\n", d.Format(vaccine.AppliedLayout))
		return nil
	},
}
