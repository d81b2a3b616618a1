package vaccine

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vaxtrack/internal/domain/vaccine"
)

var (
	addID       string
	addName     string
	addDate     string
	addNextDose string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or edit a vaccine record",
	Long: `Record a vaccine you have taken.

The applied date uses DD/MM/YYYY and cannot be in the future. An
optional next dose date (YYYY-MM-DD) feeds the 'vaccine next' query.
Passing --id of an existing record edits it in place; fields you do
not pass keep their stored values.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		in := vaccine.UpsertInput{
			ID:       addID,
			Name:     addName,
			Applied:  addDate,
			NextDose: addNextDose,
		}

		if in.ID != "" {
			records, err := a.ListVaccines(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("load vaccine: %w", err)
			}
			in = prefillFromExisting(in, records)
		}

		if in.Name == "" {
			in.Name = promptLine("Vaccine name")
		}
		if in.Applied == "" {
			in.Applied = promptLine("Applied on (DD/MM/YYYY)")
		}
		if in.NextDose == "" && in.ID == "" {
			in.NextDose = promptLine("Next dose (YYYY-MM-DD, Enter to skip)")
		}

		rec, err := a.UpsertVaccine(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("save vaccine: %w", err)
		}

		color.Green("Vaccine %q saved (id %s).", rec.Name, rec.ID)
		return nil
	},
}

// prefillFromExisting fills the empty fields of an edit from the stored
// record, so correcting one field does not wipe the others. Unknown ids
// leave the input untouched.
func prefillFromExisting(in vaccine.UpsertInput, records []vaccine.Vaccine) vaccine.UpsertInput {
	for _, r := range records {
		if r.ID != in.ID {
			continue
		}
		if in.Name == "" {
			in.Name = r.Name
		}
		if in.Applied == "" {
			in.Applied = r.AppliedAt
		}
		if in.NextDose == "" {
			in.NextDose = r.NextDose
		}
		return in
	}
	return in
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "record id to edit")
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "vaccine name")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "applied date (DD/MM/YYYY)")
	addCmd.Flags().StringVar(&addNextDose, "next-dose", "", "scheduled next dose (YYYY-MM-DD)")
}
