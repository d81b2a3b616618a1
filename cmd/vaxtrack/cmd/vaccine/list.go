package vaccine

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vaxtrack/internal/domain/vaccine"
)

var (
	listFilter string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vaccine records",
	Long: `List your vaccine records in insertion order.

--filter narrows the list to records whose name contains the given
text, case-insensitively.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, _, err := requireUser(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.ListVaccines(cmd.Context(), listFilter)
		if err != nil {
			return fmt.Errorf("list vaccines: %w", err)
		}

		switch listFormat {
		case "json":
			return printJSON(records)
		case "table":
			return printTable(records)
		default:
			return printSimple(records)
		}
	},
}

func printSimple(records []vaccine.Vaccine) error {
	if len(records) == 0 {
		fmt.Println("No vaccines recorded.")
		return nil
	}

	fmt.Printf("Found %d record(s):\n\n", len(records))
	for i, r := range records {
		fmt.Printf("%d. %s — applied %s\n", i+1, r.Name, r.AppliedAt)
		if r.NextDose != "" {
			fmt.Printf("   next dose: %s\n", r.NextDose)
		}
		fmt.Printf("   id: %s\n", r.ID)
	}
	return nil
}

func printTable(records []vaccine.Vaccine) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAPPLIED\tNEXT DOSE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.AppliedAt, r.NextDose)
	}
	return w.Flush()
}

func printJSON(records []vaccine.Vaccine) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "filter by name substring")
	listCmd.Flags().StringVar(&listFormat, "format", "simple", "output format (simple, table, json)")
}
