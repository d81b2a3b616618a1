package vaccine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaxtrack/internal/domain/vaccine"
)

func TestVaccinesCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range VaccinesCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"add", "list", "delete", "next"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestPrefillFromExisting(t *testing.T) {
	records := []vaccine.Vaccine{
		{ID: "a", Name: "Influenza", AppliedAt: "01/01/2024", NextDose: "2025-06-01"},
		{ID: "b", Name: "Hepatite B", AppliedAt: "15/03/2024"},
	}

	t.Run("unset fields keep their stored values", func(t *testing.T) {
		got := prefillFromExisting(vaccine.UpsertInput{ID: "a", Name: "Influenza H1N1"}, records)

		assert.Equal(t, "Influenza H1N1", got.Name)
		assert.Equal(t, "01/01/2024", got.Applied)
		// a name-only edit must not wipe the scheduled next dose
		assert.Equal(t, "2025-06-01", got.NextDose)
	})

	t.Run("explicit fields win over stored ones", func(t *testing.T) {
		in := vaccine.UpsertInput{ID: "a", NextDose: "2025-12-01"}
		got := prefillFromExisting(in, records)

		require.Equal(t, "2025-12-01", got.NextDose)
		assert.Equal(t, "Influenza", got.Name)
	})

	t.Run("record without next dose stays without one", func(t *testing.T) {
		got := prefillFromExisting(vaccine.UpsertInput{ID: "b"}, records)
		assert.Empty(t, got.NextDose)
	})

	t.Run("unknown id leaves the input untouched", func(t *testing.T) {
		in := vaccine.UpsertInput{ID: "ghost", Name: "New"}
		assert.Equal(t, in, prefillFromExisting(in, records))
	})
}
