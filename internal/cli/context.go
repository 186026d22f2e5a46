package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/types"
)

// VacancyEnv holds the vacancy set by `embudo use vacancy`
const VacancyEnv = "EMBUDO_VACANCY"

// ErrNoVacancy is returned when neither --vacancy nor EMBUDO_VACANCY is set
var ErrNoVacancy = fmt.Errorf("no vacancy selected: pass --vacancy or set %s", VacancyEnv)

// ErrBadVacancyEnv is returned when EMBUDO_VACANCY is not a positive integer
var ErrBadVacancyEnv = fmt.Errorf("malformed %s", VacancyEnv)

// AddVacancyFlag registers the --vacancy flag shared by board commands
func AddVacancyFlag(cmd *cobra.Command) {
	cmd.Flags().Int("vacancy", 0, "Vacancy ID (defaults to $"+VacancyEnv+")")
}

// GetVacancyID reads the vacancy from --vacancy, falling back to EMBUDO_VACANCY.
// The flag takes precedence.
func GetVacancyID(cmd *cobra.Command) (types.VacancyID, error) {
	if flag := cmd.Flags().Lookup("vacancy"); flag != nil && flag.Changed {
		id, err := cmd.Flags().GetInt("vacancy")
		if err != nil {
			return 0, err
		}
		if id <= 0 {
			return 0, fmt.Errorf("vacancy must be greater than 0, got %d", id)
		}
		return types.VacancyID(id), nil
	}

	env := os.Getenv(VacancyEnv)
	if env == "" {
		return 0, ErrNoVacancy
	}
	id, err := strconv.Atoi(env)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadVacancyEnv, env)
	}
	return types.VacancyID(id), nil
}
