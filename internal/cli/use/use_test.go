package use

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/cli"
	"github.com/thenoetrevino/embudo/internal/testutil"
	cliutil "github.com/thenoetrevino/embudo/internal/testutil/cli"
)

func TestUseVacancy_Export(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")
	repo, testApp := cliutil.SetupCLITest(t)
	testutil.CreateTestVacancy(t, repo, "Backend Engineer")

	output, err := cliutil.ExecuteCLICommand(t, testApp, UseCmd(), "vacancy", "1")
	require.NoError(t, err)
	assert.Equal(t, "export EMBUDO_VACANCY=1\n", output)
}

func TestUseVacancy_Clear(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	_, testApp := cliutil.SetupCLITest(t)

	output, err := cliutil.ExecuteCLICommand(t, testApp, VacancyCmd(), "--clear")
	require.NoError(t, err)
	assert.Equal(t, "unset EMBUDO_VACANCY\n", output)
}

func TestUseVacancy_Show(t *testing.T) {
	repo, testApp := cliutil.SetupCLITest(t)
	testutil.CreateTestVacancy(t, repo, "Backend Engineer")
	t.Setenv(cli.VacancyEnv, "1")

	output, err := cliutil.ExecuteCLICommand(t, testApp, VacancyCmd(), "--show")
	require.NoError(t, err)
	assert.Equal(t, "Current vacancy: 1 (Backend Engineer)\n", output)
}

func TestUseVacancy_Unknown(t *testing.T) {
	_, testApp := cliutil.SetupCLITest(t)

	_, err := cliutil.ExecuteCLICommand(t, testApp, VacancyCmd(), "42")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeOf(err))
}

func TestUseVacancy_Fish(t *testing.T) {
	repo, testApp := cliutil.SetupCLITest(t)
	testutil.CreateTestVacancy(t, repo, "Backend Engineer")

	output, err := cliutil.ExecuteCLICommand(t, testApp, UseCmd(), "vacancy", "1", "--shell=fish")
	require.NoError(t, err)
	assert.Equal(t, "set -gx EMBUDO_VACANCY 1\n", output)
}

func TestShellLines(t *testing.T) {
	assert.Equal(t, "export EMBUDO_VACANCY=3", exportLine("sh", "EMBUDO_VACANCY", 3))
	assert.Equal(t, "set -e EMBUDO_VACANCY", unsetLine("fish", "EMBUDO_VACANCY"))
	assert.Equal(t, "unset EMBUDO_VACANCY", unsetLine("sh", "EMBUDO_VACANCY"))
}
