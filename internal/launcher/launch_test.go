package launcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/embudo/internal/app"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/services/vacancy"
	"github.com/thenoetrevino/embudo/internal/testutil"
	"github.com/thenoetrevino/embudo/internal/types"
)

func setupApp(t *testing.T) *app.App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	bus := events.NewBus()
	application := app.New(testutil.SetupTestRepo(t), config.Default(), app.WithEventPublisher(bus))
	t.Cleanup(func() { _ = bus.Close() })
	return application
}

func TestNewModel_OpensNewestVacancy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	application := setupApp(t)

	testutil.CreateTestVacancy(t, application.Repo(), "Backend Engineer")
	newest := testutil.CreateTestVacancy(t, application.Repo(), "Designer", "Applied", "Portfolio", "Offer")

	m, err := NewModel(ctx, application, 0)
	require.NoError(t, err)
	assert.Equal(t, newest, m.Board().VacancyID())
	assert.Len(t, m.Board().Stages(), 3)
}

func TestNewModel_ExplicitVacancy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	application := setupApp(t)

	first := testutil.CreateTestVacancy(t, application.Repo(), "Backend Engineer")
	testutil.CreateTestVacancy(t, application.Repo(), "Designer")

	m, err := NewModel(ctx, application, first)
	require.NoError(t, err)
	assert.Equal(t, first, m.Board().VacancyID())
}

func TestNewModel_NoVacancies(t *testing.T) {
	application := setupApp(t)

	_, err := NewModel(context.Background(), application, 0)
	assert.ErrorIs(t, err, ErrNoVacancies)
}

func TestNewModel_MissingVacancy(t *testing.T) {
	application := setupApp(t)

	_, err := NewModel(context.Background(), application, types.VacancyID(99))
	assert.ErrorIs(t, err, vacancy.ErrVacancyNotFound)
}
