package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/embudo/internal/board"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/events"
	"github.com/thenoetrevino/embudo/internal/models"
	"github.com/thenoetrevino/embudo/internal/types"
	"github.com/thenoetrevino/embudo/internal/user"
)

// storePersister writes board mutations of one vacancy to the store, records
// them in the activity feed and publishes an event
type storePersister struct {
	vacancyID   types.VacancyID
	repo        database.DataStore
	eventClient events.EventPublisher
	log         *slog.Logger
}

var _ board.Persister = (*storePersister)(nil)

func (p *storePersister) PersistStages(ctx context.Context, vacancyID types.VacancyID, stages []models.Stage) error {
	if err := p.repo.PersistStages(ctx, vacancyID, stages); err != nil {
		return err
	}

	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	p.record(ctx, models.ActivityStagesSaved, fmt.Sprintf("Stages set to %s", strings.Join(names, " → ")))
	p.publish(events.Event{Type: events.EventStagesSaved, VacancyID: vacancyID})
	return nil
}

func (p *storePersister) PersistItemMove(ctx context.Context, id types.ItemID, stageName string) error {
	if err := p.repo.PersistItemMove(ctx, id, stageName); err != nil {
		return err
	}

	summary := fmt.Sprintf("Candidate #%d moved to %s", id, stageName)
	if item, _, err := p.repo.GetItem(ctx, id); err == nil {
		summary = fmt.Sprintf("%s moved to %s", item.DisplayName, stageName)
	}
	p.record(ctx, models.ActivityCandidateMove, summary)
	p.publish(events.Event{Type: events.EventCandidateMoved, VacancyID: p.vacancyID, ItemID: id, StageName: stageName})
	return nil
}

// record logs instead of failing: the change itself is already stored
func (p *storePersister) record(ctx context.Context, kind models.ActivityKind, summary string) {
	_, err := p.repo.RecordActivity(ctx, models.Activity{
		VacancyID: p.vacancyID,
		Kind:      kind,
		Summary:   summary,
		Actor:     user.Name(),
	})
	if err != nil {
		p.log.Warn("failed to record activity", "vacancy_id", p.vacancyID, "kind", kind, "error", err)
	}
}

func (p *storePersister) publish(event events.Event) {
	if err := events.PublishWithRetry(p.eventClient, event, 3); err != nil {
		p.log.Warn("failed to publish board event", "vacancy_id", p.vacancyID, "error", err)
	}
}
