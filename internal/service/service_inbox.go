package service

import (
	"context"

	"github.com/x1024/shkolo-cli/internal/adapter"
	"github.com/x1024/shkolo-cli/internal/cache"
	"github.com/x1024/shkolo-cli/internal/config"
	"github.com/x1024/shkolo-cli/internal/logger"
	"github.com/x1024/shkolo-cli/internal/validators"
	"github.com/x1024/shkolo-cli/models"
)

type inboxService struct {
	api     adapter.ShkoloAPI
	diary   DiaryService
	fetcher *cachedFetcher
	logger  *logger.Logger
}

// NewInboxService returns an InboxService. The diary service supplies
// the pupils whose event invitations augment the events report.
func NewInboxService(api adapter.ShkoloAPI, diary DiaryService, repo cache.Repository, cfg *config.Config, logger *logger.Logger) InboxService {
	return &inboxService{
		api:     api,
		diary:   diary,
		fetcher: newFetcher(repo, cfg),
		logger:  logger,
	}
}

// Notifications implements [InboxService].
func (i *inboxService) Notifications(ctx context.Context, page int) ([]models.Notification, error) {
	if err := validators.Page(page); err != nil {
		return nil, err
	}

	resp, err := i.api.Notifications(ctx, page)
	if err != nil {
		return nil, err
	}

	notifications := make([]models.Notification, 0, len(resp.Items))
	for _, item := range resp.Items {
		notifications = append(notifications, models.NewNotification(item))
	}
	return notifications, nil
}

// Events implements [InboxService]. The pupil sections are best-effort:
// when the pupils list or a single invitation feed cannot be fetched,
// the school-wide list is still returned.
func (i *inboxService) Events(ctx context.Context, schoolCalendar bool, opts FetchOptions) (*models.EventsReport, error) {
	resp, err := i.api.Events(ctx, schoolCalendar)
	if err != nil {
		return nil, err
	}

	report := &models.EventsReport{
		Events:   make([]models.Event, 0, len(resp.Items)),
		Sections: []models.StudentEvents{},
	}
	for _, item := range resp.Items {
		report.Events = append(report.Events, models.NewEvent(item))
	}

	log := logger.FromContext(ctx)
	students, _, err := i.diary.Students(ctx, opts)
	if err != nil {
		if terminal(err) {
			return nil, err
		}
		log.Debug().Err(err).Msg("skipping pupil invitations")
		return report, nil
	}

	for _, student := range students {
		events, info, err := i.pupilEvents(ctx, student, opts)
		if err != nil {
			if terminal(err) {
				return nil, err
			}
			log.Debug().Err(err).Int64("pupil_id", student.ID).Msg("pupil invitations unavailable")
			continue
		}
		if info.Cached && !report.Cache.Cached {
			report.Cache = info
		}
		report.Sections = append(report.Sections, models.StudentEvents{Student: student, Events: events})
	}
	return report, nil
}

func (i *inboxService) pupilEvents(ctx context.Context, student models.Pupil, opts FetchOptions) ([]models.Event, models.CacheInfo, error) {
	return fetchThrough(ctx, i.fetcher, cache.KeyEvents(student.ID), opts, func(ctx context.Context) ([]models.Event, error) {
		resp, err := i.api.PupilEvents(ctx, student.ID)
		if err != nil {
			return nil, err
		}

		events := make([]models.Event, 0, len(resp.Items))
		for _, item := range resp.Items {
			events = append(events, models.NewEvent(item))
		}
		return events, nil
	})
}
