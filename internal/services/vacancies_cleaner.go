package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/maxaizer/dreamjob-store/internal/events"
	"github.com/maxaizer/dreamjob-store/internal/logger"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"time"
)

type VacancyCleanupRepository interface {
	FindAll(ctx context.Context) ([]entities.Vacancy, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// VacanciesCleaner removes vacancies older than the configured expiration
// once a day and publishes a VacancyExpired event for each of them.
type VacanciesCleaner struct {
	vacancies            VacancyCleanupRepository
	bus                  EventBus.Bus
	cron                 *cron.Cron
	expirationTimeInDays int
	now                  func() time.Time
}

func NewVacanciesCleaner(vacancies VacancyCleanupRepository, bus EventBus.Bus, expirationInDays int) (*VacanciesCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	vc := &VacanciesCleaner{
		vacancies:            vacancies,
		bus:                  bus,
		cron:                 cron.New(),
		expirationTimeInDays: expirationInDays,
		now:                  time.Now,
	}

	_, err := vc.cron.AddFunc("0 0 * * *", func() {
		if _, err := vc.CleanOldVacancies(context.Background()); err != nil {
			log.WithFields(log.Fields{
				logger.ErrorTypeField: logger.ErrorTypeDb,
				logger.EntityField:    "vacancy",
			}).Errorf("failed to clean old vacancies: %v", err)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "schedule vacancies cleanup")
	}

	return vc, nil
}

func (vc *VacanciesCleaner) Start() {
	vc.cron.Start()
	log.Infof("vacancies cleaner started, expiration in days: %d", vc.expirationTimeInDays)
}

func (vc *VacanciesCleaner) Stop() {
	<-vc.cron.Stop().Done()
}

// CleanOldVacancies returns the number of removed vacancies. A vacancy that
// disappears between listing and deletion is not counted.
func (vc *VacanciesCleaner) CleanOldVacancies(ctx context.Context) (int, error) {
	expirationTime := vc.now().AddDate(0, 0, -vc.expirationTimeInDays)

	all, err := vc.vacancies.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list vacancies")
	}

	expired := lo.Filter(all, func(vacancy entities.Vacancy, _ int) bool {
		return vacancy.CreationDate.Before(expirationTime)
	})

	removed := 0
	for _, vacancy := range expired {
		deleted, err := vc.vacancies.DeleteByID(ctx, vacancy.ID)
		if err != nil {
			return removed, errors.Wrapf(err, "delete vacancy %d", vacancy.ID)
		}
		if !deleted {
			continue
		}
		removed++
		metrics.ExpiredVacanciesCounter.Inc()
		vc.bus.Publish(events.VacancyExpiredTopic, events.VacancyExpired{Vacancy: vacancy})
	}

	log.Infof("old vacancies were cleaned at %v, removed: %d", vc.now(), removed)
	return removed, nil
}
