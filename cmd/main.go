package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/dreamjob-store/internal/config"
	"github.com/maxaizer/dreamjob-store/internal/events"
	"github.com/maxaizer/dreamjob-store/internal/logger"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	"github.com/maxaizer/dreamjob-store/internal/repositories"
	"github.com/maxaizer/dreamjob-store/internal/services"
	log "github.com/sirupsen/logrus"
	"os/signal"
	"syscall"
)

func createVacancies(ctx context.Context, cfg *config.Config, dbContext *repositories.DbContext) repositories.VacancyRepository {
	if cfg.Store.VacancyBackend == config.BackendMemory {
		return repositories.NewMemoryVacancies()
	}

	vacancies := repositories.NewVacanciesRepository(dbContext.DB)
	if err := vacancies.SeedIfEmpty(ctx); err != nil {
		log.Fatalf("can't seed vacancies: %v", err)
	}
	return vacancies
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Metrics.Addr)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString, cfg.DB.MaxOpenConns)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	vacancies := createVacancies(ctx, cfg, dbContext)
	users := repositories.NewUsersRepository(dbContext.DB, cfg.Store.PasswordHashCost)

	all, err := users.FindAll(ctx)
	if err != nil {
		log.Fatalf("can't read users: %v", err)
	}
	log.Infof("vacancy backend: %s, registered users: %d", cfg.Store.VacancyBackend, len(all))

	bus := EventBus.New()
	err = bus.Subscribe(events.VacancyExpiredTopic, func(event events.VacancyExpired) {
		log.Infof("vacancy %d %q expired", event.Vacancy.ID, event.Vacancy.Title)
	})
	if err != nil {
		log.Fatalf("can't subscribe to %s: %v", events.VacancyExpiredTopic, err)
	}

	cleaner, err := services.NewVacanciesCleaner(vacancies, bus, cfg.Store.VacancyExpirationInDays)
	if err != nil {
		log.Fatalf("can't create cleaner: %v", err)
	}
	cleaner.Start()

	<-ctx.Done()

	log.Info("Shutting down services...")
	cleaner.Stop()
	log.Info("Services stopped.")
}
