package repositories

import (
	"context"
	"errors"
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/maxaizer/dreamjob-store/internal/metrics"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"time"
)

const vacancyEntity = "vacancy"

// Vacancies is the durable vacancy store. Ids come from the table's
// autoincrement sequence and are not reused after deletion.
type Vacancies struct {
	db *gorm.DB
}

func NewVacanciesRepository(db *gorm.DB) *Vacancies {
	return &Vacancies{db: db}
}

// SeedIfEmpty stores the example vacancies when the table has no rows yet.
func (repo *Vacancies) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&entities.Vacancy{}).Count(&count).Error; err != nil {
		return storageFault(vacancyEntity, "count", err)
	}
	if count > 0 {
		return nil
	}

	for _, vacancy := range seedVacancies(time.Now()) {
		if _, err := repo.Save(ctx, vacancy); err != nil {
			return err
		}
	}
	log.Infof("seeded %d example vacancies", SeedCount)
	return nil
}

func (repo *Vacancies) Save(ctx context.Context, vacancy entities.Vacancy) (entities.Vacancy, error) {
	defer observe(vacancyEntity, "save", time.Now())

	vacancy.ID = 0
	if err := repo.db.WithContext(ctx).Create(&vacancy).Error; err != nil {
		return entities.Vacancy{}, storageFault(vacancyEntity, "save", err)
	}
	return vacancy, nil
}

func (repo *Vacancies) DeleteByID(ctx context.Context, id int) (bool, error) {
	defer observe(vacancyEntity, "delete", time.Now())

	res := repo.db.WithContext(ctx).Delete(&entities.Vacancy{}, "id = ?", id)
	if res.Error != nil {
		return false, storageFault(vacancyEntity, "delete", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (repo *Vacancies) Update(ctx context.Context, vacancy entities.Vacancy) (bool, error) {
	defer observe(vacancyEntity, "update", time.Now())

	res := repo.db.WithContext(ctx).Model(&entities.Vacancy{}).Where("id = ?", vacancy.ID).
		Updates(map[string]any{
			"title":         vacancy.Title,
			"description":   vacancy.Description,
			"creation_date": vacancy.CreationDate,
			"visible":       vacancy.Visible,
			"city_id":       vacancy.CityID,
			"file_id":       vacancy.FileID,
		})
	if res.Error != nil {
		return false, storageFault(vacancyEntity, "update", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (repo *Vacancies) FindByID(ctx context.Context, id int) (*entities.Vacancy, error) {
	defer observe(vacancyEntity, "find_by_id", time.Now())

	var vacancy entities.Vacancy
	if err := repo.db.WithContext(ctx).First(&vacancy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageFault(vacancyEntity, "find_by_id", err)
	}
	return &vacancy, nil
}

func (repo *Vacancies) FindAll(ctx context.Context) ([]entities.Vacancy, error) {
	defer observe(vacancyEntity, "find_all", time.Now())

	vacancies := make([]entities.Vacancy, 0)
	if err := repo.db.WithContext(ctx).Order("id").Find(&vacancies).Error; err != nil {
		return nil, storageFault(vacancyEntity, "find_all", err)
	}
	return vacancies, nil
}

func observe(entity, operation string, start time.Time) {
	metrics.OperationDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}
