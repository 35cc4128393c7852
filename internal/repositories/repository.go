// Package repositories implements persistence for vacancies and user accounts.
//
// Expected outcomes are never errors: a missing record is a nil result, a
// declined registration (email taken) is a nil user, and update/delete report
// whether their target existed. A non-nil error always means the storage
// itself failed and matches ErrStorage, except for input rejected by
// validation, which matches ErrInvalidEntity.
package repositories

import (
	"context"
	"github.com/maxaizer/dreamjob-store/internal/entities"
)

type VacancyRepository interface {
	// Save ignores vacancy.ID and stores the vacancy under a freshly generated id.
	Save(ctx context.Context, vacancy entities.Vacancy) (entities.Vacancy, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
	// Update replaces every field but the id of the vacancy with the same id.
	// It never creates a record.
	Update(ctx context.Context, vacancy entities.Vacancy) (bool, error)
	FindByID(ctx context.Context, id int) (*entities.Vacancy, error)
	FindAll(ctx context.Context) ([]entities.Vacancy, error)
}

type UserRepository interface {
	// Save returns nil without an error when the email is already registered.
	Save(ctx context.Context, user entities.User) (*entities.User, error)
	Delete(ctx context.Context, email, password string) (bool, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*entities.User, error)
	FindAll(ctx context.Context) ([]entities.User, error)
}

var (
	_ VacancyRepository = (*MemoryVacancies)(nil)
	_ VacancyRepository = (*Vacancies)(nil)
	_ UserRepository    = (*Users)(nil)
)
