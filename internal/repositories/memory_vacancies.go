package repositories

import (
	"cmp"
	"context"
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/samber/lo"
	"slices"
	"sync"
	"time"
)

// MemoryVacancies keeps vacancies in process memory. One lock covers both the
// id counter and the map, so an id is generated and occupied in a single step.
// Records are stored by value and replaced as a whole on update.
type MemoryVacancies struct {
	mu        sync.RWMutex
	lastID    int
	vacancies map[int]entities.Vacancy
}

// NewMemoryVacancies returns a store seeded with the example vacancies, which
// take ids 1 through SeedCount.
func NewMemoryVacancies() *MemoryVacancies {
	repo := newEmptyMemoryVacancies()
	for _, vacancy := range seedVacancies(time.Now()) {
		_, _ = repo.Save(context.Background(), vacancy)
	}
	return repo
}

func newEmptyMemoryVacancies() *MemoryVacancies {
	return &MemoryVacancies{vacancies: make(map[int]entities.Vacancy)}
}

func (r *MemoryVacancies) Save(_ context.Context, vacancy entities.Vacancy) (entities.Vacancy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := vacancy.WithID(r.lastID)
	r.vacancies[stored.ID] = stored
	return stored, nil
}

func (r *MemoryVacancies) DeleteByID(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vacancies[id]; !ok {
		return false, nil
	}
	delete(r.vacancies, id)
	return true, nil
}

func (r *MemoryVacancies) Update(_ context.Context, vacancy entities.Vacancy) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.vacancies[vacancy.ID]
	if !ok {
		return false, nil
	}
	r.vacancies[old.ID] = vacancy.WithID(old.ID)
	return true, nil
}

func (r *MemoryVacancies) FindByID(_ context.Context, id int) (*entities.Vacancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vacancy, ok := r.vacancies[id]
	if !ok {
		return nil, nil
	}
	return &vacancy, nil
}

func (r *MemoryVacancies) FindAll(_ context.Context) ([]entities.Vacancy, error) {
	r.mu.RLock()
	vacancies := lo.Values(r.vacancies)
	r.mu.RUnlock()

	slices.SortFunc(vacancies, func(a, b entities.Vacancy) int { return cmp.Compare(a.ID, b.ID) })
	return vacancies, nil
}
