package repositories

import (
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/samber/lo"
	"strconv"
	"time"
)

type seedVacancy struct {
	title  string
	cityID int
}

var seeds = [...]seedVacancy{
	{"Intern Java Developer", 1},
	{"Junior Java Developer", 2},
	{"Junior+ Java Developer", 3},
	{"Middle Java Developer", 2},
	{"Middle+ Java Developer", 2},
	{"Senior Java Developer", 2},
}

// SeedCount is the number of example vacancies a fresh store starts with.
const SeedCount = len(seeds)

func seedVacancies(now time.Time) []entities.Vacancy {
	return lo.Map(seeds[:], func(seed seedVacancy, i int) entities.Vacancy {
		return entities.NewVacancy(seed.title, "description"+strconv.Itoa(i+1), now, true, seed.cityID, 0)
	})
}
