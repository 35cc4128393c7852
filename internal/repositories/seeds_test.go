package repositories

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func Test_SeedVacancies(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	vacancies := seedVacancies(now)

	assert.Len(t, vacancies, SeedCount)
	assert.Equal(t, "Intern Java Developer", vacancies[0].Title)
	assert.Equal(t, "description6", vacancies[SeedCount-1].Description)
	for _, vacancy := range vacancies {
		assert.Zero(t, vacancy.ID)
		assert.Zero(t, vacancy.FileID)
		assert.True(t, vacancy.Visible)
		assert.Equal(t, now, vacancy.CreationDate)
	}
}
