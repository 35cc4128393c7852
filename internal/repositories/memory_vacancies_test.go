package repositories

import (
	"context"
	"github.com/maxaizer/dreamjob-store/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

var ctx = context.Background()

func newTestVacancy(title string, cityID int) entities.Vacancy {
	return entities.NewVacancy(title, "description", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), true, cityID, 0)
}

func Test_MemoryVacancies_SeedsComeFirst(t *testing.T) {
	repo := NewMemoryVacancies()

	saved, err := repo.Save(ctx, newTestVacancy("Intern Java Developer", 1))
	require.NoError(t, err)
	assert.Equal(t, 7, saved.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
	assert.Equal(t, "Intern Java Developer", all[0].Title)
	assert.Equal(t, 1, all[0].ID)
}

func Test_MemoryVacancies_SaveIgnoresCallerID(t *testing.T) {
	repo := newEmptyMemoryVacancies()

	saved, err := repo.Save(ctx, newTestVacancy("Go Developer", 1).WithID(100))
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ID)

	found, err := repo.FindByID(ctx, 100)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func Test_MemoryVacancies_IDsAreNotReusedAfterDelete(t *testing.T) {
	repo := newEmptyMemoryVacancies()

	var lastID int
	for i := 0; i < 5; i++ {
		saved, _ := repo.Save(ctx, newTestVacancy("Go Developer", 1))
		assert.Greater(t, saved.ID, lastID)
		lastID = saved.ID

		deleted, err := repo.DeleteByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
	}

	saved, _ := repo.Save(ctx, newTestVacancy("Go Developer", 1))
	assert.Equal(t, 6, saved.ID)
}

func Test_MemoryVacancies_FindByIDReturnsSavedRecord(t *testing.T) {
	repo := newEmptyMemoryVacancies()
	vacancy := newTestVacancy("Go Developer", 3)
	vacancy.FileID = 12

	saved, _ := repo.Save(ctx, vacancy)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved, *found)
	assert.Equal(t, vacancy.WithID(saved.ID), *found)
}

func Test_MemoryVacancies_FindByIDMissing(t *testing.T) {
	repo := NewMemoryVacancies()

	found, err := repo.FindByID(ctx, 42)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func Test_MemoryVacancies_UpdateReplacesAllButID(t *testing.T) {
	repo := newEmptyMemoryVacancies()
	saved, _ := repo.Save(ctx, newTestVacancy("Go Developer", 1))

	changed := entities.NewVacancy("Senior Go Developer", "new description",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), false, 2, 5).WithID(saved.ID)

	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	assert.True(t, updated)

	found, _ := repo.FindByID(ctx, saved.ID)
	require.NotNil(t, found)
	assert.Equal(t, changed, *found)
}

func Test_MemoryVacancies_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo := NewMemoryVacancies()
	before, _ := repo.FindAll(ctx)

	updated, err := repo.Update(ctx, newTestVacancy("Go Developer", 1).WithID(99))
	require.NoError(t, err)
	assert.False(t, updated)

	after, _ := repo.FindAll(ctx)
	assert.Equal(t, before, after)
	found, _ := repo.FindByID(ctx, 99)
	assert.Nil(t, found)
}

func Test_MemoryVacancies_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryVacancies()

	deleted, err := repo.DeleteByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, 3)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, SeedCount-1)
}

func Test_MemoryVacancies_ReturnedRecordsAreCopies(t *testing.T) {
	repo := newEmptyMemoryVacancies()
	saved, _ := repo.Save(ctx, newTestVacancy("Go Developer", 1))

	found, _ := repo.FindByID(ctx, saved.ID)
	found.Title = "changed outside"
	all, _ := repo.FindAll(ctx)
	all[0].Title = "changed outside"

	again, _ := repo.FindByID(ctx, saved.ID)
	assert.Equal(t, "Go Developer", again.Title)
}

func Test_MemoryVacancies_ConcurrentSavesGetUniqueIDs(t *testing.T) {
	repo := NewMemoryVacancies()
	const workers, perWorker = 16, 50

	ids := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				saved, _ := repo.Save(ctx, newTestVacancy("Go Developer", 1))
				ids <- saved.ID
				_, _ = repo.FindAll(ctx)
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Greater(t, id, SeedCount)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)

	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, SeedCount+workers*perWorker)
}
