package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthya/internal/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessionRepositoryCRUD(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)}
	repo := newSessionRepository(0, clock.now)

	s := models.NewSession("s1", time.Time{})
	require.NoError(t, repo.Create(&s))
	assert.Equal(t, clock.t, s.CreatedAt)
	assert.ErrorIs(t, repo.Create(&s), ErrSessionExists)

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", found.Profile.Name)

	clock.advance(time.Minute)
	next := found.AddIntake(models.NewIntakeEntry("Kheer (1 bowl)", 220, models.SourceManualEntry, clock.t))
	require.NoError(t, repo.Save(&next))
	assert.Equal(t, clock.t, next.UpdatedAt)

	again, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Len(t, again.Intake, 1)
	assert.Equal(t, 1, repo.Count())

	require.NoError(t, repo.Delete("s1"))
	_, err = repo.FindByID("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete("s1"), ErrSessionNotFound)
}

func TestSessionRepositorySaveUnknown(t *testing.T) {
	repo := NewSessionRepository(0)
	s := models.NewSession("ghost", time.Now())
	assert.ErrorIs(t, repo.Save(&s), ErrSessionNotFound)
}

func TestSessionRepositoryReturnsCopies(t *testing.T) {
	repo := NewSessionRepository(0)
	s := models.NewSession("s1", time.Now()).AddIntake(models.NewIntakeEntry("A", 1, models.SourceManualEntry, time.Now()))
	require.NoError(t, repo.Create(&s))

	s.Intake[0].FoodName = "mutated"
	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	found.Profile.HealthConditions[0] = models.ConditionDiabetes

	again, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Intake[0].FoodName)
	assert.Equal(t, models.ConditionNone, again.Profile.HealthConditions[0])
}

func TestSessionRepositoryExpiresIdleSessions(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)}
	repo := newSessionRepository(time.Hour, clock.now)

	s := models.NewSession("s1", clock.t)
	require.NoError(t, repo.Create(&s))

	clock.advance(59 * time.Minute)
	_, err := repo.FindByID("s1")
	require.NoError(t, err)

	clock.advance(2 * time.Minute)
	_, err = repo.FindByID("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionRepositoryConcurrentAccess(t *testing.T) {
	repo := NewSessionRepository(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := models.NewSession(fmt.Sprintf("s%d", i), time.Now())
			assert.NoError(t, repo.Create(&s))
			_, err := repo.FindByID(s.ID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, repo.Count())
}

func TestSessionRepositoryUpdate(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)}
	repo := newSessionRepository(time.Hour, clock.now)
	s := models.NewSession("s1", clock.t)
	require.NoError(t, repo.Create(&s))

	clock.advance(time.Minute)
	updated, err := repo.Update("s1", func(s *models.Session) error {
		*s = s.AddIntake(models.NewIntakeEntry("Kheer (1 bowl)", 220, models.SourceManualEntry, clock.t))
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, updated.Intake, 1)
	assert.Equal(t, clock.t, updated.UpdatedAt)

	rejected := errors.New("rejected")
	_, err = repo.Update("s1", func(s *models.Session) error {
		*s = s.AddIntake(models.NewIntakeEntry("Sel Roti (1 piece)", 90, models.SourceManualEntry, clock.t))
		return rejected
	})
	assert.ErrorIs(t, err, rejected)

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Len(t, found.Intake, 1, "a failed update stores nothing")

	updated.Intake[0].FoodName = "mutated"
	found, err = repo.FindByID("s1")
	require.NoError(t, err)
	assert.Equal(t, "Kheer (1 bowl)", found.Intake[0].FoodName)

	_, err = repo.Update("ghost", func(*models.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	clock.advance(2 * time.Hour)
	_, err = repo.Update("s1", func(*models.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestSessionRepositoryConcurrentUpdates(t *testing.T) {
	repo := NewSessionRepository(0)
	s := models.NewSession("s1", time.Now())
	require.NoError(t, repo.Create(&s))

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update("s1", func(s *models.Session) error {
				time.Sleep(time.Millisecond)
				*s = s.AddIntake(models.NewIntakeEntry(fmt.Sprintf("food %d", i), 1, models.SourceManualEntry, time.Now()))
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	found, err := repo.FindByID("s1")
	require.NoError(t, err)
	assert.Len(t, found.Intake, writers)
}
