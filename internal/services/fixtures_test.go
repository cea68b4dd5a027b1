package services

import (
	"context"
	"testing"
	"time"

	"github.com/MGaul6/SkillExchange/internal/models"
	"github.com/MGaul6/SkillExchange/internal/repository"
)

type fixedJitter int

func (j fixedJitter) Jitter(int) int { return int(j) }

// newTestStore returns a MemoryStore whose clock advances one minute per write.
func newTestStore() *repository.MemoryStore {
	store := repository.NewMemoryStore()
	current := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time {
		current = current.Add(time.Minute)
		return current
	})
	return store
}

func mustCreateUser(t *testing.T, store *repository.MemoryStore, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", PasswordHash: "x"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s): %v", username, err)
	}
	return user
}

func mustAddSkill(t *testing.T, store *repository.MemoryStore, userID int64, name string) *models.Skill {
	t.Helper()
	skill := &models.Skill{UserID: userID, Name: name, Level: models.LevelIntermediate}
	if err := store.CreateSkill(context.Background(), skill); err != nil {
		t.Fatalf("CreateSkill(%s): %v", name, err)
	}
	return skill
}

func mustAddInterest(t *testing.T, store *repository.MemoryStore, userID int64, name string) *models.Interest {
	t.Helper()
	interest := &models.Interest{UserID: userID, Name: name, Level: models.LevelBeginner}
	if err := store.CreateInterest(context.Background(), interest); err != nil {
		t.Fatalf("CreateInterest(%s): %v", name, err)
	}
	return interest
}

func strictPolicy() TransitionPolicy  { return TransitionPolicy{Strict: true} }
func lenientPolicy() TransitionPolicy { return TransitionPolicy{Strict: false} }
