package repos

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
)

// testDB opens the database named by TEST_POSTGRES_DSN, migrates it, and
// hands each test a transaction that is rolled back on cleanup.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		t.Fatalf("enable uuid-ossp: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.Medication{},
		&types.MedicationLog{},
		&types.Symptom{},
		&types.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func seedPGUser(t *testing.T, db *gorm.DB, email string) *types.User {
	t.Helper()
	log := logger.NewNop()
	user, err := NewUserRepo(db, log).Create(context.Background(), &types.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestPGMedicationOwnerScoping(t *testing.T) {
	db := testDB(t)
	log := logger.NewNop()
	repo := NewMedicationRepo(db, log)
	ctx := context.Background()

	owner := seedPGUser(t, db, "owner@example.com")
	other := seedPGUser(t, db, "other@example.com")

	med, err := repo.Create(ctx, &types.Medication{
		UserID:    owner.ID,
		Name:      "Lisinopril",
		Dosage:    "10mg",
		Frequency: "daily",
		StartDate: time.Now(),
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Update(ctx, med.ID, other.ID, map[string]any{"dosage": "20mg"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign update, got %v", err)
	}
	if err := repo.Delete(ctx, med.ID, other.ID); err != nil {
		t.Fatalf("foreign delete must be a silent no-op, got %v", err)
	}

	rows, err := repo.GetByUserID(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected row to survive foreign delete, got %d rows", len(rows))
	}
}

func TestPGSymptomListOrdering(t *testing.T) {
	db := testDB(t)
	log := logger.NewNop()
	repo := NewSymptomRepo(db, log)
	ctx := context.Background()

	user := seedPGUser(t, db, "pat@example.com")
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"oldest", "middle", "newest"} {
		if _, err := repo.Create(ctx, &types.Symptom{
			UserID:     user.ID,
			Name:       name,
			Severity:   3,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	rows, err := repo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 3 || rows[0].Name != "newest" || rows[2].Name != "oldest" {
		t.Fatalf("expected newest-first ordering, got %+v", rows)
	}
}

func TestPGScheduledNotificationWindow(t *testing.T) {
	db := testDB(t)
	log := logger.NewNop()
	repo := NewNotificationRepo(db, log)
	ctx := context.Background()

	user := seedPGUser(t, db, "pat@example.com")
	due := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	for _, at := range []time.Time{due, future} {
		scheduled := at
		if _, err := repo.Create(ctx, &types.Notification{
			UserID:       user.ID,
			Type:         types.NotificationMedicationReminder,
			Title:        "Take Lisinopril",
			Message:      "10mg",
			ScheduledFor: &scheduled,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := repo.GetScheduledUnread(ctx, time.Now())
	if err != nil {
		t.Fatalf("scheduled unread: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the due row, got %d", len(rows))
	}
	if rows[0].ScheduledFor == nil || rows[0].ScheduledFor.After(time.Now()) {
		t.Fatal("returned row must be due")
	}

	if err := repo.MarkRead(ctx, rows[0].ID, user.ID, time.Now()); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	rows, err = repo.GetScheduledUnread(ctx, time.Now())
	if err != nil {
		t.Fatalf("scheduled unread: %v", err)
	}
	if len(rows) != 0 {
		t.Fatal("read rows must drop out of the sweep")
	}
}
