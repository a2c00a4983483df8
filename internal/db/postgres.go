package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "elevita", log)
	log.Debug("Environment variables loaded")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
	}
	log.Info("uuid-ossp extension enabled")

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.HealthProfile{},
		&types.Medication{},
		&types.MedicationLog{},
		&types.Symptom{},
		&types.Appointment{},
		&types.HealthMetric{},
		&types.AIInsight{},
		&types.Reminder{},
		&types.HealthReport{},
		&types.Transcription{},
		&types.Notification{},
		&types.NotificationSettings{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	// Every child row cascade-deletes with the owning user.
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	childTables := []string{
		"user_token",
		"health_profile",
		"medication",
		"medication_log",
		"symptom",
		"appointment",
		"health_metric",
		"ai_insight",
		"reminder",
		"health_report",
		"transcription",
		"notification",
		"notification_settings",
	}
	for _, table := range childTables {
		stmt := fmt.Sprintf(`
			ALTER TABLE %q
			DROP CONSTRAINT IF EXISTS "fk_%s_user_id";
		`, table, table)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("Failed to drop fk_%s_user_id: %w", table, err)
		}
		stmt = fmt.Sprintf(`
			ALTER TABLE %q
			ADD CONSTRAINT "fk_%s_user_id"
			FOREIGN KEY ("user_id")
			REFERENCES "user"("id")
			ON DELETE CASCADE;
		`, table, table)
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("Failed to add fk_%s_user_id: %w", table, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
