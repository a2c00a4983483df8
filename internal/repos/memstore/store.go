// Package memstore is the process-memory implementation of the repository
// interfaces in internal/repos. It backs development and tests; the
// database-backed implementations are the production path. Both must
// produce the same externally observable behavior.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/types"
)

type Store struct {
	mu sync.RWMutex

	users                map[uuid.UUID]*types.User
	tokens               map[uuid.UUID]*types.UserToken
	profiles             map[uuid.UUID]*types.HealthProfile
	medications          map[uuid.UUID]*types.Medication
	medicationLogs       map[uuid.UUID]*types.MedicationLog
	symptoms             map[uuid.UUID]*types.Symptom
	appointments         map[uuid.UUID]*types.Appointment
	metrics              map[uuid.UUID]*types.HealthMetric
	insights             map[uuid.UUID]*types.AIInsight
	reminders            map[uuid.UUID]*types.Reminder
	reports              map[uuid.UUID]*types.HealthReport
	transcriptions       map[uuid.UUID]*types.Transcription
	notifications        map[uuid.UUID]*types.Notification
	notificationSettings map[uuid.UUID]*types.NotificationSettings
}

func New() *Store {
	return &Store{
		users:                map[uuid.UUID]*types.User{},
		tokens:               map[uuid.UUID]*types.UserToken{},
		profiles:             map[uuid.UUID]*types.HealthProfile{},
		medications:          map[uuid.UUID]*types.Medication{},
		medicationLogs:       map[uuid.UUID]*types.MedicationLog{},
		symptoms:             map[uuid.UUID]*types.Symptom{},
		appointments:         map[uuid.UUID]*types.Appointment{},
		metrics:              map[uuid.UUID]*types.HealthMetric{},
		insights:             map[uuid.UUID]*types.AIInsight{},
		reminders:            map[uuid.UUID]*types.Reminder{},
		reports:              map[uuid.UUID]*types.HealthReport{},
		transcriptions:       map[uuid.UUID]*types.Transcription{},
		notifications:        map[uuid.UUID]*types.Notification{},
		notificationSettings: map[uuid.UUID]*types.NotificationSettings{},
	}
}

// ensureID mirrors the uuid_generate_v4() column default.
func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// ensureTime mirrors the now() column default.
func ensureTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// cascadeDeleteUser drops every child row owned by the user, matching the
// ON DELETE CASCADE constraints of the postgres store. Caller holds s.mu.
func (s *Store) cascadeDeleteUser(userID uuid.UUID) {
	for id, row := range s.tokens {
		if row.UserID == userID {
			delete(s.tokens, id)
		}
	}
	for id, row := range s.profiles {
		if row.UserID == userID {
			delete(s.profiles, id)
		}
	}
	for id, row := range s.medications {
		if row.UserID == userID {
			delete(s.medications, id)
		}
	}
	for id, row := range s.medicationLogs {
		if row.UserID == userID {
			delete(s.medicationLogs, id)
		}
	}
	for id, row := range s.symptoms {
		if row.UserID == userID {
			delete(s.symptoms, id)
		}
	}
	for id, row := range s.appointments {
		if row.UserID == userID {
			delete(s.appointments, id)
		}
	}
	for id, row := range s.metrics {
		if row.UserID == userID {
			delete(s.metrics, id)
		}
	}
	for id, row := range s.insights {
		if row.UserID == userID {
			delete(s.insights, id)
		}
	}
	for id, row := range s.reminders {
		if row.UserID == userID {
			delete(s.reminders, id)
		}
	}
	for id, row := range s.reports {
		if row.UserID == userID {
			delete(s.reports, id)
		}
	}
	for id, row := range s.transcriptions {
		if row.UserID == userID {
			delete(s.transcriptions, id)
		}
	}
	for id, row := range s.notifications {
		if row.UserID == userID {
			delete(s.notifications, id)
		}
	}
	for id, row := range s.notificationSettings {
		if row.UserID == userID {
			delete(s.notificationSettings, id)
		}
	}
}
