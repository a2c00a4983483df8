package validation

import (
	"strconv"

	"github.com/elevita-health/elevita-backend/internal/types"
)

func Registration(user *types.User) error {
	fe := FieldErrors{}
	fe.require("email", user.Email)
	fe.require("password", user.Password)
	fe.require("first_name", user.FirstName)
	fe.require("last_name", user.LastName)
	return fe.err()
}

func Login(email, password string) error {
	fe := FieldErrors{}
	fe.require("email", email)
	fe.require("password", password)
	return fe.err()
}

func Medication(m *types.Medication) error {
	fe := FieldErrors{}
	fe.require("name", m.Name)
	fe.require("dosage", m.Dosage)
	fe.require("frequency", m.Frequency)
	fe.requireTime("start_date", m.StartDate)
	return fe.err()
}

func MedicationLog(l *types.MedicationLog) error {
	fe := FieldErrors{}
	fe.requireTime("taken_at", l.TakenAt)
	return fe.err()
}

func Symptom(s *types.Symptom) error {
	fe := FieldErrors{}
	fe.require("name", s.Name)
	fe.requireTime("occurred_at", s.OccurredAt)
	severity(fe, s.Severity)
	return fe.err()
}

// Severity checks a patch value on its own; creates go through Symptom.
func Severity(value int) error {
	fe := FieldErrors{}
	severity(fe, value)
	return fe.err()
}

func severity(fe FieldErrors, value int) {
	if value < types.SeverityMin || value > types.SeverityMax {
		fe["severity"] = "must be between " + strconv.Itoa(types.SeverityMin) +
			" and " + strconv.Itoa(types.SeverityMax)
	}
}

func Appointment(a *types.Appointment) error {
	fe := FieldErrors{}
	fe.require("title", a.Title)
	fe.require("provider", a.Provider)
	fe.requireTime("appointment_date", a.AppointmentDate)
	fe.oneOf("status", a.Status,
		types.AppointmentScheduled, types.AppointmentCompleted, types.AppointmentCancelled)
	return fe.err()
}

// AppointmentStatus checks a patch value on its own.
func AppointmentStatus(status string) error {
	fe := FieldErrors{}
	fe.oneOf("status", status,
		types.AppointmentScheduled, types.AppointmentCompleted, types.AppointmentCancelled)
	return fe.err()
}

func HealthMetric(m *types.HealthMetric) error {
	fe := FieldErrors{}
	fe.require("type", m.Type)
	fe.require("value", m.Value)
	fe.requireTime("measured_at", m.MeasuredAt)
	return fe.err()
}

func Reminder(r *types.Reminder) error {
	fe := FieldErrors{}
	fe.require("type", r.Type)
	fe.require("title", r.Title)
	fe.requireTime("scheduled_for", r.ScheduledFor)
	return fe.err()
}

func Notification(n *types.Notification) error {
	fe := FieldErrors{}
	fe.require("title", n.Title)
	fe.require("message", n.Message)
	fe.oneOf("type", n.Type,
		types.NotificationMedicationReminder,
		types.NotificationAppointmentReminder,
		types.NotificationHealthAlert,
		types.NotificationAIInsight,
		types.NotificationWeeklyReport,
		types.NotificationEmergencyAlert)
	if n.Type == "" {
		fe["type"] = "is required"
	}
	return fe.err()
}

func Transcription(t *types.Transcription) error {
	fe := FieldErrors{}
	fe.require("title", t.Title)
	return fe.err()
}
