package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/elevita-health/elevita-backend/internal/apperr"
	"github.com/elevita-health/elevita-backend/internal/types"
)

func TestFieldErrorsUnwrap(t *testing.T) {
	err := Symptom(&types.Symptom{})
	if err == nil {
		t.Fatal("expected validation error for empty symptom")
	}
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("expected wrap of ErrInvalidArgument, got %v", err)
	}
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if _, ok := fe["name"]; !ok {
		t.Fatalf("expected name error, got %v", fe)
	}
	if _, ok := fe["occurred_at"]; !ok {
		t.Fatalf("expected occurred_at error, got %v", fe)
	}
}

func TestSymptomSeverityBounds(t *testing.T) {
	base := types.Symptom{Name: "Headache", OccurredAt: time.Now()}

	for _, severity := range []int{1, 5, 10} {
		s := base
		s.Severity = severity
		if err := Symptom(&s); err != nil {
			t.Fatalf("severity %d should be valid, got %v", severity, err)
		}
	}
	for _, severity := range []int{0, -1, 11} {
		s := base
		s.Severity = severity
		err := Symptom(&s)
		if err == nil {
			t.Fatalf("severity %d should be rejected", severity)
		}
		var fe FieldErrors
		if !errors.As(err, &fe) {
			t.Fatalf("expected FieldErrors, got %T", err)
		}
		if _, ok := fe["severity"]; !ok {
			t.Fatalf("expected severity error, got %v", fe)
		}
	}
}

func TestAppointmentStatusEnum(t *testing.T) {
	a := types.Appointment{
		Title:           "Follow-up",
		Provider:        "Dr. Chen",
		AppointmentDate: time.Now(),
		Status:          "rescheduled",
	}
	err := Appointment(&a)
	if err == nil {
		t.Fatal("expected rejection of unknown status")
	}
	a.Status = types.AppointmentScheduled
	if err := Appointment(&a); err != nil {
		t.Fatalf("scheduled should be valid, got %v", err)
	}
}

func TestParseDay(t *testing.T) {
	start, end, err := ParseDay("2025-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Fatalf("expected midnight start, got %v", start)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Fatalf("expected 24h window, got %v", got)
	}

	if _, _, err := ParseDay("14-03-2025"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if _, _, err := ParseDay(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestNotificationTypeEnum(t *testing.T) {
	n := types.Notification{Title: "t", Message: "m", Type: "carrier_pigeon"}
	if err := Notification(&n); err == nil {
		t.Fatal("expected rejection of unknown notification type")
	}
	n.Type = types.NotificationHealthAlert
	if err := Notification(&n); err != nil {
		t.Fatalf("health_alert should be valid, got %v", err)
	}
}
