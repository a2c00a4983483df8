package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos/memstore"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

func newReportFixture(t *testing.T, ai AIClient) ReportService {
	t.Helper()
	store := memstore.New()
	return NewReportService(
		logger.NewNop(),
		ai,
		memstore.NewHealthReportRepo(store),
		memstore.NewSymptomRepo(store),
		memstore.NewMedicationRepo(store),
		memstore.NewMedicationLogRepo(store),
		memstore.NewAppointmentRepo(store),
		memstore.NewHealthMetricRepo(store),
	)
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	ai := &fakeAIClient{textResp: "Patient is stable. Adherence is strong."}
	svc := newReportFixture(t, ai)
	userID := uuid.New()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	report, err := svc.GenerateReport(ctx, userID, &GenerateReportInput{
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		t.Fatalf("generate report: %v", err)
	}
	if report.Title != "Provider Summary 2025-03-01 to 2025-03-31" {
		t.Fatalf("unexpected title: %q", report.Title)
	}
	if report.ReportType != "provider_summary" {
		t.Fatalf("expected default report type, got %q", report.ReportType)
	}

	var content struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(report.Content, &content); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if content.Summary != ai.textResp {
		t.Fatalf("expected generated summary in content, got %q", content.Summary)
	}

	reports, err := svc.ListReports(ctx, userID)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 stored report, got %d", len(reports))
	}
}

func TestGenerateReportValidation(t *testing.T) {
	svc := newReportFixture(t, &fakeAIClient{textResp: "x"})
	ctx := context.Background()

	_, err := svc.GenerateReport(ctx, uuid.New(), &GenerateReportInput{})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors for missing period, got %v", err)
	}

	start := time.Now()
	_, err = svc.GenerateReport(ctx, uuid.New(), &GenerateReportInput{
		PeriodStart: start,
		PeriodEnd:   start.Add(-time.Hour),
	})
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors for inverted period, got %v", err)
	}
	if _, ok := fe["period_end"]; !ok {
		t.Fatalf("expected period_end error, got %v", fe)
	}
}

func TestGenerateReportUpstreamFailure(t *testing.T) {
	svc := newReportFixture(t, &fakeAIClient{textErr: errors.New("timeout")})
	_, err := svc.GenerateReport(context.Background(), uuid.New(), &GenerateReportInput{
		PeriodStart: time.Now().Add(-time.Hour),
		PeriodEnd:   time.Now(),
	})
	if err == nil {
		t.Fatal("expected upstream error to propagate")
	}
}
