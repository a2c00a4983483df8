package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

type GenerateReportInput struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	ReportType  string    `json:"report_type"`
}

type ReportService interface {
	ListReports(ctx context.Context, userID uuid.UUID) ([]*types.HealthReport, error)
	// GenerateReport builds a provider-handoff summary through the model
	// and persists it as an immutable HealthReport snapshot.
	GenerateReport(ctx context.Context, userID uuid.UUID, input *GenerateReportInput) (*types.HealthReport, error)
}

type reportService struct {
	log             *logger.Logger
	aiClient        AIClient
	reportRepo      repos.HealthReportRepo
	symptomRepo     repos.SymptomRepo
	medicationRepo  repos.MedicationRepo
	logRepo         repos.MedicationLogRepo
	appointmentRepo repos.AppointmentRepo
	metricRepo      repos.HealthMetricRepo
}

func NewReportService(
	log *logger.Logger,
	aiClient AIClient,
	reportRepo repos.HealthReportRepo,
	symptomRepo repos.SymptomRepo,
	medicationRepo repos.MedicationRepo,
	logRepo repos.MedicationLogRepo,
	appointmentRepo repos.AppointmentRepo,
	metricRepo repos.HealthMetricRepo,
) ReportService {
	return &reportService{
		log:             log.With("service", "ReportService"),
		aiClient:        aiClient,
		reportRepo:      reportRepo,
		symptomRepo:     symptomRepo,
		medicationRepo:  medicationRepo,
		logRepo:         logRepo,
		appointmentRepo: appointmentRepo,
		metricRepo:      metricRepo,
	}
}

func (rs *reportService) ListReports(ctx context.Context, userID uuid.UUID) ([]*types.HealthReport, error) {
	return rs.reportRepo.GetByUserID(ctx, userID)
}

const summarySystemPrompt = "You are a medical documentation assistant that creates " +
	"professional summaries for healthcare providers."

const summaryUserPromptFmt = `Generate a professional healthcare provider summary based on the following patient data.
This summary will be shared with healthcare providers to facilitate continuity of care.

Patient Health Data:
%s

Please create a concise, professional summary that includes:
- Current medication adherence patterns
- Recent symptom trends and severity
- Notable health events or changes
- Patient-reported outcomes and observations

Format as a clear, clinical summary suitable for provider handoff.
Focus on factual observations without making diagnostic conclusions.`

func (rs *reportService) GenerateReport(ctx context.Context, userID uuid.UUID, input *GenerateReportInput) (*types.HealthReport, error) {
	fe := validation.FieldErrors{}
	if input.PeriodStart.IsZero() {
		fe["period_start"] = "is required"
	}
	if input.PeriodEnd.IsZero() {
		fe["period_end"] = "is required"
	}
	if len(fe) == 0 && input.PeriodEnd.Before(input.PeriodStart) {
		fe["period_end"] = "must not be before period_start"
	}
	if len(fe) > 0 {
		return nil, fe
	}
	if input.ReportType == "" {
		input.ReportType = "provider_summary"
	}

	data, err := gatherHealthData(ctx, userID, rs.symptomRepo, rs.medicationRepo, rs.logRepo, rs.appointmentRepo, rs.metricRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to gather health data: %w", err)
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}

	summary, err := rs.aiClient.GenerateText(ctx, summarySystemPrompt, fmt.Sprintf(summaryUserPromptFmt, string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate provider summary: %w", err)
	}

	content, err := json.Marshal(map[string]any{
		"summary": summary,
		"data":    data,
	})
	if err != nil {
		return nil, err
	}

	report := &types.HealthReport{
		UserID:      userID,
		Title:       fmt.Sprintf("Provider Summary %s to %s", input.PeriodStart.Format(validation.DayFormat), input.PeriodEnd.Format(validation.DayFormat)),
		Content:     datatypes.JSON(content),
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		ReportType:  input.ReportType,
	}
	return rs.reportRepo.Create(ctx, report)
}
