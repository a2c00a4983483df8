package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/repos"
	"github.com/elevita-health/elevita-backend/internal/types"
	"github.com/elevita-health/elevita-backend/internal/validation"
)

// healthInsightData is the snapshot handed to the language model for
// insight and summary generation.
type healthInsightData struct {
	Symptoms []struct {
		Name     string    `json:"name"`
		Severity int       `json:"severity"`
		Date     time.Time `json:"date"`
		Notes    string    `json:"notes,omitempty"`
	} `json:"symptoms"`
	Medications []struct {
		Name      string    `json:"name"`
		Adherence int       `json:"adherence"`
		LastTaken time.Time `json:"lastTaken"`
	} `json:"medications"`
	Appointments []struct {
		Title   string    `json:"title"`
		Date    time.Time `json:"date"`
		Outcome string    `json:"outcome,omitempty"`
	} `json:"appointments"`
	Metrics []struct {
		Type  string    `json:"type"`
		Value string    `json:"value"`
		Date  time.Time `json:"date"`
	} `json:"metrics"`
}

// TermTranslation is a clinical term rendered in plain language.
type TermTranslation struct {
	PlainLanguage string `json:"plain_language"`
	Explanation   string `json:"explanation"`
}

type InsightService interface {
	ListInsights(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error)
	// GenerateInsights snapshots recent health data, asks the model for
	// 3-4 insights and persists each one.
	GenerateInsights(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error)
	MarkInsightRead(ctx context.Context, insightID, userID uuid.UUID) error
	TranslateTerm(ctx context.Context, term string) (*TermTranslation, error)
}

type insightService struct {
	log             *logger.Logger
	aiClient        AIClient
	insightRepo     repos.AIInsightRepo
	symptomRepo     repos.SymptomRepo
	medicationRepo  repos.MedicationRepo
	logRepo         repos.MedicationLogRepo
	appointmentRepo repos.AppointmentRepo
	metricRepo      repos.HealthMetricRepo
	notifications   NotificationService
}

func NewInsightService(
	log *logger.Logger,
	aiClient AIClient,
	insightRepo repos.AIInsightRepo,
	symptomRepo repos.SymptomRepo,
	medicationRepo repos.MedicationRepo,
	logRepo repos.MedicationLogRepo,
	appointmentRepo repos.AppointmentRepo,
	metricRepo repos.HealthMetricRepo,
	notifications NotificationService,
) InsightService {
	return &insightService{
		log:             log.With("service", "InsightService"),
		aiClient:        aiClient,
		insightRepo:     insightRepo,
		symptomRepo:     symptomRepo,
		medicationRepo:  medicationRepo,
		logRepo:         logRepo,
		appointmentRepo: appointmentRepo,
		metricRepo:      metricRepo,
		notifications:   notifications,
	}
}

func (is *insightService) ListInsights(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error) {
	return is.insightRepo.GetByUserID(ctx, userID)
}

const insightSystemPrompt = "You are a compassionate healthcare AI that helps patients " +
	"understand their health data without providing medical advice."

const insightUserPromptFmt = `You are a healthcare AI assistant that helps patients understand patterns in their health data.
Analyze the following health information and provide supportive, empathetic insights that help the patient understand their health journey.

IMPORTANT GUIDELINES:
- NEVER provide medical diagnosis, treatment recommendations, or triage decisions
- Focus on patterns, observations, and supportive communication
- Use empathetic, patient-first language
- Suggest discussing findings with healthcare providers
- Highlight positive patterns when possible
- Be gentle with concerns and observations

Health Data:
%s

Please provide insights in JSON format with the following structure:
{
  "insights": [
    {
      "type": "pattern|observation|recommendation",
      "title": "Brief title",
      "content": "Detailed, empathetic explanation",
      "confidence": 1-100
    }
  ]
}

Limit to 3-4 most relevant insights.`

func (is *insightService) GenerateInsights(ctx context.Context, userID uuid.UUID) ([]*types.AIInsight, error) {
	data, err := gatherHealthData(ctx, userID, is.symptomRepo, is.medicationRepo, is.logRepo, is.appointmentRepo, is.metricRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to gather health data: %w", err)
	}
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}

	obj, err := is.aiClient.GenerateJSON(ctx, insightSystemPrompt, fmt.Sprintf(insightUserPromptFmt, string(encoded)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate health insights: %w", err)
	}

	rawInsights, _ := obj["insights"].([]any)
	var created []*types.AIInsight
	for _, raw := range rawInsights {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		insight := &types.AIInsight{
			UserID:     userID,
			Type:       insightType(item),
			Title:      stringField(item, "title"),
			Content:    stringField(item, "content"),
			Confidence: confidenceField(item),
		}
		if insight.Title == "" || insight.Content == "" {
			continue
		}
		row, cErr := is.insightRepo.Create(ctx, insight)
		if cErr != nil {
			return nil, cErr
		}
		created = append(created, row)
	}

	if len(created) > 0 {
		_, _, nErr := is.notifications.CreateNotification(ctx, userID, &types.Notification{
			Type:         types.NotificationAIInsight,
			Title:        "New health insights available",
			Message:      fmt.Sprintf("%d new insights were generated from your recent health data.", len(created)),
			IsActionable: true,
			ActionURL:    "/insights",
		})
		if nErr != nil {
			is.log.Warn("Failed to create insight notification", "user_id", userID, "error", nErr)
		}
	}
	return created, nil
}

func (is *insightService) MarkInsightRead(ctx context.Context, insightID, userID uuid.UUID) error {
	return is.insightRepo.MarkRead(ctx, insightID, userID)
}

const translateSystemPrompt = "You are a medical translator that converts complex medical " +
	"terms into clear, understandable language for patients."

const translateUserPromptFmt = `Translate the following medical/clinical term into plain, understandable language:

Term: "%s"

Please provide a response in JSON format:
{
  "plainLanguage": "Simple term or phrase",
  "explanation": "Clear, friendly explanation in 1-2 sentences"
}

Make the explanation accessible to someone without medical background, using everyday language.`

func (is *insightService) TranslateTerm(ctx context.Context, term string) (*TermTranslation, error) {
	if term == "" {
		return nil, validation.FieldErrors{"term": "is required"}
	}
	obj, err := is.aiClient.GenerateJSON(ctx, translateSystemPrompt, fmt.Sprintf(translateUserPromptFmt, term))
	if err != nil {
		return nil, fmt.Errorf("failed to translate clinical term: %w", err)
	}
	out := &TermTranslation{
		PlainLanguage: stringField(obj, "plainLanguage"),
		Explanation:   stringField(obj, "explanation"),
	}
	if out.PlainLanguage == "" {
		out.PlainLanguage = "Unable to translate"
	}
	if out.Explanation == "" {
		out.Explanation = "Please consult with your healthcare provider for clarification."
	}
	return out, nil
}

// gatherHealthData assembles the recent-activity snapshot: 10 symptoms,
// active medications with 7-day adherence, 5 appointments, 10 metrics.
func gatherHealthData(
	ctx context.Context,
	userID uuid.UUID,
	symptomRepo repos.SymptomRepo,
	medicationRepo repos.MedicationRepo,
	logRepo repos.MedicationLogRepo,
	appointmentRepo repos.AppointmentRepo,
	metricRepo repos.HealthMetricRepo,
) (*healthInsightData, error) {
	data := &healthInsightData{}

	symptoms, err := symptomRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(symptoms) > 10 {
		symptoms = symptoms[:10]
	}
	for _, s := range symptoms {
		data.Symptoms = append(data.Symptoms, struct {
			Name     string    `json:"name"`
			Severity int       `json:"severity"`
			Date     time.Time `json:"date"`
			Notes    string    `json:"notes,omitempty"`
		}{Name: s.Name, Severity: s.Severity, Date: s.OccurredAt, Notes: s.Notes})
	}

	medications, err := medicationRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().AddDate(0, 0, -7)
	for _, m := range medications {
		logs, lErr := logRepo.GetSince(ctx, userID, m.ID, cutoff)
		if lErr != nil {
			return nil, lErr
		}
		taken := 0
		lastTaken := time.Now()
		for i, l := range logs {
			if !l.Missed {
				taken++
			}
			if i == 0 {
				lastTaken = l.TakenAt
			}
		}
		data.Medications = append(data.Medications, struct {
			Name      string    `json:"name"`
			Adherence int       `json:"adherence"`
			LastTaken time.Time `json:"lastTaken"`
		}{Name: m.Name, Adherence: int(float64(taken)/7*100 + 0.5), LastTaken: lastTaken})
	}

	appointments, err := appointmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(appointments) > 5 {
		appointments = appointments[:5]
	}
	for _, a := range appointments {
		data.Appointments = append(data.Appointments, struct {
			Title   string    `json:"title"`
			Date    time.Time `json:"date"`
			Outcome string    `json:"outcome,omitempty"`
		}{Title: a.Title, Date: a.AppointmentDate, Outcome: a.Outcome})
	}

	metrics, err := metricRepo.GetByUserID(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	if len(metrics) > 10 {
		metrics = metrics[:10]
	}
	for _, m := range metrics {
		data.Metrics = append(data.Metrics, struct {
			Type  string    `json:"type"`
			Value string    `json:"value"`
			Date  time.Time `json:"date"`
		}{Type: m.Type, Value: m.Value, Date: m.MeasuredAt})
	}

	return data, nil
}

func insightType(item map[string]any) string {
	switch stringField(item, "type") {
	case types.InsightPattern:
		return types.InsightPattern
	case types.InsightRecommendation:
		return types.InsightRecommendation
	default:
		return types.InsightObservation
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func confidenceField(item map[string]any) int {
	f, ok := item["confidence"].(float64)
	if !ok {
		return 50
	}
	c := int(f)
	if c < 1 {
		c = 1
	}
	if c > 100 {
		c = 100
	}
	return c
}
