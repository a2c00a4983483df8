package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

// maxAudioUploadBytes caps a single recording upload.
const maxAudioUploadBytes = 50 << 20

type TranscriptionHandler struct {
	log                  *logger.Logger
	transcriptionService services.TranscriptionService
}

func NewTranscriptionHandler(log *logger.Logger, transcriptionService services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		log:                  log.With("handler", "TranscriptionHandler"),
		transcriptionService: transcriptionService,
	}
}

func (th *TranscriptionHandler) List(c *gin.Context) {
	transcriptions, err := th.transcriptionService.ListTranscriptions(c.Request.Context(), currentUserID(c), c.Query("date"))
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusOK, transcriptions)
}

func (th *TranscriptionHandler) Get(c *gin.Context) {
	transcriptionID, ok := pathID(c)
	if !ok {
		return
	}
	transcription, err := th.transcriptionService.GetTranscription(c.Request.Context(), transcriptionID, currentUserID(c))
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusOK, transcription)
}

// Create accepts a multipart form: an "audio" file plus title, description
// and optional patient_id / appointment_id fields.
func (th *TranscriptionHandler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioUploadBytes)

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "audio file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	defer file.Close()
	audio, err := io.ReadAll(file)
	if err != nil {
		respondError(c, th.log, err)
		return
	}

	input := services.CreateTranscriptionInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Audio:       audio,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}
	if raw := formValue(c, "patient_id", "patientId"); raw != "" {
		patientID, pErr := uuid.Parse(raw)
		if pErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid patient_id"})
			return
		}
		input.PatientID = &patientID
	}
	if raw := formValue(c, "appointment_id", "appointmentId"); raw != "" {
		appointmentID, aErr := uuid.Parse(raw)
		if aErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid appointment_id"})
			return
		}
		input.AppointmentID = &appointmentID
	}

	created, err := th.transcriptionService.CreateTranscription(c.Request.Context(), currentUserID(c), &input)
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (th *TranscriptionHandler) Update(c *gin.Context) {
	transcriptionID, ok := pathID(c)
	if !ok {
		return
	}
	var input services.TranscriptionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	updated, err := th.transcriptionService.UpdateTranscription(c.Request.Context(), transcriptionID, currentUserID(c), &input)
	if err != nil {
		respondError(c, th.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (th *TranscriptionHandler) Delete(c *gin.Context) {
	transcriptionID, ok := pathID(c)
	if !ok {
		return
	}
	if err := th.transcriptionService.DeleteTranscription(c.Request.Context(), transcriptionID, currentUserID(c)); err != nil {
		respondError(c, th.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func formValue(c *gin.Context, names ...string) string {
	for _, name := range names {
		if v := c.PostForm(name); v != "" {
			return v
		}
	}
	return ""
}
