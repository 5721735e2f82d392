package v1

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/narrative"
	advisor_uuid "github.com/raisket/advisor/internal/uuid"
	"github.com/rs/zerolog/log"
)

var (
	generator        narrative.Generator
	narrativeTimeout = 30 * time.Second
)

// Configure sets the narrative generator used by all v1 endpoints. A nil
// generator disables narrative generation, every response then carries
// the fallback text.
func Configure(g narrative.Generator, timeout time.Duration) {
	generator = g
	if timeout > 0 {
		narrativeTimeout = timeout
	}
}

// narrate generates the narrative for a prompt. It never fails: when the
// generator is missing, times out or errors, the fallback text is
// returned instead.
func narrate(c *gin.Context, prompt string) string {
	if generator == nil {
		return narrative.Fallback
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), narrativeTimeout)
	defer cancel()

	text, err := generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msg("narrative generation failed, using fallback")
		return narrative.Fallback
	}

	return text
}

// saveAnalysis persists an analysis best-effort. A storage failure is
// logged and never fails the request, the response then carries the Nil ID.
func saveAnalysis(c *gin.Context, kind models.AnalysisKind, input, result any, text string) advisor_uuid.UUID {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("could not marshal analysis input")
		return advisor_uuid.Nil
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("could not marshal analysis result")
		return advisor_uuid.Nil
	}

	analysis := models.Analysis{
		Kind:      kind,
		Input:     string(inputJSON),
		Result:    string(resultJSON),
		Narrative: text,
	}

	if err := models.DB.Create(&analysis).Error; err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("could not store analysis")
		return advisor_uuid.Nil
	}

	return advisor_uuid.UUID{UUID: analysis.ID}
}
