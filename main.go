package main

import (
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/raisket/advisor/internal/config"
	v1 "github.com/raisket/advisor/internal/controllers/v1"
	"github.com/raisket/advisor/internal/models"
	"github.com/raisket/advisor/internal/narrative"
	"github.com/raisket/advisor/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, err := url.Parse(cfg.API.URL)
	if err != nil {
		log.Fatal().Str("url", cfg.API.URL).Msg("the API URL is not a valid URL")
	}

	// Create the directory the database lives in
	err = os.MkdirAll(filepath.Dir(cfg.DB.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DB.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Narrative generation is optional, without an API key every
	// response carries the fallback text
	if cfg.LLM.APIKey != "" {
		generator, err := newGenerator(cfg.LLM)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		v1.Configure(generator, cfg.LLM.Timeout)
		log.Info().Str("provider", generator.Name()).Msg("narrative generation enabled")
	} else {
		log.Warn().Msg("no LLM API key configured, narrative generation disabled")
	}

	r, teardown, err := router.Config(apiURL, cfg.API.CORSOrigins)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"), cfg.API.EnablePprof)

	if err := r.Run(":" + cfg.API.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// newGenerator builds the narrative generator from the configuration,
// applying the optional model and base URL overrides.
func newGenerator(cfg config.Narrative) (narrative.Generator, error) {
	switch cfg.Provider {
	case narrative.ProviderAnthropic:
		var opts []narrative.AnthropicOption
		if cfg.Model != "" {
			opts = append(opts, narrative.WithAnthropicModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, narrative.WithAnthropicBaseURL(cfg.BaseURL))
		}
		return narrative.NewAnthropicGenerator(cfg.APIKey, opts...)

	case narrative.ProviderOpenAI:
		var opts []narrative.OpenAIOption
		if cfg.Model != "" {
			opts = append(opts, narrative.WithOpenAIModel(cfg.Model))
		}
		if cfg.BaseURL != "" {
			opts = append(opts, narrative.WithOpenAIBaseURL(cfg.BaseURL))
		}
		return narrative.NewOpenAIGenerator(cfg.APIKey, opts...)
	}

	return nil, narrative.ErrUnknownProvider
}
