// Package config loads and validates band meter session settings from JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-bandmeter/analysis"
	"github.com/cwbudde/algo-bandmeter/capture"
	"github.com/go-playground/validator/v10"
)

// Default values for a session.
const (
	DefaultSampleRate     = 48000
	DefaultPollIntervalMs = 100
	DefaultWindow         = "hann"
)

// validate is the shared validator instance for session validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Session holds the settings of one metering session.
type Session struct {
	SampleRate     float64      `json:"sample_rate" validate:"gt=0,lte=768000"`
	WindowLength   int          `json:"window_length" validate:"gt=0,lte=1048576"`
	QueueCapacity  int          `json:"queue_capacity" validate:"gt=0,lte=4096"`
	Bands          [][2]float64 `json:"bands" validate:"required,min=1"`
	FloorDB        float64      `json:"floor_db" validate:"lt=0,gte=-200"`
	Epsilon        float64      `json:"epsilon" validate:"gt=0,lt=1"`
	Gamma          float64      `json:"gamma" validate:"gt=0,lte=10"`
	Window         string       `json:"window" validate:"oneof=rectangular hann hamming blackman"`
	PollIntervalMs int          `json:"poll_interval_ms" validate:"gte=10,lte=10000"`
}

// Default returns the standard six-band session at 48 kHz.
func Default() Session {
	return Session{
		SampleRate:     DefaultSampleRate,
		WindowLength:   capture.DefaultWindowLength,
		QueueCapacity:  capture.DefaultQueueCapacity,
		Bands:          analysis.DefaultBands().Pairs(),
		FloorDB:        analysis.DefaultFloorDB,
		Epsilon:        analysis.DefaultEpsilon,
		Gamma:          analysis.DefaultGamma,
		Window:         DefaultWindow,
		PollIntervalMs: DefaultPollIntervalMs,
	}
}

// Load reads a session from a JSON file. Fields missing from the file keep
// their default values. The result is validated.
func Load(path string) (Session, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Session{}, err
	}

	return s, nil
}

// Save writes the session as indented JSON.
func (s Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks field ranges and then the band layout.
func (s Session) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return validationError(verrs)
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if _, err := analysis.ParseBands(s.Bands); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// AnalysisBands returns the validated band list.
func (s Session) AnalysisBands() (analysis.Bands, error) {
	return analysis.ParseBands(s.Bands)
}

// AnalyzerOptions converts the session to analyzer options.
func (s Session) AnalyzerOptions() []analysis.Option {
	return []analysis.Option{
		analysis.WithFloorDB(s.FloorDB),
		analysis.WithEpsilon(s.Epsilon),
		analysis.WithWindowName(s.Window),
	}
}

// Mapper returns the display mapper for the session.
func (s Session) Mapper() (analysis.Mapper, error) {
	return analysis.NewMapper(s.FloorDB, s.Gamma)
}

// PollInterval returns the display refresh period.
func (s Session) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMs) * time.Millisecond
}

// ErrInvalid is wrapped by every field validation error.
var ErrInvalid = errors.New("invalid config")

func validationError(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Field()+" "+formatValidationMessage(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// formatValidationMessage creates a human-readable message from a validator error.
func formatValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
