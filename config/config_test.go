package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cwbudde/algo-bandmeter/analysis"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if got := s.PollInterval(); got != 100*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 100ms", got)
	}

	bands, err := s.AnalysisBands()
	if err != nil || len(bands) != 6 {
		t.Fatalf("AnalysisBands = %v, %v, want 6 bands", bands, err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantErr error
	}{
		{"zero rate", func(s *Session) { s.SampleRate = 0 }, ErrInvalid},
		{"zero window", func(s *Session) { s.WindowLength = 0 }, ErrInvalid},
		{"zero capacity", func(s *Session) { s.QueueCapacity = 0 }, ErrInvalid},
		{"positive floor", func(s *Session) { s.FloorDB = 1 }, ErrInvalid},
		{"zero gamma", func(s *Session) { s.Gamma = 0 }, ErrInvalid},
		{"unknown window", func(s *Session) { s.Window = "triangle" }, ErrInvalid},
		{"fast poll", func(s *Session) { s.PollIntervalMs = 1 }, ErrInvalid},
		{"no bands", func(s *Session) { s.Bands = nil }, ErrInvalid},
		{"overlapping bands", func(s *Session) { s.Bands = [][2]float64{{0, 200}, {100, 300}} }, analysis.ErrBandOrder},
		{"inverted band", func(s *Session) { s.Bands = [][2]float64{{300, 100}} }, analysis.ErrInvalidBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			err := s.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	body := `{"sample_rate": 44100, "window": "blackman", "bands": [[0, 1000], [1000, 8000]]}`

	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.SampleRate != 44100 || s.Window != "blackman" || len(s.Bands) != 2 {
		t.Fatalf("loaded = %+v", s)
	}

	if s.WindowLength != Default().WindowLength || s.Gamma != analysis.DefaultGamma {
		t.Fatalf("defaults not kept: %+v", s)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing err = %v, want %v", err, os.ErrNotExist)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"sample_rate": `), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(bad); err == nil {
		t.Fatal("Load(bad json) = nil error")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"gamma": -1}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Fatalf("invalid err = %v, want %v", err, ErrInvalid)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	want := Default()
	want.FloorDB = -60
	want.Bands = [][2]float64{{20, 200}, {200, 2000}}

	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.FloorDB != -60 || len(got.Bands) != 2 || got.Bands[1] != [2]float64{200, 2000} {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestAnalyzerOptionsBuildAnalyzer(t *testing.T) {
	s := Default()
	s.Window = "hamming"
	s.FloorDB = -70

	bands, err := s.AnalysisBands()
	if err != nil {
		t.Fatalf("AnalysisBands: %v", err)
	}

	a, err := analysis.NewAnalyzer(s.SampleRate, s.WindowLength, bands, s.AnalyzerOptions()...)
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}

	if a.FloorDB() != -70 {
		t.Fatalf("FloorDB = %v, want -70", a.FloorDB())
	}

	m, err := s.Mapper()
	if err != nil {
		t.Fatalf("Mapper: %v", err)
	}

	if m.FloorDB != -70 || m.Gamma != s.Gamma {
		t.Fatalf("Mapper = %+v", m)
	}
}
