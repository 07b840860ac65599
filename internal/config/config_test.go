package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Board {
		t.Errorf("Format = %v, want %v", cfg.Format, Board)
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if cfg.ShowMoved {
		t.Error("ShowMoved should be false by default")
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
}

// TestPerftConfig_Defaults verifies perft is off by default
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Enabled() {
		t.Error("perft should be disabled by default")
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"board", Board, false},
		{"FEN", FEN, false},
		{"pgn", PGN, false},
		{"json", JSON, false},
		{"moves", Moves, false},
		{"xml", Board, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v is not ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputFormat_String(t *testing.T) {
	if got := PGN.String(); got != "pgn" {
		t.Errorf("PGN.String() = %q, want pgn", got)
	}
	if got := OutputFormat(42).String(); got != "unknown" {
		t.Errorf("OutputFormat(42).String() = %q, want unknown", got)
	}
}

// TestConfig_Validate verifies validation of every section
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"perft depth in range", func(c *Config) { c.Perft.Depth = 4 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"perft too deep", func(c *Config) { c.Perft.Depth = MaxPerftDepth + 1 }, true},
		{"negative perft depth", func(c *Config) { c.Perft.Depth = -2 }, true},
		{"no workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"bad format", func(c *Config) { c.Output.Format = OutputFormat(99) }, true},
		{"short lines", func(c *Config) { c.Output.MaxLineLength = 5 }, true},
		{"unlimited lines", func(c *Config) { c.Output.MaxLineLength = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("error %v is not ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "applied %d moves", 3)
	cfg.Logf(2, "hidden")

	if got := buf.String(); got != "applied 3 moves\n" {
		t.Errorf("log = %q, want %q", got, "applied 3 moves\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "no writer") // must not panic
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithOutputFormat(JSON).
		WithCoordinates(false).
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithStrict(true).
		WithPerft(3, 2).
		WithOutput(&out).
		WithVerbosity(2).
		Build()

	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Output.Coordinates {
		t.Error("Coordinates should be false")
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if !cfg.Strict {
		t.Error("Strict should be true")
	}
	if cfg.Perft.Depth != 3 || cfg.Perft.Workers != 2 {
		t.Errorf("Perft = %+v, want depth 3 workers 2", cfg.Perft)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
