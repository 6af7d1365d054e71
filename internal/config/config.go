// Package config holds the YAML configuration shared by the polarsc commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/Observe-l/polarsc/fec"
	"github.com/Observe-l/polarsc/polar/pattern"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root configuration.
type Config struct {
	Code       CodeConfig       `yaml:"code"`
	Decoder    DecoderConfig    `yaml:"decoder"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CodeConfig selects the polar code. The first source set among
// FrozenFile, FrozenDir, Table and Construction is used.
type CodeConfig struct {
	N            int     `yaml:"n"`
	K            int     `yaml:"k"`
	Construction string  `yaml:"construction"` // bec or ga
	Param        float64 `yaml:"param"`        // erasure probability or sigma; 0 derives sigma from the design Eb/N0
	DesignEbN0   float64 `yaml:"design_ebn0"`
	Table        string  `yaml:"table,omitempty"`
	FrozenFile   string  `yaml:"frozen_file,omitempty"`
	// FrozenDir is an artifact base written by `polarsc construct`; the
	// newest table under N{n}_K{k} is used.
	FrozenDir    string  `yaml:"frozen_dir,omitempty"`
	Systematic   bool    `yaml:"systematic"`
}

// DecoderConfig selects the lane type and decoder shape.
type DecoderConfig struct {
	Type      string `yaml:"type"`    // int8, int16, int32, float32, float64
	Combine   string `yaml:"combine"` // minsum or boxplus
	Frames    int    `yaml:"frames"`
	Intra     bool   `yaml:"intra"`
	Catalog   string `yaml:"catalog"`
	QuantBits int    `yaml:"quant_bits"`
	QuantFrac int    `yaml:"quant_frac"`
}

type SimulationConfig struct {
	EbN0Min        float64 `yaml:"ebn0_min"`
	EbN0Max        float64 `yaml:"ebn0_max"`
	EbN0Step       float64 `yaml:"ebn0_step"`
	MaxFrames      int     `yaml:"max_frames"`
	MaxFrameErrors int     `yaml:"max_frame_errors"`
	Workers        int     `yaml:"workers"`
	Seed           uint64  `yaml:"seed"`
	Report         string  `yaml:"report,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

var (
	ValidTypes    = []string{"int8", "int16", "int32", "float32", "float64"}
	ValidCombines = []string{"minsum", "boxplus"}
	ValidLevels   = []string{"debug", "info", "warn", "error"}
	ValidFormats  = []string{"json", "console"}
)

// DefaultConfig returns a (1024, 512) GA code decoded with int8 min-sum.
func DefaultConfig() *Config {
	return &Config{
		Code: CodeConfig{
			N:            1024,
			K:            512,
			Construction: string(fec.ConstructionGA),
			DesignEbN0:   2,
		},
		Decoder: DecoderConfig{
			Type:      "int8",
			Combine:   "minsum",
			Frames:    16,
			Intra:     true,
			Catalog:   pattern.DefaultCatalog().String(),
			QuantBits: 6,
			QuantFrac: 2,
		},
		Simulation: SimulationConfig{
			EbN0Min:        1,
			EbN0Max:        3,
			EbN0Step:       0.5,
			MaxFrames:      100000,
			MaxFrameErrors: 100,
			Workers:        4,
			Seed:           42,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("POLARSC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("POLARSC_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
}

// laneBits is the width of the integer lane types.
var laneBits = map[string]int{"int8": 8, "int16": 16, "int32": 32}

// Validate checks every section.
func (c *Config) Validate() error {
	code := c.Code
	if code.N < 2 || code.N&(code.N-1) != 0 {
		return fmt.Errorf("%w: code.n=%d is not a power of two", ErrInvalid, code.N)
	}
	if code.K <= 0 || code.K > code.N {
		return fmt.Errorf("%w: code.k=%d out of range (0, %d]", ErrInvalid, code.K, code.N)
	}
	if code.FrozenFile == "" && code.FrozenDir == "" && code.Table == "" {
		switch fec.Construction(code.Construction) {
		case fec.ConstructionBEC:
			if code.Param <= 0 || code.Param >= 1 {
				return fmt.Errorf("%w: bec construction needs 0 < param < 1", ErrInvalid)
			}
		case fec.ConstructionGA:
		default:
			return fmt.Errorf("%w: unknown construction %q", ErrInvalid, code.Construction)
		}
	}

	d := c.Decoder
	if !slices.Contains(ValidTypes, d.Type) {
		return fmt.Errorf("%w: decoder.type %q (valid: %v)", ErrInvalid, d.Type, ValidTypes)
	}
	if !slices.Contains(ValidCombines, d.Combine) {
		return fmt.Errorf("%w: decoder.combine %q (valid: %v)", ErrInvalid, d.Combine, ValidCombines)
	}
	if d.Frames < 1 {
		return fmt.Errorf("%w: decoder.frames must be positive", ErrInvalid)
	}
	if _, err := d.ParseCatalog(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if d.QuantBits < 2 || d.QuantBits > 32 || d.QuantFrac < 0 || d.QuantFrac >= d.QuantBits {
		return fmt.Errorf("%w: quantizer Q(%d,%d)", ErrInvalid, d.QuantBits, d.QuantFrac)
	}
	if w, ok := laneBits[d.Type]; ok && d.QuantBits > w {
		return fmt.Errorf("%w: quantizer Q(%d,%d) is wider than %s lanes", ErrInvalid, d.QuantBits, d.QuantFrac, d.Type)
	}

	s := c.Simulation
	if s.EbN0Step <= 0 || s.EbN0Max < s.EbN0Min {
		return fmt.Errorf("%w: Eb/N0 sweep [%g, %g] step %g", ErrInvalid, s.EbN0Min, s.EbN0Max, s.EbN0Step)
	}
	if s.MaxFrames < 1 || s.MaxFrameErrors < 1 || s.Workers < 1 {
		return fmt.Errorf("%w: simulation limits must be positive", ErrInvalid)
	}

	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (valid: %v)", ErrInvalid, c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q (valid: %v)", ErrInvalid, c.Logging.Format, ValidFormats)
	}
	return nil
}

// ParseCatalog parses the configured pattern catalog.
func (d DecoderConfig) ParseCatalog() (pattern.Catalog, error) {
	return pattern.ParseCatalog(d.Catalog)
}

// Rate is K/N.
func (c CodeConfig) Rate() float64 { return float64(c.K) / float64(c.N) }

// Frozen resolves the frozen-bit mask the configuration describes.
func (c CodeConfig) Frozen() ([]bool, error) {
	switch {
	case c.FrozenFile != "":
		s, err := fec.LoadFrozenSet(c.FrozenFile)
		if err != nil {
			return nil, err
		}
		if s.N != c.N || s.K != c.K {
			return nil, fmt.Errorf("%w: %s holds a (%d,%d) code, want (%d,%d)", ErrInvalid, c.FrozenFile, s.N, s.K, c.N, c.K)
		}
		return s.Frozen()
	case c.FrozenDir != "":
		s, err := fec.LatestFrozenSet(c.FrozenDir, c.N, c.K)
		if err != nil {
			return nil, err
		}
		return s.Frozen()
	case c.Table != "":
		return fec.FrozenFrom3GPP(c.Table, c.N, c.K)
	}
	param := c.Param
	if fec.Construction(c.Construction) == fec.ConstructionGA && param == 0 {
		param = fec.Sigma(c.DesignEbN0, c.Rate())
	}
	return fec.FrozenBits(fec.Construction(c.Construction), c.N, c.K, param)
}

// Points lists the Eb/N0 values of the sweep. The end point is included
// when the step lands on it.
func (s SimulationConfig) Points() []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := s.EbN0Min + float64(i)*s.EbN0Step
		if v > s.EbN0Max+1e-9 {
			break
		}
		out = append(out, v)
	}
	return out
}
