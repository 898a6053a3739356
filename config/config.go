package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/asciiplay/distance"
	"go.jacobcolvin.com/asciiplay/transition"
)

// Sentinel errors returned by config validation.
var (
	ErrMissingIdle      = errors.New("idle clip is required")
	ErrInvalidScanSpeed = errors.New("scan speed must be at least 1")
	ErrInvalidCeiling   = errors.New("sensor ceiling must be positive")
	ErrInvalidWindow    = errors.New("sensor window must be at least 1")
	ErrNoBands          = errors.New("sensor configured without bands")
)

// Config is the root configuration document.
type Config struct {
	// Idle is the clip looped whenever nothing is requested.
	Idle       string           `json:"idle"                 yaml:"idle"`
	Transition TransitionConfig `json:"transition,omitempty" yaml:"transition"`
	Sensor     SensorConfig     `json:"sensor,omitempty"     yaml:"sensor"`
	// Bands maps smoothed sensor distances to clips, nearest first.
	Bands distance.Table `json:"bands,omitempty" yaml:"bands"`
	Audio AudioConfig    `json:"audio,omitempty" yaml:"audio"`
}

// TransitionConfig selects and sizes the transition between clips.
type TransitionConfig struct {
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm"`
	Direction string `json:"direction,omitempty" yaml:"direction"`
	Budget    int    `json:"budget,omitempty"    yaml:"budget"`
	ScanSpeed int    `json:"scanSpeed,omitempty" yaml:"scanSpeed"`
}

// SensorConfig describes the distance sensor's serial transport and
// smoothing. An empty Port disables the sensor entirely.
type SensorConfig struct {
	Port    string  `json:"port,omitempty"    yaml:"port"`
	Baud    int     `json:"baud,omitempty"    yaml:"baud"`
	Ceiling float64 `json:"ceiling,omitempty" yaml:"ceiling"`
	Window  int     `json:"window,omitempty"  yaml:"window"`
}

// AudioConfig points at an optional looping WAV ambience bed.
type AudioConfig struct {
	Bed string `json:"bed,omitempty" yaml:"bed"`
}

// Default returns the configuration used when fields are unset.
func Default() Config {
	return Config{
		Transition: TransitionConfig{
			Algorithm: string(transition.AlgorithmWipe),
			Direction: string(transition.DirectionTop),
			Budget:    15,
			ScanSpeed: 2,
		},
		Sensor: SensorConfig{
			Baud:    distance.DefaultBaud,
			Ceiling: distance.DefaultCeiling,
			Window:  distance.DefaultWindowSize,
		},
	}
}

// Load reads, schema-validates, and decodes the YAML file at path on top
// of [Default].
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	return Parse(raw)
}

// Parse decodes raw YAML on top of [Default] and validates the result.
func Parse(raw []byte) (Config, error) {
	jsonRaw, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	err = validateSchema(jsonRaw)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	err = json.Unmarshal(jsonRaw, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateSchema checks the document against the schema derived from
// [Config], catching shape errors before decoding.
func validateSchema(jsonRaw []byte) error {
	schema, err := jsonschema.For[Config](nil)
	if err != nil {
		return fmt.Errorf("building config schema: %w", err)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolving config schema: %w", err)
	}

	var instance any

	err = json.Unmarshal(jsonRaw, &instance)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	return nil
}

// Validate applies the semantic rules the schema cannot express.
func (c Config) Validate() error {
	if c.Idle == "" {
		return ErrMissingIdle
	}

	_, err := c.Spec()
	if err != nil {
		return err
	}

	if c.Transition.ScanSpeed < 1 {
		return ErrInvalidScanSpeed
	}

	if c.Sensor.Ceiling <= 0 {
		return ErrInvalidCeiling
	}

	if c.Sensor.Window < 1 {
		return ErrInvalidWindow
	}

	if len(c.Bands) > 0 {
		err = c.Bands.Validate()
		if err != nil {
			return fmt.Errorf("validating bands: %w", err)
		}
	}

	if c.Sensor.Port != "" && len(c.Bands) == 0 {
		return ErrNoBands
	}

	return nil
}

// Spec builds the transition spec from the config, validating algorithm
// and direction names.
func (c Config) Spec() (transition.Spec, error) {
	alg, err := transition.ParseAlgorithm(c.Transition.Algorithm)
	if err != nil {
		return transition.Spec{}, err
	}

	spec := transition.Spec{
		Algorithm: alg,
		Budget:    c.Transition.Budget,
	}

	if c.Transition.Direction != "" {
		dir, err := transition.ParseDirection(c.Transition.Direction)
		if err != nil {
			return transition.Spec{}, err
		}

		spec.Direction = dir
	}

	err = spec.Validate()
	if err != nil {
		return transition.Spec{}, err
	}

	return spec, nil
}
