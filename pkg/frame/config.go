package frame

import "fmt"

// ProcessingConfig is the recognized option set for extractFrame.
type ProcessingConfig struct {
	WhiteThreshold        int
	MinArea               float64
	MaxPixels             int
	Padding               float64
	CropInset             int
	MinRotation           float64
	UsePCA                bool
	EnableAngleRefine     bool
	AngleRefineWindow     float64
	AngleRefineIterations int
}

// DefaultProcessingConfig returns the recommended defaults for every field.
func DefaultProcessingConfig() ProcessingConfig {
	return ProcessingConfig{
		WhiteThreshold:        DefaultWhiteThreshold,
		MinArea:               DefaultMinArea,
		MaxPixels:             DefaultMaxPixels,
		Padding:               0,
		CropInset:             DefaultCropInset,
		MinRotation:           DefaultMinRotation,
		UsePCA:                false,
		EnableAngleRefine:     false,
		AngleRefineWindow:     DefaultAngleRefineWindow,
		AngleRefineIterations: DefaultAngleRefineIterations,
	}
}

// Validate rejects out-of-range values with InvalidInput.
func (c ProcessingConfig) Validate() error {
	switch {
	case c.WhiteThreshold < 0 || c.WhiteThreshold > 255:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("whiteThreshold %d out of range [0, 255]", c.WhiteThreshold))
	case c.MinArea < 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("minArea must be >= 0"))
	case c.MaxPixels <= 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("maxPixels must be > 0"))
	case c.Padding < 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("padding must be >= 0"))
	case c.CropInset < 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("cropInset must be >= 0"))
	case c.MinRotation < 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("minRotation must be >= 0"))
	case c.EnableAngleRefine && c.AngleRefineWindow <= 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("angleRefineWindow must be > 0 when enableAngleRefine is set"))
	case c.EnableAngleRefine && c.AngleRefineIterations <= 0:
		return newErr(InvalidInput, "ProcessingConfig.Validate", "", Vector2{}, fmt.Errorf("angleRefineIterations must be > 0 when enableAngleRefine is set"))
	}
	return nil
}

// recognizedConfigKeys is the full option set, used by
// NewProcessingConfigFromMap to reject unknown fields instead of silently
// ignoring them.
var recognizedConfigKeys = map[string]bool{
	"whiteThreshold":        true,
	"minArea":               true,
	"maxPixels":             true,
	"padding":               true,
	"cropInset":             true,
	"minRotation":           true,
	"usePca":                true,
	"enableAngleRefine":     true,
	"angleRefineWindow":     true,
	"angleRefineIterations": true,
}

// NewProcessingConfigFromMap builds a ProcessingConfig from a dynamically
// typed option map (the shape a cross-process request surface would hand
// the core), applying defaults for omitted keys and failing with
// InvalidInput on any key outside recognizedConfigKeys or any value of the
// wrong type.
func NewProcessingConfigFromMap(opts map[string]any) (ProcessingConfig, error) {
	cfg := DefaultProcessingConfig()

	for k := range opts {
		if !recognizedConfigKeys[k] {
			return ProcessingConfig{}, newErr(InvalidInput, "NewProcessingConfigFromMap", "", Vector2{}, fmt.Errorf("unrecognized config field %q", k))
		}
	}

	asInt := func(key string, dst *int) error {
		v, ok := opts[key]
		if !ok {
			return nil
		}
		switch n := v.(type) {
		case int:
			*dst = n
		case float64:
			*dst = int(n)
		default:
			return fmt.Errorf("field %q must be a number", key)
		}
		return nil
	}
	asFloat := func(key string, dst *float64) error {
		v, ok := opts[key]
		if !ok {
			return nil
		}
		switch n := v.(type) {
		case float64:
			*dst = n
		case int:
			*dst = float64(n)
		default:
			return fmt.Errorf("field %q must be a number", key)
		}
		return nil
	}
	asBool := func(key string, dst *bool) error {
		v, ok := opts[key]
		if !ok {
			return nil
		}
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("field %q must be a boolean", key)
		}
		*dst = b
		return nil
	}

	for _, step := range []func() error{
		func() error { return asInt("whiteThreshold", &cfg.WhiteThreshold) },
		func() error { return asFloat("minArea", &cfg.MinArea) },
		func() error { return asInt("maxPixels", &cfg.MaxPixels) },
		func() error { return asFloat("padding", &cfg.Padding) },
		func() error { return asInt("cropInset", &cfg.CropInset) },
		func() error { return asFloat("minRotation", &cfg.MinRotation) },
		func() error { return asBool("usePca", &cfg.UsePCA) },
		func() error { return asBool("enableAngleRefine", &cfg.EnableAngleRefine) },
		func() error { return asFloat("angleRefineWindow", &cfg.AngleRefineWindow) },
		func() error { return asInt("angleRefineIterations", &cfg.AngleRefineIterations) },
	} {
		if err := step(); err != nil {
			return ProcessingConfig{}, newErr(InvalidInput, "NewProcessingConfigFromMap", "", Vector2{}, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return ProcessingConfig{}, err
	}
	return cfg, nil
}
