package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProcessingConfig_IsValid(t *testing.T) {
	cfg := DefaultProcessingConfig()
	assert.NoError(t, cfg.Validate())
}

func TestProcessingConfig_Validate_RejectsBadWhiteThreshold(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.WhiteThreshold = 300
	err := cfg.Validate()
	assert.Equal(t, InvalidInput, KindOf(err))
}

func TestProcessingConfig_Validate_RejectsZeroMaxPixels(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.MaxPixels = 0
	assert.Equal(t, InvalidInput, KindOf(cfg.Validate()))
}

func TestProcessingConfig_Validate_RequiresRefineWindowWhenEnabled(t *testing.T) {
	cfg := DefaultProcessingConfig()
	cfg.EnableAngleRefine = true
	cfg.AngleRefineWindow = 0
	assert.Equal(t, InvalidInput, KindOf(cfg.Validate()))
}

func TestNewProcessingConfigFromMap_AppliesOverridesAndDefaults(t *testing.T) {
	cfg, err := NewProcessingConfigFromMap(map[string]any{
		"whiteThreshold": 200,
		"usePca":         true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 200, cfg.WhiteThreshold)
	assert.True(t, cfg.UsePCA)
	assert.Equal(t, DefaultMinArea, cfg.MinArea, "omitted keys keep their default")
}

func TestNewProcessingConfigFromMap_RejectsUnknownKey(t *testing.T) {
	_, err := NewProcessingConfigFromMap(map[string]any{"notAField": 1})
	assert.Equal(t, InvalidInput, KindOf(err))
}

func TestNewProcessingConfigFromMap_RejectsWrongType(t *testing.T) {
	_, err := NewProcessingConfigFromMap(map[string]any{"usePca": "yes"})
	assert.Equal(t, InvalidInput, KindOf(err))
}

func TestNewProcessingConfigFromMap_AcceptsFloat64ForIntField(t *testing.T) {
	cfg, err := NewProcessingConfigFromMap(map[string]any{"whiteThreshold": float64(150)})
	assert.NoError(t, err)
	assert.Equal(t, 150, cfg.WhiteThreshold)
}

func TestNewProcessingConfigFromMap_AcceptsIntForFloatField(t *testing.T) {
	cfg, err := NewProcessingConfigFromMap(map[string]any{"minArea": 50})
	assert.NoError(t, err)
	assert.Equal(t, 50.0, cfg.MinArea)
}

func TestNewProcessingConfigFromMap_StillValidatesResultingConfig(t *testing.T) {
	_, err := NewProcessingConfigFromMap(map[string]any{"maxPixels": 0})
	assert.Equal(t, InvalidInput, KindOf(err))
}
