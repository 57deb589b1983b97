package forest

import (
	"strconv"

	"forest-ca/internal/core"
)

// Parameters captures the current tunables for external tooling.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				floatParam("water_threshold", "Water threshold", params.WaterThreshold),
				floatParam("noise_period", "Water noise period", params.NoisePeriod),
			},
		},
		{
			Name: "Initial Distribution",
			Params: []core.Parameter{
				floatParam("meadow_weight", "Meadow weight", params.MeadowWeight),
				floatParam("shrubland_weight", "Shrubland weight", params.ShrublandWeight),
				floatParam("shade_intolerant_weight", "Shade-intolerant forest weight", params.ShadeIntolerantWeight),
				floatParam("shade_tolerant_weight", "Shade-tolerant forest weight", params.ShadeTolerantWeight),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("spread_multiplier", "Fire spread multiplier", params.SpreadMultiplier),
				floatParam("base_susceptibility", "Base fire susceptibility", params.BaseSusceptibility),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetIntParameter updates an integer parameter. Changing the map size
// regenerates the whole map. Invalid values are rejected, not clamped.
func (w *World) SetIntParameter(key string, value int) bool {
	cfg := w.cfg
	switch key {
	case "w":
		cfg.Width = value
	case "h":
		cfg.Height = value
	default:
		return false
	}
	if err := w.applyConfig(cfg); err != nil {
		return false
	}
	w.generate()
	return true
}

// SetFloatParameter updates a floating-point parameter. Generation
// parameters (water threshold, noise period, land weights) trigger a full
// regeneration; the fire multipliers take effect on the next tick.
func (w *World) SetFloatParameter(key string, value float64) bool {
	cfg := w.cfg
	regen := false
	switch key {
	case "water_threshold":
		cfg.Params.WaterThreshold = value
		regen = true
	case "noise_period":
		cfg.Params.NoisePeriod = value
		regen = true
	case "meadow_weight":
		cfg.Params.MeadowWeight = value
		regen = true
	case "shrubland_weight":
		cfg.Params.ShrublandWeight = value
		regen = true
	case "shade_intolerant_weight":
		cfg.Params.ShadeIntolerantWeight = value
		regen = true
	case "shade_tolerant_weight":
		cfg.Params.ShadeTolerantWeight = value
		regen = true
	case "spread_multiplier":
		cfg.Params.SpreadMultiplier = value
	case "base_susceptibility":
		cfg.Params.BaseSusceptibility = value
	default:
		return false
	}
	if err := w.applyConfig(cfg); err != nil {
		return false
	}
	if regen {
		w.generate()
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
