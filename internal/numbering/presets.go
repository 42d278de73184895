package numbering

// Preset is a named quick pattern over direction, mode and snake.
// Presets always walk rows top to bottom.
type Preset struct {
	Name      string    `json:"name"`
	Direction Direction `json:"numbering_direction"`
	Mode      Mode      `json:"numbering_mode"`
	Snake     bool      `json:"numbering_snake"`
}

// PresetCustom is reported when a configuration matches no preset.
const PresetCustom = "custom"

var presets = []Preset{
	{Name: "ltr-rows", Direction: DirectionLTR, Mode: ModeRow},
	{Name: "rtl-rows", Direction: DirectionRTL, Mode: ModeRow},
	{Name: "ltr-rows-snake", Direction: DirectionLTR, Mode: ModeRow, Snake: true},
	{Name: "rtl-rows-snake", Direction: DirectionRTL, Mode: ModeRow, Snake: true},
	{Name: "ltr-columns", Direction: DirectionLTR, Mode: ModeColumn},
	{Name: "rtl-columns", Direction: DirectionRTL, Mode: ModeColumn},
	{Name: "ltr-columns-snake", Direction: DirectionLTR, Mode: ModeColumn, Snake: true},
	{Name: "rtl-columns-snake", Direction: DirectionRTL, Mode: ModeColumn, Snake: true},
}

// Presets returns the built-in quick patterns.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply overwrites the preset's axes on cfg and keeps everything else.
func (p Preset) Apply(cfg Config) Config {
	cfg.Direction = p.Direction
	cfg.Mode = p.Mode
	cfg.Snake = p.Snake
	cfg.Vertical = VerticalTTB
	return cfg
}

// DetectPreset names the preset cfg corresponds to, or PresetCustom.
func DetectPreset(cfg Config) string {
	cfg = cfg.Normalize()
	if cfg.Vertical != VerticalTTB {
		return PresetCustom
	}
	for _, p := range presets {
		if p.Direction == cfg.Direction && p.Mode == cfg.Mode && p.Snake == cfg.Snake {
			return p.Name
		}
	}
	return PresetCustom
}
