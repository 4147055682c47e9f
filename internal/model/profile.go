package model

// HardwareProfile describes one bracket/angle hardware family. The default
// constants in this package correspond to the built-in "Standard" profile;
// alternative families (heavier channel, imported slot systems) override
// the manufacturing grid and edge rules.
type HardwareProfile struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Gap             float64   `json:"gap"`               // inter-piece clearance (mm)
	SlotPitch       float64   `json:"slot_pitch"`        // bracket slot step (mm)
	LengthIncrement float64   `json:"length_increment"`  // piece length grid (mm)
	MaxAngleLength  float64   `json:"max_angle_length"`  // longest stock piece (mm)
	MinEdgeDistance float64   `json:"min_edge_distance"` // mm
	StockLengths    []float64 `json:"stock_lengths,omitempty"` // catalog override, empty = standard table
	IsBuiltIn       bool      `json:"is_built_in,omitempty"`
}

// HardwareProfiles are the built-in hardware families.
var HardwareProfiles = []HardwareProfile{
	{
		Name:            "Standard",
		Description:     "41mm support channel, 1490mm stock, 50mm bracket slots",
		Gap:             DefaultGap,
		SlotPitch:       SlotPitch,
		LengthIncrement: LengthIncrement,
		MaxAngleLength:  DefaultMaxAngleLength,
		MinEdgeDistance: DefaultMinEdgeDistance,
		IsBuiltIn:       true,
	},
	{
		Name:            "Short Stock",
		Description:     "Same channel family limited to 1190mm transportable stock",
		Gap:             DefaultGap,
		SlotPitch:       SlotPitch,
		LengthIncrement: LengthIncrement,
		MaxAngleLength:  1190,
		MinEdgeDistance: DefaultMinEdgeDistance,
		IsBuiltIn:       true,
	},
}

// GetHardwareProfile returns a built-in profile by name, or the Standard
// profile if the name is unknown.
func GetHardwareProfile(name string) HardwareProfile {
	for _, p := range HardwareProfiles {
		if p.Name == name {
			return p
		}
	}
	return HardwareProfiles[0]
}

// ApplyToRequest copies the profile's hardware values into a request,
// leaving run length, centres and any explicitly set fields alone.
func (p HardwareProfile) ApplyToRequest(r *RunRequest) {
	if r.Gap == 0 {
		r.Gap = p.Gap
	}
	if r.MaxAngleLength == 0 {
		r.MaxAngleLength = p.MaxAngleLength
	}
	if r.MinEdgeDistance == 0 {
		r.MinEdgeDistance = p.MinEdgeDistance
	}
	if r.SlotPitch == 0 {
		r.SlotPitch = p.SlotPitch
	}
	if r.LengthIncrement == 0 {
		r.LengthIncrement = p.LengthIncrement
	}
	if len(r.StockLengths) == 0 && len(p.StockLengths) > 0 {
		r.StockLengths = append([]float64(nil), p.StockLengths...)
	}
}

// AppConfig holds application-wide preferences and defaults.
type AppConfig struct {
	DefaultProfile   string   `json:"default_profile"`
	DefaultCentres   float64  `json:"default_centres"` // mm, 0 = always ask
	RecentExports    []string `json:"recent_exports"`
	MaxRecentExports int      `json:"max_recent_exports"`
	ShowAllOptions   bool     `json:"show_all_options"`
}

// DefaultAppConfig returns an AppConfig with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultProfile:   "Standard",
		DefaultCentres:   0,
		RecentExports:    []string{},
		MaxRecentExports: 10,
		ShowAllOptions:   false,
	}
}

// AddRecentExport prepends a path to the recent export list, dropping
// duplicates and clamping to MaxRecentExports.
func (c *AppConfig) AddRecentExport(path string) {
	recent := []string{path}
	for _, p := range c.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	maxEntries := c.MaxRecentExports
	if maxEntries <= 0 {
		maxEntries = 10
	}
	if len(recent) > maxEntries {
		recent = recent[:maxEntries]
	}
	c.RecentExports = recent
}
