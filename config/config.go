package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the labeling session. Fields
// may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// CoordsPath names the coordinate file to label. Empty means the
	// embedded sample fixture.
	CoordsPath string `json:"coords_path"`

	// Labels are the category names offered by the picker, in order.
	// At most five are used; extras are dropped silently.
	Labels []string `json:"labels"`

	// Canvas layout
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
	PointRadius  int `json:"point_radius"`

	// Session outputs
	MaskPath       string `json:"mask_path"`
	PlotPath       string `json:"plot_path"`
	SnapshotPath   string `json:"snapshot_path"`
	SnapshotOnExit bool   `json:"snapshot_on_exit"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		CoordsPath:   "",
		Labels:       []string{"a", "b"},
		CanvasWidth:  800,
		CanvasHeight: 600,
		PointRadius:  4,
		MaskPath:     "mask.json",
		PlotPath:     "",
		SnapshotPath: "",
	}
}

// Validate clamps values to safe ranges. Label names are left alone:
// the palette enforces its own five-entry cap.
func (c *Config) Validate() error {
	if c.CanvasWidth < 200 {
		c.CanvasWidth = 800
	}
	if c.CanvasHeight < 200 {
		c.CanvasHeight = 600
	}
	if c.PointRadius < 1 {
		c.PointRadius = 4
	}
	if c.PointRadius > 20 {
		c.PointRadius = 20
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path.
// If the file does not exist it returns DefaultConfig(). On JSON error
// it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
