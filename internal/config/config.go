// Package config handles vatbake configuration loading and management.
package config

import "github.com/vatforge/vatbake/pkg/vat"

// Config holds all baking tool settings.
type Config struct {
	Bake    BakeConfig    `yaml:"bake"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BakeConfig holds encoder settings.
type BakeConfig struct {
	ChunkWidth   int `yaml:"chunk_width"`    // Texel width of one atlas chunk
	MaxVertices  int `yaml:"max_vertices"`   // Validation ceiling, 0 disables
	MaxFrames    int `yaml:"max_frames"`     // Validation ceiling, 0 disables
	MinImageSize int `yaml:"min_image_size"` // Smallest texture dimension the target accepts
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Directory textures and metadata are written to
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bake: BakeConfig{
			ChunkWidth:   128,
			MaxVertices:  2048,
			MaxFrames:    1024,
			MinImageSize: 32,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// VAT maps the bake section onto the codec configuration.
func (c *Config) VAT() vat.Config {
	v := vat.DefaultConfig()
	if c.Bake.ChunkWidth > 0 {
		v.ChunkWidth = c.Bake.ChunkWidth
	}
	v.MaxVertices = c.Bake.MaxVertices
	v.MaxFrames = c.Bake.MaxFrames
	if c.Bake.MinImageSize > 0 {
		v.MinImageSize = c.Bake.MinImageSize
	}
	return v
}

// Overrides holds CLI overrides applied on top of the loaded file.
type Overrides struct {
	ChunkWidth int
	OutputDir  string
	Debug      bool
}

// Apply applies CLI overrides; they take priority over file values.
func (c *Config) Apply(o Overrides) {
	if o.ChunkWidth > 0 {
		c.Bake.ChunkWidth = o.ChunkWidth
	}
	if o.OutputDir != "" {
		c.Output.Dir = o.OutputDir
	}
	if o.Debug {
		c.Logging.Level = "debug"
	}
}
