package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Bake.ChunkWidth != 128 {
		t.Errorf("expected chunk width 128, got %d", cfg.Bake.ChunkWidth)
	}
	if cfg.Bake.MaxVertices != 2048 {
		t.Errorf("expected max vertices 2048, got %d", cfg.Bake.MaxVertices)
	}
	if cfg.Bake.MaxFrames != 1024 {
		t.Errorf("expected max frames 1024, got %d", cfg.Bake.MaxFrames)
	}
	if cfg.Bake.MinImageSize != 32 {
		t.Errorf("expected min image size 32, got %d", cfg.Bake.MinImageSize)
	}
	if cfg.Output.Dir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Output.Dir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vatbake.yaml")

	yamlContent := `
bake:
  chunk_width: 64
  max_vertices: 4096
  max_frames: 512
  min_image_size: 16

output:
  dir: "/tmp/bakes"

logging:
  level: "debug"
  log_file: "bake.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Bake.ChunkWidth != 64 {
		t.Errorf("expected chunk width 64, got %d", cfg.Bake.ChunkWidth)
	}
	if cfg.Bake.MaxVertices != 4096 {
		t.Errorf("expected max vertices 4096, got %d", cfg.Bake.MaxVertices)
	}
	if cfg.Bake.MaxFrames != 512 {
		t.Errorf("expected max frames 512, got %d", cfg.Bake.MaxFrames)
	}
	if cfg.Bake.MinImageSize != 16 {
		t.Errorf("expected min image size 16, got %d", cfg.Bake.MinImageSize)
	}
	if cfg.Output.Dir != "/tmp/bakes" {
		t.Errorf("expected output dir /tmp/bakes, got %s", cfg.Output.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "bake.log" {
		t.Errorf("expected log file 'bake.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
bake:
  chunk_width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/vatbake.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		verify    func(t *testing.T, cfg *Config)
	}{
		{
			name:      "chunk width",
			overrides: Overrides{ChunkWidth: 256},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Bake.ChunkWidth != 256 {
					t.Errorf("expected chunk width 256, got %d", cfg.Bake.ChunkWidth)
				}
			},
		},
		{
			name:      "output dir",
			overrides: Overrides{OutputDir: "/out"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/out" {
					t.Errorf("expected output dir /out, got %s", cfg.Output.Dir)
				}
			},
		},
		{
			name:      "debug",
			overrides: Overrides{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:      "zero values leave defaults alone",
			overrides: Overrides{},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Bake.ChunkWidth != 128 || cfg.Output.Dir != "." || cfg.Logging.Level != "info" {
					t.Error("zero overrides must not change defaults")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Apply(tt.overrides)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vatbake.yaml")

	yamlContent := `
bake:
  chunk_width: 64
output:
  dir: "/from-file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath, Overrides{ChunkWidth: 32})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Chunk width comes from the override, not the file.
	if cfg.Bake.ChunkWidth != 32 {
		t.Errorf("expected chunk width 32 from override, got %d", cfg.Bake.ChunkWidth)
	}
	// Output dir comes from the file since no override was given.
	if cfg.Output.Dir != "/from-file" {
		t.Errorf("expected output dir /from-file, got %s", cfg.Output.Dir)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "vatbake.yaml")

	cfg := Default()
	cfg.Bake.ChunkWidth = 99
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Bake.ChunkWidth != 99 {
		t.Errorf("expected chunk width 99 after reload, got %d", loaded.Bake.ChunkWidth)
	}
}

func TestVATMapping(t *testing.T) {
	cfg := Default()
	cfg.Bake.ChunkWidth = 64
	cfg.Bake.MaxVertices = 0 // disabled ceiling passes through

	v := cfg.VAT()
	if v.ChunkWidth != 64 {
		t.Errorf("expected codec chunk width 64, got %d", v.ChunkWidth)
	}
	if v.MaxVertices != 0 {
		t.Errorf("expected codec max vertices 0, got %d", v.MaxVertices)
	}
	if v.MinImageSize != 32 {
		t.Errorf("expected codec min image size 32, got %d", v.MinImageSize)
	}
}
