// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for eulogio.
//
// Configuration is read from ~/.eulogio/config.toml with sensible defaults
// and environment variable overrides for credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete eulogio configuration.
type Config struct {
	// Gemini provider settings
	Gemini GeminiConfig `toml:"gemini"`

	// Storage settings
	Storage StorageConfig `toml:"storage"`

	// Logging settings
	Log LogConfig `toml:"log"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// GeminiConfig contains generation provider configuration.
type GeminiConfig struct {
	// APIKey is the Gemini API key. The GEMINI_API_KEY environment
	// variable takes precedence over the file value. An empty key is
	// legal: the app runs with the provider unavailable.
	APIKey string `toml:"api_key"`

	// Model is the generation model name.
	Model string `toml:"model"`

	// SystemInstruction is the persona prompt sent with every session.
	// Empty selects the built-in Eulogio persona.
	SystemInstruction string `toml:"system_instruction"`
}

// StorageConfig contains conversation persistence configuration.
type StorageConfig struct {
	// Path is the JSON file holding all stored conversations.
	// Default: ~/.eulogio/conversations.json
	Path string `toml:"path"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Path is the log file location. Default: ~/.eulogio/eulogio.log
	// The TUI owns stdout, so logs always go to a file.
	Path string `toml:"path"`

	// Debug enables debug-level logging.
	Debug bool `toml:"debug"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// SidebarVisible controls whether the conversation list pane starts open.
	SidebarVisible bool `toml:"sidebar_visible"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultSystemInstruction is the built-in Eulogio persona: a veteran,
// slightly grumpy Spanish social worker. It instructs the model to answer
// the synthetic opening "Hola" with a self-introduction, and to emit
// strict, fence-free HTML.
const DefaultSystemInstruction = "INSTRUCCIÓN ESPECIAL PARA TU PRIMERA RESPUESTA: Cuando recibas el mensaje " +
	"'Hola' como el PRIMER mensaje de una nueva conversación (este 'Hola' NO debe mostrarse al usuario), tu " +
	"primera respuesta visible DEBE ser una auto-presentación y una oferta de ayuda, formateada en HTML.\n\n" +
	"RESTO DE LA PERSONALIDAD: Tu nombre es Eulogio. Eres un trabajador social con amplia experiencia en " +
	"intervención social, exclusión y servicios sociales. Te riges por el código deontológico de la profesión. " +
	"Eres un poco gruñón y sarcástico, pero un gran profesional. Argumenta tus respuestas y usa lenguaje " +
	"técnico. No pases de 3500 caracteres.\n\n" +
	"REGLAS DE FORMATO HTML ESTRICTAS: usa <strong>/<em> en lugar de asteriscos, <h4> para secciones " +
	"numeradas, <p> para párrafos y <ul>/<ol> para listas. NO envuelvas la respuesta en bloques de código " +
	"Markdown (``` ... ```); la salida debe ser HTML puro y directo."

// DefaultDirName is the per-user data directory name.
const DefaultDirName = ".eulogio"

// Defaults returns the built-in default configuration rooted at dataDir.
func Defaults(dataDir string) Config {
	return Config{
		Gemini: GeminiConfig{
			Model:             DefaultModel,
			SystemInstruction: DefaultSystemInstruction,
		},
		Storage: StorageConfig{
			Path: filepath.Join(dataDir, "conversations.json"),
		},
		Log: LogConfig{
			Path: filepath.Join(dataDir, "eulogio.log"),
		},
		UI: UIConfig{
			SidebarVisible: true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// DataDir returns the per-user data directory, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, DefaultDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// Load reads configuration from the default location, applying defaults and
// environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	dir, err := DataDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"), dir)
}

// LoadFrom reads configuration from an explicit path, rooting defaults at
// dataDir. Used directly by tests.
func LoadFrom(path, dataDir string) (Config, error) {
	cfg := Defaults(dataDir)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyFallbacks(&cfg, dataDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win for credentials.
func applyEnvOverrides(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		cfg.Gemini.APIKey = key
	}
	if os.Getenv("EULOGIO_DEBUG") == "1" {
		cfg.Log.Debug = true
	}
}

// applyFallbacks restores defaults for fields a config file blanked out.
func applyFallbacks(cfg *Config, dataDir string) {
	def := Defaults(dataDir)
	if strings.TrimSpace(cfg.Gemini.Model) == "" {
		cfg.Gemini.Model = def.Gemini.Model
	}
	if strings.TrimSpace(cfg.Gemini.SystemInstruction) == "" {
		cfg.Gemini.SystemInstruction = def.Gemini.SystemInstruction
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if strings.TrimSpace(cfg.Log.Path) == "" {
		cfg.Log.Path = def.Log.Path
	}
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if !filepath.IsAbs(c.Storage.Path) {
		return fmt.Errorf("storage path must be absolute: %q", c.Storage.Path)
	}
	if !filepath.IsAbs(c.Log.Path) {
		return fmt.Errorf("log path must be absolute: %q", c.Log.Path)
	}
	return nil
}

// HasCredentials reports whether a provider API key is configured.
func (c Config) HasCredentials() bool {
	return strings.TrimSpace(c.Gemini.APIKey) != ""
}
