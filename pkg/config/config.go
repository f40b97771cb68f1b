// Package config provides configuration management for the gf2m CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Davincible/gf2m/pkg/gf2m"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Degree  int    `json:"degree"`  // Default: 8
	Format  string `json:"format"`  // text, bits, hex, coeffs
	Profile string `json:"profile"` // Profile used when no field flags are given
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// FieldProfile is a saved field definition for quick access
type FieldProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Degree      int      `json:"degree"`
	Modulus     string   `json:"modulus"` // hex form, bit i is the coefficient of x^i
	Tags        []string `json:"tags"`
}

// Field builds the field described by the profile, verifying its modulus.
func (p *FieldProfile) Field() (*gf2m.Field, error) {
	modulus, err := gf2m.Parse(p.Modulus)
	if err != nil {
		return nil, fmt.Errorf("profile '%s': invalid modulus: %w", p.Name, err)
	}

	if p.Degree != 0 && modulus.Degree() != p.Degree {
		return nil, fmt.Errorf("profile '%s': modulus has degree %d, expected %d",
			p.Name, modulus.Degree(), p.Degree)
	}

	field, err := gf2m.NewFieldFromModulus(modulus)
	if err != nil {
		return nil, fmt.Errorf("profile '%s': %w", p.Name, err)
	}
	return field, nil
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	profiles   map[string]*FieldProfile
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt creates a configuration manager backed by the given file
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: configPath,
		profiles:   make(map[string]*FieldProfile),
	}

	// Load or create default config
	if err := cm.LoadConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	// Profiles are optional, so we don't fail here
	if err := cm.LoadProfiles(); err != nil {
		cm.profiles = make(map[string]*FieldProfile)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Degree:  8,
			Format:  "text",
			Profile: "",
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
	}
}

// BuiltinProfiles returns the standard fields available without configuration
func BuiltinProfiles() []*FieldProfile {
	builtins := []struct {
		name, description string
		degree            int
	}{
		{"aes", "AES / Rijndael field", 8},
		{"gcm", "GHASH field of AES-GCM", 128},
		{"b163", "NIST B-163 and K-163 curve field", 163},
		{"b233", "NIST B-233 and K-233 curve field", 233},
		{"b283", "NIST B-283 and K-283 curve field", 283},
		{"b409", "NIST B-409 and K-409 curve field", 409},
		{"b571", "NIST B-571 and K-571 curve field", 571},
	}

	profiles := make([]*FieldProfile, 0, len(builtins))
	for _, b := range builtins {
		modulus, err := gf2m.Irreducible(b.degree)
		if err != nil {
			continue
		}
		profiles = append(profiles, &FieldProfile{
			Name:        b.name,
			Description: b.description,
			Degree:      b.degree,
			Modulus:     modulus.Hex(),
			Tags:        []string{"builtin"},
		})
	}
	return profiles
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

func (cm *ConfigManager) profilesPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "profiles.json")
}

// LoadProfiles loads saved field profiles
func (cm *ConfigManager) LoadProfiles() error {
	data, err := os.ReadFile(cm.profilesPath())
	if err != nil {
		if os.IsNotExist(err) {
			// Profiles file doesn't exist yet
			return nil
		}
		return err
	}

	profiles := make(map[string]*FieldProfile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("failed to parse profiles: %w", err)
	}

	cm.profiles = profiles
	return nil
}

// SaveProfiles saves field profiles to disk
func (cm *ConfigManager) SaveProfiles() error {
	data, err := json.MarshalIndent(cm.profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cm.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(cm.profilesPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	return nil
}

// AddProfile verifies and saves a field profile
func (cm *ConfigManager) AddProfile(profile *FieldProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	field, err := profile.Field()
	if err != nil {
		return err
	}

	// store the canonical modulus so equivalent inputs compare equal
	profile.Degree = field.Degree()
	profile.Modulus = field.Modulus().Hex()

	cm.profiles[profile.Name] = profile
	return cm.SaveProfiles()
}

// GetProfile retrieves a field profile by name, falling back to the builtins
func (cm *ConfigManager) GetProfile(name string) (*FieldProfile, error) {
	if profile, exists := cm.profiles[name]; exists {
		return profile, nil
	}
	for _, profile := range BuiltinProfiles() {
		if profile.Name == name {
			return profile, nil
		}
	}
	return nil, fmt.Errorf("profile '%s' not found", name)
}

// ListProfiles returns saved profiles followed by builtins they do not shadow
func (cm *ConfigManager) ListProfiles() []*FieldProfile {
	profiles := make([]*FieldProfile, 0, len(cm.profiles))
	for _, profile := range cm.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	for _, profile := range BuiltinProfiles() {
		if _, shadowed := cm.profiles[profile.Name]; !shadowed {
			profiles = append(profiles, profile)
		}
	}
	return profiles
}

// DeleteProfile removes a saved field profile
func (cm *ConfigManager) DeleteProfile(name string) error {
	if _, exists := cm.profiles[name]; !exists {
		return fmt.Errorf("profile '%s' not found", name)
	}

	delete(cm.profiles, name)
	return cm.SaveProfiles()
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("GF2M_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gf2m", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "gf2m", "config.json"), nil
}
