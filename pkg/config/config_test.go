package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Davincible/gf2m/pkg/gf2m"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *ConfigManager {
	t.Helper()
	cm, err := NewConfigManagerAt(filepath.Join(t.TempDir(), "gf2m", "config.json"))
	require.NoError(t, err)
	return cm
}

func TestNewConfigManager_CreatesDefault(t *testing.T) {
	cm := newTestManager(t)

	assert.FileExists(t, cm.Path())
	assert.Equal(t, DefaultConfig(), cm.GetConfig())
}

func TestConfigRoundTrip(t *testing.T) {
	cm := newTestManager(t)

	cfg := cm.GetConfig()
	cfg.Defaults.Degree = 163
	cfg.Defaults.Format = "hex"
	cfg.UI.UseColor = false
	cm.SetConfig(cfg)
	require.NoError(t, cm.SaveConfig())

	reloaded, err := NewConfigManagerAt(cm.Path())
	require.NoError(t, err)
	assert.Equal(t, 163, reloaded.GetConfig().Defaults.Degree)
	assert.Equal(t, "hex", reloaded.GetConfig().Defaults.Format)
	assert.False(t, reloaded.GetConfig().UI.UseColor)
}

func TestConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewConfigManagerAt(path)
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("GF2M_CONFIG", "/tmp/custom.json")
	path, err := getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", path)

	t.Setenv("GF2M_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err = getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "gf2m", "config.json"), path)
}

func TestProfiles(t *testing.T) {
	cm := newTestManager(t)

	err := cm.AddProfile(&FieldProfile{
		Name:        "alt8",
		Description: "alternate GF(2^8)",
		Modulus:     "x^8 + x^4 + x^3 + x^2 + 1",
	})
	require.NoError(t, err)

	profile, err := cm.GetProfile("alt8")
	require.NoError(t, err)
	assert.Equal(t, 8, profile.Degree)
	assert.Equal(t, "0x11d", profile.Modulus)

	field, err := profile.Field()
	require.NoError(t, err)
	assert.Equal(t, "0x11d", field.Modulus().Hex())

	// persisted next to the config
	reloaded, err := NewConfigManagerAt(cm.Path())
	require.NoError(t, err)
	_, err = reloaded.GetProfile("alt8")
	require.NoError(t, err)

	require.NoError(t, reloaded.DeleteProfile("alt8"))
	_, err = reloaded.GetProfile("alt8")
	assert.Error(t, err)
	assert.Error(t, reloaded.DeleteProfile("alt8"))
}

func TestAddProfile_Rejects(t *testing.T) {
	cm := newTestManager(t)

	tests := []struct {
		name    string
		profile FieldProfile
	}{
		{"empty name", FieldProfile{Modulus: "0x11b"}},
		{"bad modulus", FieldProfile{Name: "bad", Modulus: "x^^"}},
		{"reducible", FieldProfile{Name: "red", Modulus: "x^8 + 1"}},
		{"degree mismatch", FieldProfile{Name: "mis", Degree: 7, Modulus: "0x11b"}},
		{"constant", FieldProfile{Name: "one", Modulus: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.profile
			assert.Error(t, cm.AddProfile(&p))
		})
	}

	err := cm.AddProfile(&FieldProfile{Name: "red", Modulus: "x^8 + 1"})
	assert.ErrorIs(t, err, gf2m.ErrReducibleModulus)
}

func TestBuiltinProfiles(t *testing.T) {
	cm := newTestManager(t)

	aes, err := cm.GetProfile("aes")
	require.NoError(t, err)
	assert.Equal(t, "0x11b", aes.Modulus)

	b163, err := cm.GetProfile("b163")
	require.NoError(t, err)
	assert.Equal(t, 163, b163.Degree)

	// saved profiles shadow builtins
	require.NoError(t, cm.AddProfile(&FieldProfile{Name: "aes", Modulus: "0x11d"}))
	aes, err = cm.GetProfile("aes")
	require.NoError(t, err)
	assert.Equal(t, "0x11d", aes.Modulus)

	names := map[string]int{}
	for _, p := range cm.ListProfiles() {
		names[p.Name]++
	}
	assert.Equal(t, 1, names["aes"])
	assert.Equal(t, 1, names["b571"])
}
