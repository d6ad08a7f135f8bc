package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// mapBackend is an in-memory Backend for tests.
type mapBackend struct {
	strings map[string]string
	ints    map[string]int
}

func (m *mapBackend) GetString(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *mapBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *mapBackend) SetString(key, val string) error { m.strings[key] = val; return nil }
func (m *mapBackend) SetInt(key string, val int) error { m.ints[key] = val; return nil }
func (m *mapBackend) Delete(key string) error          { return nil }

func emptyBackend() *mapBackend {
	return &mapBackend{strings: map[string]string{}, ints: map[string]int{}}
}

func TestDefaults(t *testing.T) {
	cfg, err := loadWith(emptyBackend())
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}

	if cfg.Server.Port != 4600 {
		t.Errorf("default port = %d, want 4600", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Storage.DataDir == "" {
		t.Error("default data dir is empty")
	}
}

func TestBackendOverridesDefaults(t *testing.T) {
	b := emptyBackend()
	b.ints["server.port"] = 9999
	b.strings["log.level"] = "debug"
	b.strings["resume.path"] = "/tmp/cv.pdf"

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if !cfg.LogLevelDebug() {
		t.Error("log level should be debug")
	}
	if cfg.Resume.Path != "/tmp/cv.pdf" {
		t.Errorf("resume path = %q", cfg.Resume.Path)
	}
}

func TestEnvOverridesBackend(t *testing.T) {
	b := emptyBackend()
	b.ints["server.port"] = 9999

	t.Setenv("ASKFOLIO_SERVER_PORT", "7777")
	t.Setenv("ASKFOLIO_LOG_LEVEL", "debug")

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}

	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want env value 7777", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestEnvInvalidIntIgnored(t *testing.T) {
	t.Setenv("ASKFOLIO_SERVER_PORT", "not-a-number")

	cfg, err := loadWith(emptyBackend())
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.Port != 4600 {
		t.Errorf("port = %d, want default 4600 when env is garbage", cfg.Server.Port)
	}
}

func TestAdminTokenEnvOnly(t *testing.T) {
	// The token must never come from the config file backend.
	b := emptyBackend()
	b.strings["server.admin_token"] = "from-file"

	t.Setenv("ASKFOLIO_ADMIN_TOKEN", "")
	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.AdminToken != "" {
		t.Errorf("admin token leaked from file backend: %q", cfg.Server.AdminToken)
	}

	t.Setenv("ASKFOLIO_ADMIN_TOKEN", "from-env")
	cfg, err = loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.Server.AdminToken != "from-env" {
		t.Errorf("admin token = %q, want from-env", cfg.Server.AdminToken)
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	b := newFileBackend(path)

	if err := b.SetString("log.level", "debug"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if err := b.SetInt("server.port", 8080); err != nil {
		t.Fatalf("SetInt: %v", err)
	}

	// Reload from disk.
	b2 := newFileBackend(path)
	s, ok, err := b2.GetString("log.level")
	if err != nil || !ok || s != "debug" {
		t.Errorf("GetString = (%q, %v, %v)", s, ok, err)
	}
	i, ok, err := b2.GetInt("server.port")
	if err != nil || !ok || i != 8080 {
		t.Errorf("GetInt = (%d, %v, %v)", i, ok, err)
	}

	if err := b2.Delete("log.level"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	b3 := newFileBackend(path)
	if _, ok, _ := b3.GetString("log.level"); ok {
		t.Error("deleted key still present after reload")
	}
}

func TestFileBackendMissingFile(t *testing.T) {
	b := newFileBackend(filepath.Join(t.TempDir(), "nope", "config.json"))
	if _, ok, _ := b.GetString("log.level"); ok {
		t.Error("missing file should yield no values")
	}
}

func TestFileBackendIntFromFloat(t *testing.T) {
	// JSON numbers decode as float64; whole values must convert cleanly.
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server.port": 4601}`), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	b := newFileBackend(path)
	v, ok, err := b.GetInt("server.port")
	if err != nil || !ok || v != 4601 {
		t.Errorf("GetInt = (%d, %v, %v), want 4601", v, ok, err)
	}
}

func TestSetKeyRejectsSecret(t *testing.T) {
	if err := SetKey("server.admin_token", "oops"); err == nil {
		t.Error("setting a secret via SetKey must fail")
	}
}

func TestSetKeyUnknown(t *testing.T) {
	err := SetKey("no.such.key", "v")
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("error %v should wrap ErrUnknownKey", err)
	}
}

func TestValidKeysExcludeSecrets(t *testing.T) {
	for _, k := range ValidKeys() {
		if k == "server.admin_token" {
			t.Error("secret key listed in ValidKeys")
		}
	}
	if len(ValidKeys()) != 5 {
		t.Errorf("ValidKeys = %v, want 5 entries", ValidKeys())
	}
}
