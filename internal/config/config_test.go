package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.Mode != ModeOffline {
		t.Errorf("mode = %q, want offline default", cfg.Mode)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("db driver = %q", cfg.DBDriver)
	}
	if cfg.UseSavedTopics {
		t.Error("saved-topics mode should default off")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("BUNDLED_DIR", "/srv/topics")
	t.Setenv("SAVED_DIR", "/var/lib/quizdeck")
	t.Setenv("USE_SAVED_TOPICS", "true")
	t.Setenv("CORS_ORIGINS_ONLINE", "https://a.example.com, https://b.example.com")

	cfg := FromEnv()
	if cfg.Mode != ModeOnline {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.BundledDir != "/srv/topics" || cfg.SavedDir != "/var/lib/quizdeck" {
		t.Errorf("dirs = %q %q", cfg.BundledDir, cfg.SavedDir)
	}
	if !cfg.UseSavedTopics {
		t.Error("USE_SAVED_TOPICS=true not honored")
	}
	if len(cfg.CORSOriginsOnline) != 2 || cfg.CORSOriginsOnline[1] != "https://b.example.com" {
		t.Errorf("cors origins = %v", cfg.CORSOriginsOnline)
	}
}
