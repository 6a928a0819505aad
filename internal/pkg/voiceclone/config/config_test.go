package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := loadFrom(nil)
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.Variant != "simple" {
		t.Errorf("variant = %q, want simple", cfg.Variant)
	}
	if cfg.SpeakerWAV != "sample_voice.wav" {
		t.Errorf("speaker_wav = %q", cfg.SpeakerWAV)
	}
	if cfg.InputCSV != "input.csv" {
		t.Errorf("input_csv = %q", cfg.InputCSV)
	}
	if cfg.OutDir != "outputs" {
		t.Errorf("outdir = %q", cfg.OutDir)
	}
	if cfg.Backend != "yourtts" {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Language != "en" {
		t.Errorf("language = %q", cfg.Language)
	}
	if cfg.Speed != 1.0 {
		t.Errorf("speed = %f", cfg.Speed)
	}
}

func TestFlagsOverrideDefaults(t *testing.T) {
	cfg, err := loadFrom([]string{
		"--variant", "detailed",
		"--speaker-wav", "me.wav",
		"--language", "fr-fr",
		"--speed", "1.5",
	})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.Variant != "detailed" || cfg.SpeakerWAV != "me.wav" || cfg.Language != "fr-fr" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Speed != 1.5 {
		t.Errorf("speed = %f, want 1.5", cfg.Speed)
	}
}

func TestUnknownVariantRejected(t *testing.T) {
	if _, err := loadFrom([]string{"--variant", "turbo"}); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestSpeedBounds(t *testing.T) {
	if _, err := loadFrom([]string{"--speed", "0.1"}); err == nil {
		t.Fatal("expected error for speed below 0.5")
	}
	if _, err := loadFrom([]string{"--speed", "3.0"}); err == nil {
		t.Fatal("expected error for speed above 2.0")
	}
}

func TestAdvancedRequiresLanguages(t *testing.T) {
	if _, err := loadFrom([]string{"--variant", "advanced", "--langs", " , ,"}); err == nil {
		t.Fatal("expected error for advanced variant with no languages")
	}
}

func TestLanguagesSplitting(t *testing.T) {
	cfg, err := loadFrom([]string{"--langs", "en, fr-fr ,,pt-br"})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	langs := cfg.Languages()
	want := []string{"en", "fr-fr", "pt-br"}
	if len(langs) != len(want) {
		t.Fatalf("got %d languages, want %d", len(langs), len(want))
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("language %d = %q, want %q", i, langs[i], want[i])
		}
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voiceclone.toml")
	content := "variant = \"detailed\"\nspeed = 1.25\noutdir = \"rendered\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom([]string{"--config", path})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.Variant != "detailed" || cfg.OutDir != "rendered" {
		t.Errorf("config file not applied: %+v", cfg)
	}
	if cfg.Speed != 1.25 {
		t.Errorf("speed = %f, want 1.25", cfg.Speed)
	}
}

func TestMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("variant = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFrom([]string{"--config", path}); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
