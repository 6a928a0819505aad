package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Variant       string  `mapstructure:"variant"`
	SpeakerWAV    string  `mapstructure:"speaker_wav"`
	InputCSV      string  `mapstructure:"input_csv"`
	OutDir        string  `mapstructure:"outdir"`
	ModelPath     string  `mapstructure:"model_path"`
	Backend       string  `mapstructure:"backend"`
	Language      string  `mapstructure:"language"`
	Langs         string  `mapstructure:"langs"`
	Speed         float32 `mapstructure:"speed"`
	Play          bool    `mapstructure:"play"`
	ListLanguages bool    `mapstructure:"list_languages"`
	LogLevel      string  `mapstructure:"log_level"`
	LogFile       string  `mapstructure:"log_file"`
}

// Languages returns the advanced-variant language list, with blank entries
// dropped.
func (c *Config) Languages() []string {
	var langs []string
	for _, l := range strings.Split(c.Langs, ",") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}

func LoadAndParse() (*Config, error) {
	return loadFrom(os.Args[1:])
}

func loadFrom(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("variant", "simple")
	v.SetDefault("speaker_wav", "sample_voice.wav")
	v.SetDefault("input_csv", "input.csv")
	v.SetDefault("outdir", "outputs")
	v.SetDefault("model_path", "models/yourtts")
	v.SetDefault("backend", "yourtts")
	v.SetDefault("language", "en")
	v.SetDefault("langs", "en,fr-fr,pt-br")
	v.SetDefault("speed", 1.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	flagSet := pflag.NewFlagSet("voiceclone", pflag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.String("variant", "", "Which variant to run (simple, detailed, advanced)")
	flagSet.StringP("speaker-wav", "w", "", "Path to the reference voice WAV")
	flagSet.StringP("input-csv", "i", "", "Path to the input CSV (detailed/advanced)")
	flagSet.StringP("outdir", "o", "", "Output directory for WAV files")
	flagSet.StringP("model", "m", "", "Path to the model directory")
	flagSet.String("backend", "", "Synthesis backend")
	flagSet.String("language", "", "Language code for simple/detailed (e.g. 'en', 'fr-fr')")
	flagSet.String("langs", "", "Comma-separated language codes for advanced")
	flagSet.Float32P("speed", "s", 1.0, "Speech speed (0.5-2.0)")
	flagSet.Bool("play", false, "Play the first rendered clip")
	flagSet.Bool("list-languages", false, "List supported languages and exit")
	flagSet.StringP("log-level", "l", "", "Log level (debug, info, warn, error)")
	flagSet.String("log-file", "", "Log file path")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(os.Stderr, "Usage: voiceclone [options]\n\nOptions:\n")
		flagSet.PrintDefaults()
		os.Exit(0)
	}

	bindings := map[string]string{
		"variant":        "variant",
		"speaker_wav":    "speaker-wav",
		"input_csv":      "input-csv",
		"outdir":         "outdir",
		"model_path":     "model",
		"backend":        "backend",
		"language":       "language",
		"langs":          "langs",
		"speed":          "speed",
		"play":           "play",
		"list_languages": "list-languages",
		"log_level":      "log-level",
		"log_file":       "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flagSet.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("voiceclone.cfg")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "voiceclone"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("VOICECLONE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Variant {
	case "simple", "detailed", "advanced":
	default:
		return fmt.Errorf("unknown variant %q (want simple, detailed, or advanced)", c.Variant)
	}

	if c.Speed < 0.5 || c.Speed > 2.0 {
		return fmt.Errorf("speed must be between 0.5 and 2.0")
	}

	if c.Variant == "advanced" && len(c.Languages()) == 0 {
		return fmt.Errorf("no languages provided for advanced variant")
	}

	return nil
}
