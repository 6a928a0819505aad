package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/audio"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/batch"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/config"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/corpus"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/engine"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/player"

	_ "github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/backends/yourtts"
)

func main() {
	fmt.Fprintf(os.Stderr, "voiceclone %s\n", Version)

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadAndParse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse configuration")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup logging")
	}

	log.Debug().
		Str("variant", cfg.Variant).
		Str("model", cfg.ModelPath).
		Str("backend", cfg.Backend).
		Str("speaker_wav", cfg.SpeakerWAV).
		Str("input_csv", cfg.InputCSV).
		Str("outdir", cfg.OutDir).
		Float32("speed", cfg.Speed).
		Msg("Configuration loaded")

	if !cfg.ListLanguages {
		if _, err := os.Stat(cfg.SpeakerWAV); err != nil {
			log.Fatal().Err(err).Str("speaker_wav", cfg.SpeakerWAV).Msg("Speaker WAV not found")
		}
	}

	log.Info().Str("backend", cfg.Backend).Str("model", cfg.ModelPath).Msg("Loading model...")
	eng, err := engine.New(cfg.Backend, engine.Config{ModelPath: cfg.ModelPath})
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend).Msg("Failed to load engine")
	}
	defer eng.Close()

	info := eng.Info()
	log.Debug().
		Str("engine", info.Name).
		Strs("languages", info.Languages).
		Int("sample_rate", info.SampleRate).
		Msg("Engine loaded")

	if cfg.ListLanguages {
		fmt.Fprintf(os.Stderr, "Backend: %s\n", info.Name)
		fmt.Fprintf(os.Stderr, "Languages: %s\n", strings.Join(info.Languages, ", "))
		return
	}

	log.Info().Str("reference", cfg.SpeakerWAV).Msg("Loading reference audio...")
	ref, err := audio.LoadWAV(cfg.SpeakerWAV)
	if err != nil {
		log.Fatal().Err(err).Str("reference", cfg.SpeakerWAV).Msg("Failed to load reference audio")
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatal().Err(err).Str("outdir", cfg.OutDir).Msg("Failed to create output directory")
	}

	runner := batch.New(eng, ref, cfg.OutDir, cfg.Speed)
	startTime := time.Now()

	var paths []string
	switch cfg.Variant {
	case "simple":
		paths, err = runner.Simple(cfg.Language)
	case "detailed":
		paths, err = loadAndRun(cfg, func(rows []corpus.Row) ([]string, error) {
			return runner.Detailed(rows, cfg.Language)
		})
	case "advanced":
		paths, err = loadAndRun(cfg, func(rows []corpus.Row) ([]string, error) {
			return runner.Advanced(rows, cfg.Languages())
		})
	}
	if err != nil {
		log.Fatal().Err(err).Str("variant", cfg.Variant).Msg("Synthesis failed")
	}

	log.Info().
		Int("clips", len(paths)).
		Dur("elapsed", time.Since(startTime)).
		Str("outdir", cfg.OutDir).
		Msg("Done")

	if cfg.Play && len(paths) > 0 {
		log.Info().Str("clip", paths[0]).Msg("Playing first clip...")
		if err := player.Play(paths[0]); err != nil {
			log.Fatal().Err(err).Msg("Failed to play audio")
		}
	}
}

func loadAndRun(cfg *config.Config, run func([]corpus.Row) ([]string, error)) ([]string, error) {
	rows, err := corpus.Load(cfg.InputCSV)
	if err != nil {
		return nil, err
	}
	log.Info().Int("rows", len(rows)).Str("input_csv", cfg.InputCSV).Msg("Corpus loaded")
	return run(rows)
}

func setupLogging(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}
