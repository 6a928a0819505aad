package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/audio"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/corpus"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/engine"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/naming"
)

const simpleSentence = "Hello, this is a quick voice cloning test."

// Runner drives one synthesis batch against a single reference voice.
type Runner struct {
	eng    engine.Engine
	ref    *audio.Audio
	outDir string
	speed  float32
}

func New(eng engine.Engine, ref *audio.Audio, outDir string, speed float32) *Runner {
	return &Runner{
		eng:    eng,
		ref:    ref,
		outDir: outDir,
		speed:  speed,
	}
}

// Simple renders one canned sentence to <outdir>/simple_demo.wav.
func (r *Runner) Simple(language string) ([]string, error) {
	outPath := filepath.Join(r.outDir, "simple_demo.wav")
	if err := r.render(simpleSentence, language, outPath); err != nil {
		return nil, err
	}

	log.Info().Str("variant", "simple").Str("output", outPath).Msg("Wrote clip")
	return []string{outPath}, nil
}

// Detailed renders every corpus row in a single language.
func (r *Runner) Detailed(rows []corpus.Row, language string) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(rows))
	for i, row := range rows {
		fname := naming.DetailedName(i+1, naming.Sanitize(row.ID), naming.Slug(row.Text))
		outPath := filepath.Join(r.outDir, fname)

		if err := r.render(row.Text, language, outPath); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		log.Info().
			Str("variant", "detailed").
			Int("row", i+1).
			Int("total", len(rows)).
			Str("output", outPath).
			Msg("Wrote clip")
		paths = append(paths, outPath)
	}

	return paths, nil
}

// Advanced renders every corpus row once per language, each language in its
// own subdirectory.
func (r *Runner) Advanced(rows []corpus.Row, languages []string) ([]string, error) {
	var paths []string
	for i, row := range rows {
		id := naming.Sanitize(row.ID)
		slug := naming.Slug(row.Text)

		for _, lang := range languages {
			subdir := filepath.Join(r.outDir, lang)
			if err := os.MkdirAll(subdir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create output directory: %w", err)
			}

			outPath := filepath.Join(subdir, naming.AdvancedName(i+1, id, slug, lang))
			if err := r.render(row.Text, lang, outPath); err != nil {
				return nil, fmt.Errorf("row %d language %s: %w", i+1, lang, err)
			}

			log.Info().
				Str("variant", "advanced").
				Str("language", lang).
				Int("row", i+1).
				Int("total", len(rows)).
				Str("output", outPath).
				Msg("Wrote clip")
			paths = append(paths, outPath)
		}
	}

	return paths, nil
}

func (r *Runner) render(text, language, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	result, err := r.eng.Synthesize(engine.Request{
		Text:      text,
		Language:  language,
		Reference: r.ref,
		Speed:     r.speed,
	})
	if err != nil {
		return fmt.Errorf("failed to generate audio: %w", err)
	}

	if err := result.SaveWAV(outPath); err != nil {
		return fmt.Errorf("failed to save audio: %w", err)
	}

	log.Debug().
		Dur("elapsed", time.Since(start)).
		Float64("duration_sec", result.Duration()).
		Str("language", language).
		Msg("Audio generated")
	return nil
}
