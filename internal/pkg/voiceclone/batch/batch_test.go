package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/audio"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/corpus"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/engine"
)

type fakeEngine struct {
	requests []engine.Request
}

func (f *fakeEngine) Synthesize(req engine.Request) (*audio.Audio, error) {
	f.requests = append(f.requests, req)
	return audio.New(make([]float32, 160), 16000), nil
}

func (f *fakeEngine) Info() engine.EngineInfo {
	return engine.EngineInfo{Name: "fake", Languages: []string{"en"}, SampleRate: 16000}
}

func (f *fakeEngine) Close() error { return nil }

func testRef() *audio.Audio {
	return audio.New(make([]float32, 320), 16000)
}

func TestSimple(t *testing.T) {
	eng := &fakeEngine{}
	outDir := t.TempDir()
	ref := testRef()

	paths, err := New(eng, ref, outDir, 1.0).Simple("en")
	if err != nil {
		t.Fatalf("Simple failed: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if filepath.Base(paths[0]) != "simple_demo.wav" {
		t.Errorf("output = %q, want simple_demo.wav", paths[0])
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("output file not written: %v", err)
	}
	if len(eng.requests) != 1 || eng.requests[0].Language != "en" {
		t.Errorf("unexpected requests: %+v", eng.requests)
	}
	if eng.requests[0].Text == "" {
		t.Error("simple variant sent empty text")
	}
}

func TestDetailed(t *testing.T) {
	eng := &fakeEngine{}
	outDir := t.TempDir()
	rows := []corpus.Row{
		{ID: "a1", Text: "Hello there my good old friend indeed"},
		{ID: "2", Text: "Short one"},
	}

	paths, err := New(eng, testRef(), outDir, 1.0).Detailed(rows, "en")
	if err != nil {
		t.Fatalf("Detailed failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}

	want := []string{
		"001_a1_Hello_there_my_good_old_friend.wav",
		"002_2_Short_one.wav",
	}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path %d = %q, want %q", i, filepath.Base(p), want[i])
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("file %d not written: %v", i, err)
		}
	}
}

func TestAdvanced(t *testing.T) {
	eng := &fakeEngine{}
	outDir := t.TempDir()
	rows := []corpus.Row{{ID: "x", Text: "Bonjour tout le monde"}}
	langs := []string{"en", "fr-fr"}

	paths, err := New(eng, testRef(), outDir, 1.0).Advanced(rows, langs)
	if err != nil {
		t.Fatalf("Advanced failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}

	want := []string{
		filepath.Join(outDir, "en", "001_x_Bonjour_tout_le_monde.en.wav"),
		filepath.Join(outDir, "fr-fr", "001_x_Bonjour_tout_le_monde.fr-fr.wav"),
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("path %d = %q, want %q", i, p, want[i])
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("file %d not written: %v", i, err)
		}
	}

	if eng.requests[0].Language != "en" || eng.requests[1].Language != "fr-fr" {
		t.Errorf("language order wrong: %+v", eng.requests)
	}
}

func TestAllRequestsShareReference(t *testing.T) {
	eng := &fakeEngine{}
	ref := testRef()
	rows := []corpus.Row{{ID: "1", Text: "one"}, {ID: "2", Text: "two"}}

	if _, err := New(eng, ref, t.TempDir(), 1.0).Detailed(rows, "en"); err != nil {
		t.Fatalf("Detailed failed: %v", err)
	}
	for i, req := range eng.requests {
		if req.Reference != ref {
			t.Errorf("request %d carries a different reference", i)
		}
	}
}
