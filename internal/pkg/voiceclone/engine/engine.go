package engine

import "github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/audio"

// Request is one synthesis call: text rendered in the voice of Reference.
type Request struct {
	Text      string
	Language  string
	Reference *audio.Audio
	Speed     float32
}

type Engine interface {
	Synthesize(req Request) (*audio.Audio, error)
	Info() EngineInfo
	Close() error
}

type EngineInfo struct {
	Name       string
	Languages  []string
	SampleRate int
}

type Config struct {
	ModelPath string
	Backend   string
}
