package yourtts

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/audio"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/engine"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/phonemizer"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/preprocess"
	"github.com/maxpostolatii/voice-cloning-model-test/internal/pkg/voiceclone/tokenizer"
)

const (
	outputSampleRate = 16000
	embeddingDim     = 512
)

var languageIDs = map[string]int64{
	"en":    0,
	"fr-fr": 1,
	"pt-br": 2,
}

func init() {
	engine.Register("yourtts", NewEngine)
}

type Engine struct {
	encoder *ort.DynamicAdvancedSession
	synth   *ort.DynamicAdvancedSession

	preprocessor *preprocess.Preprocessor
	phonemizer   *phonemizer.Phonemizer
	tokenizer    *tokenizer.Tokenizer

	cachedRef   *audio.Audio
	cachedEmbed []float32
}

func NewEngine(cfg engine.Config) (engine.Engine, error) {
	modelDir := cfg.ModelPath
	if strings.HasSuffix(modelDir, ".onnx") {
		modelDir = filepath.Dir(modelDir)
	}

	libPath := getOnnxRuntimeLibPath()
	ort.SetSharedLibraryPath(libPath)

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	e := &Engine{
		preprocessor: preprocess.NewPreprocessor(),
		phonemizer:   phonemizer.NewPhonemizer(),
		tokenizer:    tokenizer.NewTokenizer(),
	}

	var err error

	e.encoder, err = ort.NewDynamicAdvancedSession(
		filepath.Join(modelDir, "speaker_encoder.onnx"),
		[]string{"audio"},
		[]string{"embedding"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load speaker_encoder: %w", err)
	}

	e.synth, err = ort.NewDynamicAdvancedSession(
		filepath.Join(modelDir, "synthesizer.onnx"),
		[]string{"input_ids", "speaker", "lang_id", "speed"},
		[]string{"waveform"},
		nil,
	)
	if err != nil {
		e.encoder.Destroy()
		return nil, fmt.Errorf("failed to load synthesizer: %w", err)
	}

	return e, nil
}

func (e *Engine) Synthesize(req engine.Request) (*audio.Audio, error) {
	langID, ok := languageIDs[strings.ToLower(req.Language)]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q (supported: %v)", req.Language, e.Info().Languages)
	}

	if req.Reference == nil {
		return nil, fmt.Errorf("reference audio is required for voice cloning")
	}

	speaker, err := e.embedReference(req.Reference)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reference audio: %w", err)
	}

	processed := e.preprocessor.Process(req.Text)
	phonemes := e.phonemizer.Phonemize(processed, req.Language)
	tokens := e.tokenizer.Encode(phonemes)
	if len(tokens) <= 1 {
		return nil, fmt.Errorf("failed to tokenize text")
	}

	inputIdsTensor, err := ort.NewTensor(ort.NewShape(1, int64(len(tokens))), tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	defer inputIdsTensor.Destroy()

	speakerTensor, err := ort.NewTensor(ort.NewShape(1, embeddingDim), speaker)
	if err != nil {
		return nil, fmt.Errorf("failed to create speaker tensor: %w", err)
	}
	defer speakerTensor.Destroy()

	langTensor, err := ort.NewTensor(ort.NewShape(1), []int64{langID})
	if err != nil {
		return nil, fmt.Errorf("failed to create lang_id tensor: %w", err)
	}
	defer langTensor.Destroy()

	speedTensor, err := ort.NewTensor(ort.NewShape(1), []float32{req.Speed})
	if err != nil {
		return nil, fmt.Errorf("failed to create speed tensor: %w", err)
	}
	defer speedTensor.Destroy()

	inputs := []ort.Value{inputIdsTensor, speakerTensor, langTensor, speedTensor}
	outputs := make([]ort.Value, 1)

	if err := e.synth.Run(inputs, outputs); err != nil {
		return nil, fmt.Errorf("failed to run synthesizer: %w", err)
	}

	if outputs[0] == nil {
		return nil, fmt.Errorf("no output from synthesizer")
	}
	defer outputs[0].Destroy()

	outputTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected synthesizer output type")
	}

	samples := append([]float32(nil), outputTensor.GetData()...)
	return audio.New(samples, outputSampleRate), nil
}

// embedReference runs the speaker encoder. The result is cached so a batch
// over one reference WAV encodes it a single time.
func (e *Engine) embedReference(ref *audio.Audio) ([]float32, error) {
	if e.cachedRef == ref && e.cachedEmbed != nil {
		return e.cachedEmbed, nil
	}

	if len(ref.Samples) == 0 {
		return nil, fmt.Errorf("reference audio is empty")
	}

	audioTensor, err := ort.NewTensor(ort.NewShape(1, 1, int64(len(ref.Samples))), ref.Samples)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio tensor: %w", err)
	}
	defer audioTensor.Destroy()

	inputs := []ort.Value{audioTensor}
	outputs := make([]ort.Value, 1)

	if err := e.encoder.Run(inputs, outputs); err != nil {
		return nil, fmt.Errorf("failed to run speaker encoder: %w", err)
	}

	if outputs[0] == nil {
		return nil, fmt.Errorf("no output from speaker encoder")
	}
	defer outputs[0].Destroy()

	outputTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected speaker encoder output type")
	}

	embed := append([]float32(nil), outputTensor.GetData()...)
	if len(embed) != embeddingDim {
		return nil, fmt.Errorf("speaker embedding has %d values, want %d", len(embed), embeddingDim)
	}

	e.cachedRef = ref
	e.cachedEmbed = embed
	return embed, nil
}

func (e *Engine) Info() engine.EngineInfo {
	langs := make([]string, 0, len(languageIDs))
	for code := range languageIDs {
		langs = append(langs, code)
	}
	sort.Strings(langs)

	return engine.EngineInfo{
		Name:       "yourtts",
		Languages:  langs,
		SampleRate: outputSampleRate,
	}
}

func (e *Engine) Close() error {
	var lastErr error

	if e.encoder != nil {
		if err := e.encoder.Destroy(); err != nil {
			lastErr = err
		}
	}
	if e.synth != nil {
		if err := e.synth.Destroy(); err != nil {
			lastErr = err
		}
	}

	if err := ort.DestroyEnvironment(); err != nil {
		lastErr = err
	}

	return lastErr
}
