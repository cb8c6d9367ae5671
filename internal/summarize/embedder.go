package summarize

import (
	"fmt"

	tokenizer "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// Embedder turns sentences into fixed-dimension vectors. The ONNX
// model satisfies it in production; tests substitute their own.
type Embedder interface {
	Embed(texts []string) ([][]float32, error)
}

// EmbeddingModel runs a MiniLM-class sentence encoder through ONNX
// Runtime. Immutable after load; inference calls are safe to share
// across requests.
type EmbeddingModel struct {
	tok     *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
}

// LoadEmbeddingModel initializes ONNX Runtime and loads the encoder
// and its tokenizer from disk. libraryPath optionally points at the
// onnxruntime shared library when it is not on the default search path.
func LoadEmbeddingModel(modelPath, tokenizerPath, libraryPath string) (*EmbeddingModel, error) {
	tok, err := pretrained.FromFile(tokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}

	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}
	defer opts.Destroy()

	if err := opts.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableAll); err != nil {
		return nil, fmt.Errorf("failed to set graph optimization: %w", err)
	}
	if err := opts.SetIntraOpNumThreads(0); err != nil {
		return nil, fmt.Errorf("failed to set thread count: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"last_hidden_state"},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &EmbeddingModel{tok: tok, session: session}, nil
}

// Embed encodes texts as one padded batch and returns the [CLS] token
// embedding for each input.
func (m *EmbeddingModel) Embed(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	inputs := make([]tokenizer.EncodeInput, len(texts))
	for i, t := range texts {
		inputs[i] = tokenizer.NewSingleEncodeInput(tokenizer.NewInputSequence(t))
	}

	encodings, err := m.tok.EncodeBatch(inputs, true)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	maxLen := 0
	for _, enc := range encodings {
		if l := len(enc.GetIds()); l > maxLen {
			maxLen = l
		}
	}

	batchSize := len(encodings)
	inputIds := make([]int64, batchSize*maxLen)
	attentionMask := make([]int64, batchSize*maxLen)
	tokenTypeIds := make([]int64, batchSize*maxLen)

	for i, enc := range encodings {
		ids := enc.GetIds()
		mask := enc.GetAttentionMask()
		offset := i * maxLen
		for j := 0; j < len(ids); j++ {
			inputIds[offset+j] = int64(ids[j])
			attentionMask[offset+j] = int64(mask[j])
		}
	}

	shape := ort.NewShape(int64(batchSize), int64(maxLen))

	inputIdsTensor, err := ort.NewTensor(shape, inputIds)
	if err != nil {
		return nil, fmt.Errorf("failed to create input_ids tensor: %w", err)
	}
	defer inputIdsTensor.Destroy()

	attentionMaskTensor, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return nil, fmt.Errorf("failed to create attention_mask tensor: %w", err)
	}
	defer attentionMaskTensor.Destroy()

	tokenTypeIdsTensor, err := ort.NewTensor(shape, tokenTypeIds)
	if err != nil {
		return nil, fmt.Errorf("failed to create token_type_ids tensor: %w", err)
	}
	defer tokenTypeIdsTensor.Destroy()

	outputs := make([]ort.Value, 1)
	err = m.session.Run(
		[]ort.Value{inputIdsTensor, attentionMaskTensor, tokenTypeIdsTensor},
		outputs,
	)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	defer outputs[0].Destroy()

	outputTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("output tensor is not float32")
	}

	outputShape := outputTensor.GetShape()
	seqLen := outputShape[1]
	hiddenDim := outputShape[2]
	data := outputTensor.GetData()

	// Copy each [CLS] vector out before the tensor is destroyed.
	embeddings := make([][]float32, batchSize)
	for i := int64(0); i < int64(batchSize); i++ {
		start := i * seqLen * hiddenDim
		embeddings[i] = make([]float32, hiddenDim)
		copy(embeddings[i], data[start:start+hiddenDim])
	}
	return embeddings, nil
}

// Close releases the session and the ONNX environment.
func (m *EmbeddingModel) Close() error {
	if m.session != nil {
		m.session.Destroy()
	}
	ort.DestroyEnvironment()
	return nil
}
