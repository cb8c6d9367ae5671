package summarize

import "sync"

// ModelCache owns the process-wide embedding model. The model is
// expensive to load, so it is loaded lazily on first use; sync.Once
// blocks concurrent first callers until one load completes, after
// which the shared handle is immutable.
type ModelCache struct {
	modelPath     string
	tokenizerPath string
	libraryPath   string

	once  sync.Once
	model *EmbeddingModel
	err   error
}

// NewModelCache records the model file locations without touching them.
func NewModelCache(modelPath, tokenizerPath, libraryPath string) *ModelCache {
	return &ModelCache{
		modelPath:     modelPath,
		tokenizerPath: tokenizerPath,
		libraryPath:   libraryPath,
	}
}

// Get returns the shared embedding model, loading it on the first call.
// A failed load is sticky: later callers see the same error rather than
// retrying a load that cannot succeed.
func (c *ModelCache) Get() (Embedder, error) {
	c.once.Do(func() {
		c.model, c.err = LoadEmbeddingModel(c.modelPath, c.tokenizerPath, c.libraryPath)
	})
	if c.err != nil {
		return nil, c.err
	}
	return c.model, nil
}

// Embed resolves the shared model on first use and delegates to it.
// This keeps the lazy load invisible to callers: a load failure flows
// into the summarizer's fallback path like any other embedding error.
func (c *ModelCache) Embed(texts []string) ([][]float32, error) {
	m, err := c.Get()
	if err != nil {
		return nil, err
	}
	return m.Embed(texts)
}

// Close releases the model if it was ever loaded.
func (c *ModelCache) Close() error {
	if c.model != nil {
		return c.model.Close()
	}
	return nil
}
