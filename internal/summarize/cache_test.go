package summarize

import (
	"path/filepath"
	"testing"
)

func TestModelCacheLoadFailureIsSticky(t *testing.T) {
	dir := t.TempDir()
	cache := NewModelCache(
		filepath.Join(dir, "missing.onnx"),
		filepath.Join(dir, "missing-tokenizer.json"),
		"",
	)

	if _, err := cache.Get(); err == nil {
		t.Fatal("expected load error for missing model files")
	}
	// Subsequent calls must report the same failure, not retry.
	_, err1 := cache.Get()
	_, err2 := cache.Get()
	if err1 == nil || err2 == nil {
		t.Fatal("load error should be sticky")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("errors differ across calls: %q vs %q", err1, err2)
	}

	if _, err := cache.Embed([]string{"a sentence"}); err == nil {
		t.Error("Embed should surface the load error")
	}

	if err := cache.Close(); err != nil {
		t.Errorf("Close on never-loaded cache: %v", err)
	}
}

func TestSummarizeFallsBackWhenCacheUnloadable(t *testing.T) {
	dir := t.TempDir()
	cache := NewModelCache(
		filepath.Join(dir, "missing.onnx"),
		filepath.Join(dir, "missing-tokenizer.json"),
		"",
	)

	transcript := "Sentence number one. Sentence number two. Sentence number three. " +
		"Sentence number four. Sentence number five. Sentence number six."
	res := Summarize(cache, transcript, 5)
	if !res.Fallback {
		t.Error("expected fallback when the embedding model cannot load")
	}
}
