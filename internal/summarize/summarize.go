package summarize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Shahnasha/audio-summarizer/models"
)

// Result is the outcome of one summarization. Fallback is true when
// embedding or scoring failed and the first-k construction was used
// instead; Err then carries the cause for logging. The error is never
// surfaced to the client.
type Result struct {
	Summary    string
	Highlights []models.Highlight
	Fallback   bool
	Err        error
}

// SplitSentences splits text after runs of sentence-ending punctuation
// followed by whitespace, trims each piece, and drops empty pieces and
// pieces of 3 characters or fewer.
func SplitSentences(text string) []string {
	var parts []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if !isTerminator(runes[i]) {
			continue
		}
		// Consume the rest of the punctuation run, then cut only when
		// whitespace (or end of input) follows, so "3.14" stays whole.
		j := i + 1
		for j < len(runes) && isTerminator(runes[j]) {
			b.WriteRune(runes[j])
			j++
		}
		if j >= len(runes) || unicode.IsSpace(runes[j]) {
			parts = append(parts, b.String())
			b.Reset()
		}
		i = j - 1
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}

	var sentences []string
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if len([]rune(s)) > 3 {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Summarize selects the topK sentences of text most similar to the
// document's mean embedding. With topK or fewer sentences no embedding
// call is made: scoring is meaningless when nothing is being filtered.
func Summarize(e Embedder, text string, topK int) Result {
	sentences := SplitSentences(text)

	if len(sentences) == 0 {
		return Result{Summary: "", Highlights: []models.Highlight{}}
	}

	if len(sentences) <= topK {
		highlights := make([]models.Highlight, len(sentences))
		for i, s := range sentences {
			highlights[i] = models.Highlight{Sentence: s, Score: 1.0}
		}
		return Result{Summary: strings.TrimSpace(text), Highlights: highlights}
	}

	scores, err := scoreSentences(e, sentences)
	if err != nil {
		return fallbackResult(sentences, topK, err)
	}

	// Rank by score descending; ties go to the lower original index so
	// selection is deterministic.
	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if scores[idx[a]] != scores[idx[b]] {
			return scores[idx[a]] > scores[idx[b]]
		}
		return idx[a] < idx[b]
	})
	top := idx[:topK]

	highlights := make([]models.Highlight, topK)
	for i, sentIdx := range top {
		highlights[i] = models.Highlight{Sentence: sentences[sentIdx], Score: scores[sentIdx]}
	}

	ordered := make([]int, topK)
	copy(ordered, top)
	sort.Ints(ordered)

	parts := make([]string, topK)
	for i, sentIdx := range ordered {
		parts[i] = sentences[sentIdx]
	}

	return Result{Summary: strings.Join(parts, " "), Highlights: highlights}
}

// scoreSentences embeds every sentence and scores each one by cosine
// similarity to the mean of all sentence vectors.
func scoreSentences(e Embedder, sentences []string) ([]float64, error) {
	if e == nil {
		return nil, errors.New("embedding model not configured")
	}
	embeddings, err := e.Embed(sentences)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(sentences) {
		return nil, errors.New("embedding count does not match sentence count")
	}

	dim := len(embeddings[0])
	doc := make([]float64, dim)
	for _, emb := range embeddings {
		for i, v := range emb {
			doc[i] += float64(v)
		}
	}
	for i := range doc {
		doc[i] /= float64(len(embeddings))
	}

	scores := make([]float64, len(embeddings))
	for i, emb := range embeddings {
		scores[i] = cosine(emb, doc)
	}
	return scores, nil
}

func cosine(a []float32, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		av := float64(a[i])
		dot += av * b[i]
		na += av * av
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func fallbackResult(sentences []string, topK int, err error) Result {
	first := sentences
	if len(first) > topK {
		first = first[:topK]
	}
	highlights := make([]models.Highlight, len(first))
	for i, s := range first {
		highlights[i] = models.Highlight{Sentence: s, Score: 0.0}
	}
	return Result{
		Summary:    strings.Join(first, " "),
		Highlights: highlights,
		Fallback:   true,
		Err:        err,
	}
}
