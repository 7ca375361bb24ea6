package index

import "math"

// BM25L parameters, conventional values for this ranking family.
const (
	paramK1    = 1.5
	paramB     = 0.75
	paramDelta = 0.5
)

// bm25l scores tokenized documents with the BM25L variant of BM25:
// document length enters through the term-frequency saturation and a small
// delta is added to the normalized frequency so short documents are not
// suppressed relative to the corpus average length.
type bm25l struct {
	termFrequencies          []map[string]int
	documentLengths          []int
	averageDocumentLength    float64
	inverseDocumentFrequency map[string]float64
}

func newBM25L(corpus [][]string) *bm25l {
	ranker := &bm25l{
		termFrequencies:          make([]map[string]int, len(corpus)),
		documentLengths:          make([]int, len(corpus)),
		inverseDocumentFrequency: make(map[string]float64),
	}

	documentFrequency := make(map[string]int)
	var totalLength int

	for i, tokens := range corpus {
		ranker.documentLengths[i] = len(tokens)
		totalLength += len(tokens)

		termFrequency := make(map[string]int, len(tokens))
		for _, token := range tokens {
			if termFrequency[token] == 0 {
				documentFrequency[token]++
			}
			termFrequency[token]++
		}
		ranker.termFrequencies[i] = termFrequency
	}

	if len(corpus) > 0 {
		ranker.averageDocumentLength = float64(totalLength) / float64(len(corpus))
	}

	documentCount := float64(len(corpus))
	for term, frequency := range documentFrequency {
		ranker.inverseDocumentFrequency[term] = math.Log(documentCount+1) - math.Log(float64(frequency)+0.5)
	}

	return ranker
}

// scores returns one score per document, in corpus order. Terms outside the
// corpus vocabulary contribute nothing. In-vocabulary terms contribute
// idf*(k1+1)*delta/(k1+delta) even at zero frequency; this is the BM25L
// delta shift and must be kept for ranking parity with that family.
func (b *bm25l) scores(queryTokens []string) []float64 {
	out := make([]float64, len(b.termFrequencies))
	for _, token := range queryTokens {
		idf, ok := b.inverseDocumentFrequency[token]
		if !ok {
			continue
		}
		for i := range b.termFrequencies {
			frequency := float64(b.termFrequencies[i][token])
			normalized := frequency / (1 - paramB + paramB*float64(b.documentLengths[i])/b.averageDocumentLength)
			out[i] += idf * (paramK1 + 1) * (normalized + paramDelta) / (paramK1 + normalized + paramDelta)
		}
	}
	return out
}
