// Package index ranks tool definitions against free-text queries.
//
// Tokenization covers tool names (snake_case and camelCase identifiers),
// descriptions, and input schema trees. Ranking uses the BM25L variant of
// BM25: length normalization with a small delta so very short tool
// documents are not suppressed relative to the corpus average length.
//
// The index is built once and is read-only afterwards; it is safe for
// concurrent reads.
package index
