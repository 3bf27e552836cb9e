// Package domain defines the core business entities for gutentopics.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Uploaded ebook bytes before normalisation
//   - NormalizedDocument: Ordered lowercase content-word lemmas
//   - TopicAssignment: One document's topic id and probability
//   - KnownCorpusIndex: Historical documents and their topic ids
//   - AnalysisResult: Topic keywords and topic siblings for a batch
//   - Analysis: A persisted AnalysisResult for one upload
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
