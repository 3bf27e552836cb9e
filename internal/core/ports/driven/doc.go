// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Charset: Encoding detection and decoding of raw bytes
//   - Lexicon: Tokenizer, Lemmatizer and StopwordSet for the target language
//   - TopicModel: Pre-trained topic model (transform and keywords)
//   - CorpusIndexStore: Known documents and their topic ids
//   - AnalysisStore: Analysis persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AnalysisRecorder: Metrics for analysis outcomes
//   - Readiness: Implemented by collaborators that need one-time setup
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
