// Package english provides the English tokenizer, lemmatizer and stopword
// list used by the normaliser.
//
// Setup must be called once before any Lexicon is used. It loads the
// Punkt sentence model and the English lemma dictionary and builds the
// stopword set; until it succeeds, Lexicon.Ready reports false.
package english
