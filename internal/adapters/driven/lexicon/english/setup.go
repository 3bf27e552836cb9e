package english

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/tokenize"

	"github.com/gutentopics/gutentopics/internal/logger"
)

// resources are the process-wide language models shared by all lexicons.
type resources struct {
	sentences *tokenize.PunktSentenceTokenizer
	words     *tokenize.TreebankWordTokenizer
	lemmas    *golem.Lemmatizer
	stopwords map[string]struct{}
}

var (
	setupOnce sync.Once
	setupErr  error
	loaded    atomic.Pointer[resources]
)

// Setup loads the language resources. It is safe to call more than once
// and from multiple goroutines; only the first call does any work and
// every call returns its error.
func Setup() error {
	setupOnce.Do(func() {
		logger.Debug("loading english lexicon")

		lemmas, err := golem.New(en.New())
		if err != nil {
			setupErr = fmt.Errorf("loading english lemma dictionary: %w", err)
			return
		}

		r := &resources{
			sentences: tokenize.NewPunktSentenceTokenizer(),
			words:     tokenize.NewTreebankWordTokenizer(),
			lemmas:    lemmas,
			stopwords: make(map[string]struct{}, len(stopwords)),
		}
		for _, w := range stopwords {
			r.stopwords[w] = struct{}{}
		}
		loaded.Store(r)
		logger.Debug("english lexicon ready", "stopwords", len(r.stopwords))
	})
	return setupErr
}

// Ready reports whether Setup has completed successfully.
func Ready() bool {
	return loaded.Load() != nil
}
