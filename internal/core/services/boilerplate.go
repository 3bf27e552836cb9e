package services

import (
	"regexp"

	"github.com/gutentopics/gutentopics/internal/logger"
)

// Project Gutenberg banners around the licensed body of an ebook.
var (
	boilerplateStart = regexp.MustCompile(`(?i)\*\*\* START OF (THIS|THE) PROJECT GUTENBERG EBOOK (.+?) \*\*\*`)
	boilerplateEnd   = regexp.MustCompile(`(?i)\*\*\* END OF (THIS|THE) PROJECT GUTENBERG EBOOK`)
)

// stripBoilerplate returns the text strictly between the first start banner
// and the first end banner that follows it. A missing start banner keeps
// the text from offset 0; a missing end banner keeps it to the end.
func stripBoilerplate(text string) string {
	start := 0
	if loc := boilerplateStart.FindStringIndex(text); loc != nil {
		start = loc[1]
	}

	// The end banner is only searched for after the start banner, so one
	// quoted in the front matter cannot truncate the body.
	end := len(text)
	if loc := boilerplateEnd.FindStringIndex(text[start:]); loc != nil {
		end = start + loc[0]
	}

	logger.Debug("stripped boilerplate", "start", start, "end", end, "length", len(text))
	return text[start:end]
}
