package caption

import (
	"fmt"
	"regexp"
	"strings"
)

// matches digit runs (ASCII or full-width) with an optional unit rune, or
// acronyms of two or more uppercase letters
const defaultHighlightPattern = `[0-9０-９]+(?:[%％円年月日時分秒個台人回倍])?|[A-Z]{2,}`

// wraps pattern matches with inline colour toggles for the styled renderer
type highlighter struct {
	re     *regexp.Regexp
	onTag  string
	offTag string
}

func newHighlighter(cfg HighlightConfig, baseColour string) (*highlighter, error) {
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = defaultHighlightPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed highlight pattern: %v", ErrInvalidConfig, err)
	}
	return &highlighter{
		re:     re,
		onTag:  colourTag(cfg.Colour),
		offTag: colourTag(baseColour),
	}, nil
}

// apply wraps every match with a switch to the highlight colour and back to
// the base colour. A pattern matching nothing leaves the text unchanged.
func (h *highlighter) apply(text string) string {
	return h.re.ReplaceAllStringFunc(text, func(m string) string {
		return h.onTag + m + h.offTag
	})
}

// colourTag builds an inline \c override from an &HAABBGGRR style colour,
// keeping only the BBGGRR tail the override syntax expects.
func colourTag(colour string) string {
	c := strings.TrimSuffix(strings.TrimPrefix(colour, "&H"), "&")
	if len(c) > 6 {
		c = c[len(c)-6:]
	}
	return `{\c&H` + c + `&}`
}
