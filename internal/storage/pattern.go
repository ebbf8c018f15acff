package storage

import (
	"errors"
	"fmt"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheSize bounds the number of compiled patterns kept in memory.
const DefaultPatternCacheSize = 256

// ErrInvalidPattern is returned when a raw search pattern does not compile.
var ErrInvalidPattern = errors.New("invalid search pattern")

var patternCache = mustPatternCache(DefaultPatternCacheSize)

func mustPatternCache(size int) *lru.Cache[string, *regexp.Regexp] {
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		panic(err)
	}
	return c
}

// SetPatternCacheSize resizes the compiled pattern cache shared by all connections.
func SetPatternCacheSize(size int) {
	if size > 0 {
		patternCache.Resize(size)
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Add(pattern, re)
	return re, nil
}

// regexpMatch backs the SQL REGEXP operator.
func regexpMatch(pattern, value string) (bool, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(value), nil
}

// Matcher turns user input into a case-insensitive REGEXP pattern for substring filters.
// In literal mode metacharacters are escaped; in raw mode input is used as regex syntax.
type Matcher struct {
	raw bool
}

// NewMatcher returns a Matcher; raw selects regex semantics over literal substrings.
func NewMatcher(raw bool) Matcher {
	return Matcher{raw: raw}
}

// Raw reports whether the matcher passes input through as regex syntax.
func (m Matcher) Raw() bool {
	return m.raw
}

// Pattern builds the REGEXP argument for input.
// It returns ErrInvalidPattern when raw input does not compile.
func (m Matcher) Pattern(input string) (string, error) {
	body := input
	if !m.raw {
		body = regexp.QuoteMeta(input)
	}
	pattern := "(?i)" + body
	if _, err := compilePattern(pattern); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return pattern, nil
}
