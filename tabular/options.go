// SPDX-License-Identifier: MIT
// Package: epinet/tabular
//
// options.go — reader options.
//
// Contract:
//   • Option constructors PANIC on runes encoding/csv can never accept
//     (\r, \n, U+FFFD). A comment equal to the delimiter fails at read time.

package tabular

import "fmt"

// Defaults used when no Option overrides them.
const (
	DefaultDelimiter = ','
	DefaultComment   = '#'
)

// Option customizes a reader.
type Option func(*config)

type config struct {
	delimiter rune
	comment   rune
	header    bool
}

func newConfig(opts ...Option) config {
	c := config{delimiter: DefaultDelimiter, comment: DefaultComment}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

func checkRune(name string, r rune) {
	if r == '\r' || r == '\n' || r == 0xFFFD {
		panic(fmt.Sprintf("tabular: %s(%q) is not a valid separator", name, r))
	}
}

// WithDelimiter sets the field separator. Use '\t' for TSV and ' ' for
// whitespace-separated edge lists.
func WithDelimiter(r rune) Option {
	checkRune("WithDelimiter", r)
	return func(c *config) {
		c.delimiter = r
	}
}

// WithComment sets the comment character. 0 disables comments.
func WithComment(r rune) Option {
	if r != 0 {
		checkRune("WithComment", r)
	}
	return func(c *config) {
		c.comment = r
	}
}

// WithHeader makes readers skip the first record when skip is true.
func WithHeader(skip bool) Option {
	return func(c *config) {
		c.header = skip
	}
}
