package order

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collating returns a string comparator which orders strings by the
// collation rules for language tag. Options are handed to the collator,
// e.g. collate.IgnoreCase or collate.Numeric.
//
// All calls of the comparator share a single collator, which makes it unsafe
// for concurrent use, as are the containers it is meant for.
func Collating(tag language.Tag, opts ...collate.Option) Comparator[string] {
	c := collate.New(tag, opts...)
	return c.CompareString
}
