package mustache

import (
	"strings"

	"github.com/itsatony/go-mustache/internal"
)

// DelimiterSet is a begin/end marker pair (§3). Defaults are "{{"/"}}".
// Neither string may contain whitespace or "=".
type DelimiterSet struct {
	Begin string
	End   string
}

// DefaultDelimiterSet returns the Mustache default "{{"/"}}" pair.
func DefaultDelimiterSet() DelimiterSet {
	return DelimiterSet{Begin: "{{", End: "}}"}
}

// Valid reports whether begin/end are non-empty and contain no
// whitespace or "=" characters.
func (d DelimiterSet) Valid() bool {
	return d.Begin != "" && d.End != "" &&
		!strings.ContainsAny(d.Begin, " \t\r\n\v\f=") &&
		!strings.ContainsAny(d.End, " \t\r\n\v\f=")
}

func (d DelimiterSet) toInternal() internal.Delimiters {
	return internal.Delimiters{Begin: d.Begin, End: d.End}
}

func fromInternalDelimiters(d internal.Delimiters) DelimiterSet {
	return DelimiterSet{Begin: d.Begin, End: d.End}
}
