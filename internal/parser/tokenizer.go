package parser

import (
	"slices"
	"strings"
	"unicode"
)

// Prefix marks the start of an argument value, e.g. "n/".
type Prefix string

const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
)

// Arguments holds a tokenized argument string: the preamble before the first
// prefix and every value given for each prefix, in input order.
type Arguments struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble is the trimmed text before the first prefix.
func (a Arguments) Preamble() string { return a.preamble }

// Value returns the last value given for p.
func (a Arguments) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// All returns every value given for p.
func (a Arguments) All(p Prefix) []string { return slices.Clone(a.values[p]) }

// Has reports whether every prefix in ps was given at least once.
func (a Arguments) Has(ps ...Prefix) bool {
	for _, p := range ps {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

type marker struct {
	prefix Prefix
	at     int
}

// Tokenize splits args on the given prefixes. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) Arguments {
	var marks []marker
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], string(p))
			if i < 0 {
				break
			}
			at := from + i
			if at == 0 || unicode.IsSpace(rune(args[at-1])) {
				marks = append(marks, marker{prefix: p, at: at})
			}
			from = at + len(p)
		}
	}
	slices.SortFunc(marks, func(a, b marker) int { return a.at - b.at })

	out := Arguments{values: make(map[Prefix][]string)}
	end := len(args)
	if len(marks) > 0 {
		end = marks[0].at
	}
	out.preamble = strings.TrimSpace(args[:end])
	for i, m := range marks {
		end := len(args)
		if i+1 < len(marks) {
			end = marks[i+1].at
		}
		value := strings.TrimSpace(args[m.at+len(m.prefix) : end])
		out.values[m.prefix] = append(out.values[m.prefix], value)
	}
	return out
}
