package parser

import (
	"slices"
	"strconv"
	"strings"

	"addressbook/internal/commands"
	"addressbook/internal/domain/types"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ParseIndex reads a 1-based position as typed by the user.
func ParseIndex(s string) (commands.Index, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, &ParseError{Message: MessageInvalidIndex}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &ParseError{Message: MessageInvalidIndex, Err: err}
	}
	return commands.FromOneBased(n), nil
}

// ParseIndices reads whitespace separated 1-based positions. Repeats are
// dropped, keeping first-seen order.
func ParseIndices(s string) ([]commands.Index, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ParseError{Message: MessageInvalidIndex}
	}
	out := make([]commands.Index, 0, len(fields))
	for _, f := range fields {
		i, err := ParseIndex(f)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, i) {
			out = append(out, i)
		}
	}
	return out, nil
}

// fieldError wraps a field validation failure. The constraint text becomes
// the message.
func fieldError(err error) error {
	return &ParseError{Message: err.Error(), Err: err}
}

func parseName(raw string) (types.Name, error) {
	v, err := types.NewName(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func parsePhone(raw string) (types.Phone, error) {
	v, err := types.NewPhone(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func parseEmail(raw string) (types.Email, error) {
	v, err := types.NewEmail(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func parseAddress(raw string) (types.Address, error) {
	v, err := types.NewAddress(raw)
	if err != nil {
		return v, fieldError(err)
	}
	return v, nil
}

func parseTags(raw []string) ([]types.Tag, error) {
	tags, err := types.NewTags(raw...)
	if err != nil {
		return nil, fieldError(err)
	}
	return tags, nil
}

// keywords splits args into search words, failing on an empty list.
func keywords(args, usage string) ([]string, error) {
	words := strings.Fields(args)
	if len(words) == 0 {
		return nil, invalidFormat(usage, nil)
	}
	return words, nil
}
