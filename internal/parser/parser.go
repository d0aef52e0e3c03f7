package parser

import (
	"strings"
	"unicode"

	"addressbook/internal/commands"
	"addressbook/internal/domain/types"
)

type parseFunc func(args string) (commands.Command, error)

// Parser maps command words to their argument parsers. It keeps no state
// between calls.
type Parser struct {
	table map[string]parseFunc
}

// New returns a parser. history backs the history command and may be nil.
func New(history commands.HistorySource) *Parser {
	p := &Parser{}
	p.table = map[string]parseFunc{
		commands.AddWord:       parseAdd,
		commands.EditWord:      parseEdit,
		commands.DeleteWord:    parseDelete,
		commands.TagAddWord:    parseTagAdd,
		commands.TagRemoveWord: parseTagRemove,
		commands.RestoreWord:   parseRestore,
		commands.ListWord:      noArgs(commands.ListUsage, commands.ListCommand{}),
		commands.FindWord:      parseFind,
		commands.FindTagWord:   parseFindTag,
		commands.SelectWord:    parseSelect,
		commands.ProfileWord:   parseProfile,
		commands.ClearWord:     noArgs(commands.ClearUsage, commands.ClearCommand{}),
		commands.BinListWord:   noArgs(commands.BinListUsage, commands.BinListCommand{}),
		commands.BinFindWord:   parseBinFind,
		commands.BinDeleteWord: parseBinDelete,
		commands.BinClearWord:  noArgs(commands.BinClearUsage, commands.BinClearCommand{}),
		commands.UndoWord:      noArgs(commands.UndoUsage, commands.UndoCommand{}),
		commands.RedoWord:      noArgs(commands.RedoUsage, commands.RedoCommand{}),
		commands.HistoryWord:   noArgs(commands.HistoryUsage, &commands.HistoryCommand{Source: history}),
		commands.HelpWord:      noArgs(commands.HelpUsage, commands.HelpCommand{}),
		commands.ExitWord:      noArgs(commands.ExitUsage, commands.ExitCommand{}),
	}
	return p
}

// Parse parses input with a parser that has no history source.
func Parse(input string) (commands.Command, error) {
	return New(nil).Parse(input)
}

// Parse turns one line of input into a command.
func (p *Parser) Parse(input string) (commands.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat(commands.HelpUsage, nil)
	}
	word, args := input, ""
	if i := strings.IndexFunc(input, unicode.IsSpace); i >= 0 {
		word, args = input[:i], input[i:]
	}
	parse, ok := p.table[word]
	if !ok {
		return nil, &ParseError{Message: commands.MessageUnknownCommand}
	}
	return parse(args)
}

func noArgs(usage string, cmd commands.Command) parseFunc {
	return func(args string) (commands.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, invalidFormat(usage, nil)
		}
		return cmd, nil
	}
}

func parseAdd(args string) (commands.Command, error) {
	a := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if !a.Has(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress) || a.Preamble() != "" {
		return nil, invalidFormat(commands.AddUsage, nil)
	}
	rawName, _ := a.Value(PrefixName)
	name, err := parseName(rawName)
	if err != nil {
		return nil, err
	}
	rawPhone, _ := a.Value(PrefixPhone)
	phone, err := parsePhone(rawPhone)
	if err != nil {
		return nil, err
	}
	rawEmail, _ := a.Value(PrefixEmail)
	email, err := parseEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	rawAddress, _ := a.Value(PrefixAddress)
	address, err := parseAddress(rawAddress)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(a.All(PrefixTag))
	if err != nil {
		return nil, err
	}
	return &commands.AddCommand{Person: types.NewPerson(name, phone, email, address, tags...)}, nil
}

func parseEdit(args string) (commands.Command, error) {
	a := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	index, err := ParseIndex(a.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.EditUsage, err)
	}

	var d commands.EditDescriptor
	if raw, ok := a.Value(PrefixName); ok {
		v, err := parseName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = &v
	}
	if raw, ok := a.Value(PrefixPhone); ok {
		v, err := parsePhone(raw)
		if err != nil {
			return nil, err
		}
		d.Phone = &v
	}
	if raw, ok := a.Value(PrefixEmail); ok {
		v, err := parseEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = &v
	}
	if raw, ok := a.Value(PrefixAddress); ok {
		v, err := parseAddress(raw)
		if err != nil {
			return nil, err
		}
		d.Address = &v
	}
	if raw := a.All(PrefixTag); len(raw) > 0 {
		tags := []types.Tag{}
		// A lone empty t/ clears every tag.
		if len(raw) > 1 || raw[0] != "" {
			if tags, err = parseTags(raw); err != nil {
				return nil, err
			}
		}
		d.Tags = &tags
	}
	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Message: commands.MessageNotEdited}
	}
	return &commands.EditCommand{Index: index, Descriptor: d}, nil
}

func parseDelete(args string) (commands.Command, error) {
	indices, err := ParseIndices(args)
	if err != nil {
		return nil, invalidFormat(commands.DeleteUsage, err)
	}
	return &commands.DeleteCommand{Indices: indices}, nil
}

func parseRestore(args string) (commands.Command, error) {
	indices, err := ParseIndices(args)
	if err != nil {
		return nil, invalidFormat(commands.RestoreUsage, err)
	}
	return &commands.RestoreCommand{Indices: indices}, nil
}

func parseBinDelete(args string) (commands.Command, error) {
	indices, err := ParseIndices(args)
	if err != nil {
		return nil, invalidFormat(commands.BinDeleteUsage, err)
	}
	return &commands.BinDeleteCommand{Indices: indices}, nil
}

// parseTagged reads "INDEX [INDEX]... t/TAG [t/TAG]...".
func parseTagged(args, usage string) ([]commands.Index, []types.Tag, error) {
	a := Tokenize(args, PrefixTag)
	if !a.Has(PrefixTag) {
		return nil, nil, invalidFormat(usage, nil)
	}
	indices, err := ParseIndices(a.Preamble())
	if err != nil {
		return nil, nil, invalidFormat(usage, err)
	}
	tags, err := parseTags(a.All(PrefixTag))
	if err != nil {
		return nil, nil, err
	}
	return indices, tags, nil
}

func parseTagAdd(args string) (commands.Command, error) {
	indices, tags, err := parseTagged(args, commands.TagAddUsage)
	if err != nil {
		return nil, err
	}
	return &commands.TagAddCommand{Indices: indices, Tags: tags}, nil
}

func parseTagRemove(args string) (commands.Command, error) {
	indices, tags, err := parseTagged(args, commands.TagRemoveUsage)
	if err != nil {
		return nil, err
	}
	return &commands.TagRemoveCommand{Indices: indices, Tags: tags}, nil
}

func parseFind(args string) (commands.Command, error) {
	words, err := keywords(args, commands.FindUsage)
	if err != nil {
		return nil, err
	}
	return &commands.FindCommand{Predicate: types.NameContainsKeywords{Keywords: words}}, nil
}

func parseFindTag(args string) (commands.Command, error) {
	words, err := keywords(args, commands.FindTagUsage)
	if err != nil {
		return nil, err
	}
	return &commands.FindCommand{Predicate: types.TagContainsKeywords{Keywords: words}}, nil
}

func parseBinFind(args string) (commands.Command, error) {
	words, err := keywords(args, commands.BinFindUsage)
	if err != nil {
		return nil, err
	}
	return &commands.BinFindCommand{Predicate: types.NameContainsKeywords{Keywords: words}}, nil
}

func parseSelect(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.SelectUsage, err)
	}
	return &commands.SelectCommand{Index: index}, nil
}

func parseProfile(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.ProfileUsage, err)
	}
	return &commands.ProfileCommand{Index: index}, nil
}
