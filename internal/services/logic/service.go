package logic

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"addressbook/internal/domain"
	"addressbook/internal/domain/types"
	"addressbook/internal/events"
	"addressbook/internal/logging"
	"addressbook/internal/parser"
)

// Service is the entry point for user input.
type Service struct {
	model  domain.Model
	parser *parser.Parser
	events domain.EventPublisher
	log    *slog.Logger

	mu      sync.Mutex
	history []string
}

// New constructs a logic service. pub may be nil.
func New(model domain.Model, pub domain.EventPublisher, log *slog.Logger) *Service {
	s := &Service{model: model, events: pub, log: logging.OrDiscard(log)}
	s.parser = parser.New(s)
	return s
}

// Execute parses and runs commandText. The line is recorded in the history
// whether or not it succeeds. On success the feedback is returned and, after
// a NewResultAvailable event, the command's own event is published.
func (s *Service) Execute(commandText string) (string, error) {
	s.log.Debug("command entered", "text", commandText)

	cmd, err := s.parser.Parse(commandText)
	if err != nil {
		s.record(commandText)
		s.log.Info("command rejected", "word", commandWord(commandText), "err", err)
		s.publish(events.NewNewResultAvailable(err.Error(), true))
		return "", err
	}

	res, err := cmd.Execute(s.model)
	s.record(commandText)
	if err != nil {
		s.log.Info("command failed", "word", commandWord(commandText), "err", err)
		s.publish(events.NewNewResultAvailable(err.Error(), true))
		return "", err
	}

	s.log.Info("command executed", "word", commandWord(commandText))
	s.publish(events.NewNewResultAvailable(res.Feedback, false))
	if res.Event != nil {
		s.publish(res.Event)
	}
	return res.Feedback, nil
}

// History returns the entered lines, oldest first.
func (s *Service) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

func (s *Service) FilteredPersons() []types.Person { return s.model.FilteredPersons() }

func (s *Service) FilteredBinPersons() []types.Person { return s.model.FilteredBinPersons() }

func (s *Service) record(commandText string) {
	if strings.TrimSpace(commandText) == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, commandText)
}

func (s *Service) publish(ev events.Event) {
	if s.events != nil {
		s.events.Publish(ev)
	}
}

func commandWord(text string) string {
	if f := strings.Fields(text); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Compile-time assertion that Service implements domain.LogicService.
var _ domain.LogicService = (*Service)(nil)
