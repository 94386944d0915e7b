package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/contra-ai/contra/backend/internal/model/interaction"
	"github.com/contra-ai/contra/backend/internal/service/responder"
	"github.com/contra-ai/contra/backend/internal/storage/interactionlog"
)

var (
	ErrMessageRequired = errors.New("message cannot be empty")
	ErrLogUnavailable  = errors.New("interaction log unavailable")
)

// Reply is the outcome of one chat exchange.
type Reply struct {
	ExchangeID string `json:"-"`
	Culture    string `json:"culture"`
	Response   string `json:"response"`
	// RecordID is zero when the exchange could not be logged.
	RecordID int64 `json:"-"`
}

// Service composes the responder with the interaction log.
type Service struct {
	responder responder.Responder
	store     interactionlog.Log
	logger    zerolog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService wires a responder and an interaction log. store may be nil, in
// which case exchanges are answered but never recorded.
func NewService(r responder.Responder, store interactionlog.Log, opts ...Option) *Service {
	s := &Service{
		responder: r,
		store:     store,
		logger:    log.With().Str("component", "chat").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply generates the persona reply for message and records the exchange.
// Logging failures are reported but never returned.
func (s *Service) Reply(ctx context.Context, culture, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrMessageRequired
	}
	if culture == "" {
		culture = responder.UniversalPersona
	}

	reply := Reply{
		ExchangeID: uuid.NewString(),
		Culture:    culture,
		Response:   s.responder.Generate(culture, message),
	}

	logger := s.logger.With().Str("exchange_id", reply.ExchangeID).Str("culture", culture).Logger()
	reply.RecordID = s.record(ctx, logger, culture, message, reply.Response)

	logger.Debug().Int64("record_id", reply.RecordID).Int("length", len(reply.Response)).Msg("generated reply")
	return reply, nil
}

func (s *Service) record(ctx context.Context, logger zerolog.Logger, culture, message, response string) int64 {
	if s.store == nil {
		return 0
	}
	id, err := s.store.Append(ctx, culture, message, response)
	if err != nil {
		logger.Error().Err(err).Msg("failed to log interaction")
		return 0
	}
	return id
}

// History returns the most recent exchanges, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]interaction.Record, error) {
	if s.store == nil {
		return nil, ErrLogUnavailable
	}
	return s.store.ListRecent(ctx, limit)
}
