package translate

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"picipher/internal/domain"
	"picipher/internal/protocol/keystream"
)

// Service translates messages with the pi keystream.
type Service struct {
	source domain.DigitSource
	sink   domain.OutputSink
	log    logr.Logger
}

// New returns a Service. sink may be nil to skip persistence.
func New(source domain.DigitSource, sink domain.OutputSink, log logr.Logger) *Service {
	return &Service{source: source, sink: sink, log: log.WithName("translate")}
}

// Translate encrypts or decrypts message with key. Sink failures never fail
// the call; they are returned in Translation.SaveErr.
func (s *Service) Translate(
	ctx context.Context,
	mode domain.Mode,
	message string,
	key domain.Key,
) (domain.Translation, error) {
	if !mode.Valid() {
		return domain.Translation{}, fmt.Errorf("%w: %v", domain.ErrInvalidMode, mode)
	}
	d, err := s.source.Digits(ctx)
	if err != nil {
		return domain.Translation{}, err
	}

	out, err := keystream.Translate(mode, []rune(message), key, d.DigitString)
	if err != nil {
		return domain.Translation{}, fmt.Errorf("%s: %w", mode, err)
	}

	s.log.V(1).Info("translated", "mode", mode.String(), "runes", len(out), "tier", d.Tier)
	res := domain.Translation{Message: out}
	if s.sink != nil {
		if err := s.sink.SaveTranslation(out); err != nil {
			s.log.V(1).Info("translated message not saved", "error", err)
			res.SaveErr = err
		} else {
			res.Saved = true
		}
	}
	return res, nil
}

// Compile-time assertion that Service implements domain.Translator.
var _ domain.Translator = (*Service)(nil)
