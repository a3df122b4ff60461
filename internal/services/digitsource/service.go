package digitsource

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	"picipher/internal/digits"
	"picipher/internal/domain"
)

// Service implements the tiered fallback. A nil fetcher skips the network
// tier.
type Service struct {
	cache    domain.DigitCache
	fetcher  domain.DigitFetcher
	computer domain.DigitComputer
	computeN int
	log      logr.Logger

	mu     sync.Mutex
	digits *domain.Digits
}

// New returns a Service that computes computeN digits when both artifact
// tiers fail. computeN <= 0 means domain.ComputedDigits.
func New(
	cache domain.DigitCache,
	fetcher domain.DigitFetcher,
	computer domain.DigitComputer,
	computeN int,
	log logr.Logger,
) *Service {
	if computeN <= 0 {
		computeN = domain.ComputedDigits
	}
	return &Service{
		cache:    cache,
		fetcher:  fetcher,
		computer: computer,
		computeN: computeN,
		log:      log.WithName("digitsource"),
	}
}

// Digits returns the keystream, acquiring it on first use.
func (s *Service) Digits(ctx context.Context) (domain.Digits, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.digits != nil {
		return *s.digits, nil
	}
	d, err := s.acquire(ctx)
	if err != nil {
		return domain.Digits{}, err
	}
	s.digits = &d
	s.log.V(1).Info("digits ready", "tier", d.Tier, "length", d.Len())
	return d, nil
}

func (s *Service) acquire(ctx context.Context) (domain.Digits, error) {
	if ds, ok := s.fromCache(); ok {
		return domain.Digits{DigitString: ds, Tier: domain.TierCache}, nil
	}
	if ds, ok := s.fromNetwork(ctx); ok {
		return domain.Digits{DigitString: ds, Tier: domain.TierNetwork}, nil
	}

	s.log.Info("computing digits locally", "digits", s.computeN)
	ds, err := s.computer.ComputeDigits(s.computeN)
	if err != nil {
		return domain.Digits{}, fmt.Errorf("%w: %w", domain.ErrDigitSourceUnavailable, err)
	}
	if ds.Len() != s.computeN {
		return domain.Digits{}, fmt.Errorf("%w: computed %d digits, want %d",
			domain.ErrDigitSourceUnavailable, ds.Len(), s.computeN)
	}
	return domain.Digits{DigitString: ds, Tier: domain.TierCompute}, nil
}

func (s *Service) fromCache() (domain.DigitString, bool) {
	if s.cache == nil {
		return domain.DigitString{}, false
	}
	raw, ok, err := s.cache.LoadDigits()
	if err != nil {
		s.log.Info("cached digits unusable", "error", err)
		return domain.DigitString{}, false
	}
	if !ok {
		s.log.V(1).Info("no cached digits")
		return domain.DigitString{}, false
	}
	ds, err := digits.Normalize(raw, domain.ArtifactDigits)
	if err != nil {
		s.log.Info("cached digits malformed", "error", err)
		return domain.DigitString{}, false
	}
	return ds, true
}

func (s *Service) fromNetwork(ctx context.Context) (domain.DigitString, bool) {
	if s.fetcher == nil {
		s.log.V(1).Info("network tier disabled")
		return domain.DigitString{}, false
	}
	raw, err := s.fetcher.FetchDigits(ctx)
	if err != nil {
		s.log.Info("fetching digits failed", "error", err)
		return domain.DigitString{}, false
	}
	ds, err := digits.Normalize(raw, domain.ArtifactDigits)
	if err != nil {
		s.log.Info("fetched digits malformed", "error", err)
		return domain.DigitString{}, false
	}
	if s.cache != nil {
		if err := s.cache.SaveDigits(raw); err != nil {
			s.log.Error(err, "caching fetched digits")
		}
	}
	return ds, true
}

// Compile-time assertion that Service implements domain.DigitSource.
var _ domain.DigitSource = (*Service)(nil)
