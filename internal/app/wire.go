package app

import (
	"net/http"

	"github.com/go-logr/logr"

	"picipher/internal/chudnovsky"
	"picipher/internal/domain"
	"picipher/internal/remote"
	"picipher/internal/services/digitsource"
	"picipher/internal/services/translate"
	"picipher/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Digits     *store.DigitFileStore
	Output     *store.TranslationFileStore // nil when output saving is off
	Fetcher    domain.DigitFetcher
	Calculator *chudnovsky.Calculator
	Source     domain.DigitSource
	Translator domain.Translator
	HTTP       *http.Client
	Log        logr.Logger
}

// NewWire constructs the dependency graph from cfg. progress may be nil.
func NewWire(cfg Config, log logr.Logger, progress chudnovsky.ProgressReporter) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// File-based stores
	digitStore := store.NewDigitFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.FetchTimeout}
	}

	var fetcher domain.DigitFetcher
	if !cfg.Offline {
		fetcher = remote.NewHTTP(cfg.DigitsURL, httpClient)
	}

	calc := chudnovsky.New(log, progress)
	source := digitsource.New(digitStore, fetcher, calc, cfg.ComputeDigits, log)

	// sink stays a nil interface when saving is off.
	var (
		sink        domain.OutputSink
		outputStore *store.TranslationFileStore
	)
	if cfg.SaveOutput {
		outputStore = store.NewTranslationFileStore(cfg.Home)
		sink = outputStore
	}
	translator := translate.New(source, sink, log)

	return &Wire{
		Digits:     digitStore,
		Output:     outputStore,
		Fetcher:    fetcher,
		Calculator: calc,
		Source:     source,
		Translator: translator,
		HTTP:       httpClient,
		Log:        log,
	}, nil
}
