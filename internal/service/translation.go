// Package service contains the translation business logic of the gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/translate-gateway/internal/catalog"
	"github.com/guttosm/translate-gateway/internal/metrics"
	"github.com/guttosm/translate-gateway/internal/service/cache"
	"github.com/guttosm/translate-gateway/internal/translate"
	"github.com/rs/zerolog"
)

// ReliableConfidence is the confidence above which a detection is reliable.
const ReliableConfidence = 0.85

// ErrUnsupportedLanguagePair is returned when the source or target language
// is not in the active model's catalog.
var ErrUnsupportedLanguagePair = errors.New("unsupported language pair")

// TranslationResult is the outcome of a translation.
type TranslationResult struct {
	TranslatedText string
	// DetectedSourceLanguage is the public code of the detected source, empty
	// when the caller supplied the source language.
	DetectedSourceLanguage string
	Model                  string
}

// DetectionResult is the outcome of a language detection.
type DetectionResult struct {
	Language   string
	Confidence float64
	IsReliable bool
}

// TranslationService defines the operations behind the translation endpoints.
type TranslationService interface {
	Translate(ctx context.Context, text, source, target string) (TranslationResult, error)
	Detect(ctx context.Context, text string) (DetectionResult, error)
	Languages() []catalog.Language
	Model() string
}

type translationService struct {
	translator translate.Translator
	catalog    *catalog.Catalog
	cache      cache.CacheWithMetrics
	logger     zerolog.Logger
}

// NewTranslationService creates a TranslationService. c may be nil to disable
// result caching.
func NewTranslationService(translator translate.Translator, cat *catalog.Catalog, c cache.CacheWithMetrics, logger zerolog.Logger) TranslationService {
	return &translationService{
		translator: translator,
		catalog:    cat,
		cache:      c,
		logger:     logger,
	}
}

// Translate detects the source language unless source is given, folds it to
// its catalog code, checks both languages against the catalog and delegates
// to the translator.
func (s *translationService) Translate(ctx context.Context, text, source, target string) (TranslationResult, error) {
	detected := source == ""
	if detected {
		code, _, err := s.translator.Detect(ctx, text)
		if err != nil {
			metrics.RecordDetection("error")
			return TranslationResult{}, fmt.Errorf("detect source language: %w", err)
		}
		metrics.RecordDetection("success")
		source = code
	}
	source = catalog.Normalize(source)

	if !s.catalog.Supports(source) || !s.catalog.Supports(target) {
		s.logger.Debug().Str("source", source).Str("target", target).Msg("Unsupported language pair")
		return TranslationResult{}, ErrUnsupportedLanguagePair
	}

	result := TranslationResult{Model: s.catalog.Model()}
	if detected {
		result.DetectedSourceLanguage = catalog.PublicCode(source)
	}

	key := cacheKey(source, target, text)
	if s.cache != nil {
		if out, ok := s.cache.Get(key); ok {
			metrics.RecordTranslation(0, "cached")
			result.TranslatedText = out
			return result, nil
		}
	}

	start := time.Now()
	out, err := s.translator.Translate(ctx, text, source, target)
	if err != nil {
		metrics.RecordTranslation(time.Since(start), "error")
		return TranslationResult{}, fmt.Errorf("translate %s to %s: %w", source, target, err)
	}
	metrics.RecordTranslation(time.Since(start), "success")

	if s.cache != nil {
		s.cache.Set(key, out)
		m := s.cache.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}

	result.TranslatedText = out
	return result, nil
}

// Detect reports the public code of the detected language.
func (s *translationService) Detect(ctx context.Context, text string) (DetectionResult, error) {
	code, confidence, err := s.translator.Detect(ctx, text)
	if err != nil {
		metrics.RecordDetection("error")
		return DetectionResult{}, err
	}
	metrics.RecordDetection("success")

	return DetectionResult{
		Language:   catalog.PublicCode(code),
		Confidence: confidence,
		IsReliable: confidence > ReliableConfidence,
	}, nil
}

// Languages returns the active catalog in catalog order.
func (s *translationService) Languages() []catalog.Language {
	return s.catalog.Languages()
}

// Model returns the active model identifier.
func (s *translationService) Model() string {
	return s.catalog.Model()
}

func cacheKey(source, target, text string) string {
	return source + "\x00" + target + "\x00" + text
}
