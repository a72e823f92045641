package translate

import (
	"context"
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog"
)

// LinguaDetector detects languages with lingua, restricted to the languages
// a translation model can handle.
type LinguaDetector struct {
	detector  lingua.LanguageDetector
	languages int
	logger    zerolog.Logger
}

// NewLinguaDetector builds a detector for the given ISO 639-1 codes. Codes
// lingua does not know are ignored; if fewer than two remain, every lingua
// language is loaded.
func NewLinguaDetector(codes []string, logger zerolog.Logger) *LinguaDetector {
	want := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		want[strings.ToLower(code)] = struct{}{}
	}

	var languages []lingua.Language
	for _, l := range lingua.AllLanguages() {
		if _, ok := want[isoCode(l)]; ok {
			languages = append(languages, l)
		}
	}

	var detector lingua.LanguageDetector
	if len(languages) >= 2 {
		detector = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build()
	} else {
		languages = lingua.AllLanguages()
		detector = lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build()
	}

	logger.Info().Int("languages", len(languages)).Msg("Language detector initialized")
	return &LinguaDetector{detector: detector, languages: len(languages), logger: logger}
}

// Languages returns the number of languages the detector distinguishes.
func (d *LinguaDetector) Languages() int {
	return d.languages
}

// Detect returns the most likely language of text. Text lingua cannot
// classify is reported as Undetermined with zero confidence.
func (d *LinguaDetector) Detect(ctx context.Context, text string) (string, float64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		d.logger.Debug().Int("text_length", len(text)).Msg("Could not detect language")
		return Undetermined, 0, nil
	}

	confidence := d.detector.ComputeLanguageConfidence(text, language)
	code := isoCode(language)
	d.logger.Debug().
		Str("detected_language", code).
		Float64("confidence", confidence).
		Msg("Language detected")
	return code, confidence, nil
}

func isoCode(l lingua.Language) string {
	return strings.ToLower(l.IsoCode639_1().String())
}
