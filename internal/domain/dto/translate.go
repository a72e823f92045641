// Package dto defines the request and response schemas of the Google
// Translate v2 compatible endpoints.
package dto

import "github.com/guttosm/translate-gateway/internal/catalog"

// TranslateRequest is the body of POST /translate.
//
// @Description Text to translate. The source language is detected unless given.
type TranslateRequest struct {
	Q      string `json:"q" example:"hello"`
	Target string `json:"target" example:"ru"`
	Source string `json:"source,omitempty" example:"en"`
} // @name TranslateRequest

// DetectRequest is the body of POST /detect.
type DetectRequest struct {
	Q string `json:"q" example:"hello"`
} // @name DetectRequest

// Translation is one translated text.
type Translation struct {
	TranslatedText         string `json:"translatedText" example:"привет"`
	DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty" example:"en"`
} // @name Translation

// TranslateData wraps the translations list.
type TranslateData struct {
	Translations []Translation `json:"translations"`
} // @name TranslateData

// TranslateResponse is the 200 body of POST /translate.
type TranslateResponse struct {
	Data TranslateData `json:"data"`
} // @name TranslateResponse

// Detection is one language candidate.
type Detection struct {
	Language   string  `json:"language" example:"en"`
	IsReliable bool    `json:"isReliable" example:"true"`
	Confidence float64 `json:"confidence" example:"0.97"`
} // @name Detection

// DetectData holds one list of candidates per input text.
type DetectData struct {
	Detections [][]Detection `json:"detections"`
} // @name DetectData

// DetectResponse is the 200 body of POST /detect.
type DetectResponse struct {
	Data DetectData `json:"data"`
} // @name DetectResponse

// LanguagesData wraps the languages list.
type LanguagesData struct {
	Languages []catalog.Language `json:"languages"`
} // @name LanguagesData

// LanguagesResponse is the 200 body of GET /languages.
type LanguagesResponse struct {
	Data LanguagesData `json:"data"`
} // @name LanguagesResponse

// DetectErrorResponse is the raw 500 body of POST /detect when detection fails.
type DetectErrorResponse struct {
	Error string `json:"error"`
} // @name DetectErrorResponse

// VersionInfo describes the running build.
type VersionInfo struct {
	AppName string `json:"app_name" example:"translate-gateway"`
	Version string `json:"version" example:"0.1.0"`
	Date    string `json:"date" example:"2025.04.24"`
	Info    string `json:"info"`
	Model   string `json:"model" example:"facebook/m2m100_418M"`
} // @name VersionInfo

// NewTranslateResponse wraps a single translation.
func NewTranslateResponse(text, detectedSource string) TranslateResponse {
	return TranslateResponse{Data: TranslateData{Translations: []Translation{{
		TranslatedText:         text,
		DetectedSourceLanguage: detectedSource,
	}}}}
}

// NewDetectResponse wraps a single detection.
func NewDetectResponse(language string, isReliable bool, confidence float64) DetectResponse {
	return DetectResponse{Data: DetectData{Detections: [][]Detection{{{
		Language:   language,
		IsReliable: isReliable,
		Confidence: confidence,
	}}}}}
}
