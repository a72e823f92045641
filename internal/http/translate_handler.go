// Package http exposes the gateway over HTTP using gin.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/domain/dto"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/guttosm/translate-gateway/internal/service"
	"github.com/guttosm/translate-gateway/internal/validate"
)

// TranslateHandler serves the Google Translate v2 compatible endpoints.
type TranslateHandler struct {
	service       service.TranslationService
	responses     *envelope.Builder
	maxTextLength int
}

// NewTranslateHandler creates a TranslateHandler. Texts longer than
// maxTextLength code points are rejected.
func NewTranslateHandler(svc service.TranslationService, responses *envelope.Builder, maxTextLength int) *TranslateHandler {
	return &TranslateHandler{
		service:       svc,
		responses:     responses,
		maxTextLength: maxTextLength,
	}
}

// RegisterRoutes implements RouteGroup.
func (h *TranslateHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/translate", h.Translate)
	r.POST("/detect", h.Detect)
	r.GET("/languages", h.Languages)
}

// bindBody parses the JSON body into a generic object. On failure the error
// envelope has already been written.
func (h *TranslateHandler) bindBody(c *gin.Context, operation string) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.responses.BadRequest(fmt.Sprintf("Error in %s: %v", operation, err), "").Write(c)
		return nil, false
	}
	if body == nil {
		h.responses.BadRequest("No content", "").Write(c)
		return nil, false
	}
	return body, true
}

func (h *TranslateHandler) parseTranslateRequest(c *gin.Context) (dto.TranslateRequest, bool) {
	body, ok := h.bindBody(c, "translate")
	if !ok {
		return dto.TranslateRequest{}, false
	}

	var req dto.TranslateRequest
	var err error
	if req.Q, err = validate.BodyString(body, "q"); err != nil {
		h.responses.BadRequest(err.Error(), "").Write(c)
		return req, false
	}
	if req.Target, err = validate.BodyString(body, "target"); err != nil {
		h.responses.BadRequest(err.Error(), "").Write(c)
		return req, false
	}
	if _, err := validate.BodyField(body, "source"); err == nil {
		if req.Source, err = validate.BodyString(body, "source"); err != nil {
			h.responses.BadRequest(err.Error(), "").Write(c)
			return req, false
		}
	}
	return req, true
}

// Translate handles POST /translate.
// @Summary     Translate text
// @Description Detects the source language (unless `source` is given) and translates `q` into `target`. The 200 body has no status envelope, matching Google Translate v2.
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request body dto.TranslateRequest true "Text and target language"
// @Success     200 {object} dto.TranslateResponse
// @Failure     400 {object} envelope.ErrorPayload "Malformed body, missing field, text too long or unsupported language pair"
// @Failure     401 {object} envelope.ErrorPayload
// @Failure     403 {object} envelope.ErrorPayload
// @Failure     500 {object} envelope.ErrorPayload "Translation failed"
// @Security    ApiKeyAuth
// @Router      /translate [post]
func (h *TranslateHandler) Translate(c *gin.Context) {
	req, ok := h.parseTranslateRequest(c)
	if !ok {
		return
	}

	if n := utf8.RuneCountInString(req.Q); n > h.maxTextLength {
		h.responses.BadRequest(fmt.Sprintf(
			"Input text for translation is more than %d symbols. Current length is %d symbols.",
			h.maxTextLength, n), "").Write(c)
		return
	}

	result, err := h.service.Translate(c.Request.Context(), req.Q, req.Source, req.Target)
	switch {
	case errors.Is(err, service.ErrUnsupportedLanguagePair):
		h.responses.BadRequest("Unsupported language pair", "").Write(c)
		return
	case err != nil:
		h.responses.Internal("Translation failed", err.Error()).Write(c)
		return
	}

	c.JSON(http.StatusOK, dto.NewTranslateResponse(result.TranslatedText, result.DetectedSourceLanguage))
}

// Detect handles POST /detect.
// @Summary     Detect language
// @Description Detects the language of `q`. A detection failure returns a bare `{"error": ...}` body.
// @Tags        Translation
// @Accept      json
// @Produce     json
// @Param       request body dto.DetectRequest true "Text to inspect"
// @Success     200 {object} dto.DetectResponse
// @Failure     400 {object} envelope.ErrorPayload
// @Failure     500 {object} dto.DetectErrorResponse
// @Security    ApiKeyAuth
// @Router      /detect [post]
func (h *TranslateHandler) Detect(c *gin.Context) {
	body, ok := h.bindBody(c, "detect")
	if !ok {
		return
	}

	var req dto.DetectRequest
	var err error
	if req.Q, err = validate.BodyString(body, "q"); err != nil {
		h.responses.BadRequest(err.Error(), "").Write(c)
		return
	}

	result, err := h.service.Detect(c.Request.Context(), req.Q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.DetectErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewDetectResponse(result.Language, result.IsReliable, result.Confidence))
}

// Languages handles GET /languages.
// @Summary     List supported languages
// @Description Lists the languages of the active model in catalog order.
// @Tags        Translation
// @Produce     json
// @Success     200 {object} dto.LanguagesResponse
// @Security    ApiKeyAuth
// @Router      /languages [get]
func (h *TranslateHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LanguagesResponse{
		Data: dto.LanguagesData{Languages: h.service.Languages()},
	})
}
