package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/guttosm/translate-gateway/internal/logfile"
	"github.com/guttosm/translate-gateway/internal/validate"
	"github.com/rs/zerolog"
)

// LogReader returns the content of one day's log file.
type LogReader interface {
	Read(year, month, day int) ([]byte, error)
}

// LogsHandler serves the daily log files.
type LogsHandler struct {
	store     LogReader
	appName   string
	responses *envelope.Builder
	log       zerolog.Logger
}

// NewLogsHandler creates a LogsHandler reading appName's files from store.
func NewLogsHandler(store LogReader, appName string, responses *envelope.Builder, log zerolog.Logger) *LogsHandler {
	return &LogsHandler{store: store, appName: appName, responses: responses, log: log}
}

// RegisterRoutes implements RouteGroup.
func (h *LogsHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/logs", h.GetLogs)
}

// GetLogs handles GET /logs.
// @Summary     Read a day's log file
// @Description Returns the raw log file of the given day. Parameters are only checked to be integers.
// @Tags        Operations
// @Produce     plain
// @Param       year  query int true "Year"  example(2025)
// @Param       month query int true "Month" example(4)
// @Param       day   query int true "Day"   example(24)
// @Success     200 {string} string "Log file content"
// @Failure     400 {object} envelope.ErrorPayload
// @Failure     500 {object} envelope.ErrorPayload
// @Security    ApiKeyAuth
// @Router      /logs [get]
func (h *LogsHandler) GetLogs(c *gin.Context) {
	var raw [3]string
	for i, name := range []string{"year", "month", "day"} {
		v, err := validate.QueryParam(c, name)
		if err != nil || v == "" {
			h.responses.BadRequest("Missing required query parameters: year, month, day.", "").Write(c)
			return
		}
		raw[i] = v
	}

	var parts [3]int
	for i, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.responses.BadRequest("Invalid query parameters: year, month, day must be integers.", "").Write(c)
			return
		}
		parts[i] = n
	}
	year, month, day := parts[0], parts[1], parts[2]

	name := logfile.FileName(h.appName, year, month, day)
	h.log.Info().Str("log_file", name).Msg("Reading log file")

	data, err := h.store.Read(year, month, day)
	switch {
	case errors.Is(err, logfile.ErrNotFound):
		h.responses.BadRequest(fmt.Sprintf("Log file %s not found.", name), "").Write(c)
		return
	case err != nil:
		h.responses.Internal(fmt.Sprintf("Error reading file: %v", err), "").Write(c)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}
