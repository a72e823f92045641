package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/domain/dto"
	"github.com/guttosm/translate-gateway/internal/envelope"
)

const rootTemplateName = "root.html"

var rootTemplate = template.Must(template.New(rootTemplateName).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Version.AppName}}</title></head>
<body>
<h1>{{.Version.AppName}}</h1>
<p>Version: {{.Version.Version}} ({{.Version.Date}})</p>
<p>{{.Version.Info}}</p>
<p>Model: {{.Version.Model}}</p>
<p>Authorization enabled: {{.AuthEnabled}}</p>
<h2>Protected endpoints</h2>
<ul>
{{- range .Protected}}
<li>{{.}}</li>
{{- end}}
</ul>
</body>
</html>
`))

// RootHandler serves the informational root page and the version endpoint.
type RootHandler struct {
	version     dto.VersionInfo
	authEnabled bool
	protected   []string
	responses   *envelope.Builder
}

// NewRootHandler creates a RootHandler. protected lists the endpoints shown
// as requiring authorization.
func NewRootHandler(version dto.VersionInfo, authEnabled bool, protected []string, responses *envelope.Builder) *RootHandler {
	return &RootHandler{
		version:     version,
		authEnabled: authEnabled,
		protected:   protected,
		responses:   responses,
	}
}

// RegisterRoutes implements RouteGroup.
func (h *RootHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.GET("/version", h.Version)
}

// Index renders the root page.
// @Summary     Service information page
// @Tags        Operations
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [get]
func (h *RootHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, rootTemplateName, gin.H{
		"Version":     h.version,
		"AuthEnabled": h.authEnabled,
		"Protected":   h.protected,
	})
}

// Version returns the build information in a success envelope.
// @Summary     Build information
// @Tags        Operations
// @Produce     json
// @Success     200 {object} envelope.SuccessPayload{data=dto.VersionInfo}
// @Security    ApiKeyAuth
// @Router      /version [get]
func (h *RootHandler) Version(c *gin.Context) {
	h.responses.OK("Version information", h.version).Write(c)
}
