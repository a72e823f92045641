package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes on r.
	RegisterRoutes(r gin.IRoutes)
}

var (
	_ RouteGroup = (*TranslateHandler)(nil)
	_ RouteGroup = (*LogsHandler)(nil)
	_ RouteGroup = (*RootHandler)(nil)
	_ RouteGroup = (*HealthHandler)(nil)
)
