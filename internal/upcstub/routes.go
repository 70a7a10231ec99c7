// Package upcstub is an offline stand-in for the Go-UPC lookup API.
package upcstub

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the lookup and image endpoints on r
func RegisterRoutes(r *gin.Engine, c Catalog) {
	api := r.Group("/api/v1")
	{
		api.GET("/code/:code", lookupHandler(c))
	}
	r.GET("/images/:name", imageHandler)
}

// NewRouter returns a bare engine with the stub routes
func NewRouter(c Catalog) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, c)
	return r
}

func parseSize(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 || v > 4096 {
		return 0, false
	}
	return v, true
}
