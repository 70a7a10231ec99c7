package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/productimages/internal/logger"
	"github.com/youruser/productimages/internal/upcstub"
)

func main() {
	log := logger.New(logger.FromEnv("upcstub"))

	catalog := upcstub.DefaultCatalog()
	if path := os.Getenv("STUB_CATALOG"); path != "" {
		c, err := upcstub.LoadCatalog(path)
		if err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("loading catalog")
		}
		catalog = c
	}

	r := gin.Default()
	upcstub.RegisterRoutes(r, catalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Int("products", len(catalog)).Msg("starting lookup stub on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
