//go:build !embed
// +build !embed

package main

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles leaves frontend serving to the Vite dev server in
// development builds
func setupStaticFiles(router *gin.Engine) {
	log.Println("🔧 Using local filesystem for frontend assets (development mode)")
	log.Println("   Frontend should be served separately with: cd web && npm run dev")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(200, gin.H{
			"message": "Frontend is running separately",
			"dev_url": "http://localhost:5173",
			"hint":    "Run 'cd web && npm run dev' to start the frontend",
		})
	})
}
