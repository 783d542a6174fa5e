package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The registry endpoints expose the flat-file lookup tables loaded at boot.
// All three degrade to empty lists when their source was unavailable.

func GetLicenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"licenses": deps.Registry.Licenses})
}

func GetDrivers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"drivers": deps.Registry.Drivers})
}

func GetRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": deps.Registry.Routes})
}
