// Package api provides the REST API server for sci2fb
package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sierrafm/sci2fb/pkg/converter"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title sci2fb API
// @version 1.0
// @description API for converting Sierra SCI0 patch resources to Yamaha FB-01 SysEx banks
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert", handleConvert)
		v1.POST("/identify", handleIdentify)
		v1.GET("/formats", listFormats)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sci2fb",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns the input and output formats handled by the converter
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"input":       "SCI0 FB-01 patch resource (.pat, .002)",
		"output":      "FB-01 SysEx bank dump (.syx)",
		"bank_bytes":  converter.BankStreamSize,
		"conversions": []string{"pat -> syx"},
	})
}

// handleIdentify godoc
// @Summary Identify a patch resource
// @Description Upload a patch resource and receive its shape without converting
// @Tags convert
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Patch resource to identify"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/identify [post]
func handleIdentify(c *gin.Context) {
	data, ok := readUpload(c)
	if !ok {
		return
	}

	patch, err := converter.ParsePatch(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shape":        patch.Shape.String(),
		"banks":        patch.Shape.Banks(),
		"voices":       len(patch.Voices),
		"title_length": patch.TitleLength,
	})
}

// handleConvert godoc
// @Summary Convert a patch resource to an FB-01 bank
// @Description Upload an SCI0 patch resource and receive one SysEx bank stream. For double-bank patches the bank query parameter selects bank a or b.
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Patch resource to convert"
// @Param label query string false "Bank label (default: uploaded filename)"
// @Param bank query string false "Bank to return for double-bank patches: a or b (default: a)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func handleConvert(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	label := c.Query("label")
	if label == "" {
		label = converter.DeriveLabel(header.Filename)
	}

	result, err := converter.Convert(data, label)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bank := c.DefaultQuery("bank", "a")
	var stream []byte
	var suffix string
	switch bank {
	case "a", "1":
		stream = result.BankA
		suffix = ".syx"
	case "b", "2":
		if result.Shape != converter.ShapeDoubleBank {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patch resource carries a single bank"})
			return
		}
		stream = result.BankB
		suffix = "2.syx"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "bank must be a or b"})
		return
	}

	filename := converter.DeriveLabel(header.Filename) + suffix
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/octet-stream", stream)
}

func readUpload(c *gin.Context) ([]byte, bool) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, false
	}
	return data, true
}
