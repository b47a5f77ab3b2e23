package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// LoggerConfig controls request logging behavior
type LoggerConfig struct {
	EnableColors bool
	SkipPaths    []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors: true,
		SkipPaths:    []string{"/health"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		method := c.Request.Method
		ip := c.ClientIP()

		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}

		if config.EnableColors {
			log.Printf("%s %s %s%3d%s %s %s(%v)%s",
				colorizeMethod(method), path,
				colorizeStatus(status), status, colorReset,
				ip, colorGray, latency, colorReset)
		} else {
			log.Printf("%s %s %3d %s (%v)", method, path, status, ip, latency)
		}

		for _, e := range c.Errors.Errors() {
			log.Printf("%sERROR%s %s %s: %s", colorRed, colorReset, method, path, e)
		}
	}
}

func colorizeStatus(status int) string {
	switch {
	case status >= 500:
		return colorRed
	case status >= 400:
		return colorYellow
	default:
		return colorGreen
	}
}

func colorizeMethod(method string) string {
	switch method {
	case "GET":
		return fmt.Sprintf("%s%-6s%s", colorCyan, method, colorReset)
	case "POST":
		return fmt.Sprintf("%s%-6s%s", colorGreen, method, colorReset)
	case "DELETE":
		return fmt.Sprintf("%s%-6s%s", colorRed, method, colorReset)
	default:
		return fmt.Sprintf("%-6s", method)
	}
}
