package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupMetrics exposes the Prometheus default registry at path
func SetupMetrics(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
