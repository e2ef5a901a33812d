package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scales_practice_backend/docs"
	"scales_practice_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/init-database", c.arpeggio.InitDatabase)

		// 音阶目录
		api.GET("/scales", c.scale.ListScales)
		api.PUT("/scales/:id", c.scale.UpdateScale)
		api.POST("/scales/bulk-enable", c.scale.BulkEnableScales)
		api.POST("/scales/bulk-articulation", c.scale.BulkArticulationScales)

		// 琶音目录
		api.GET("/arpeggios", c.arpeggio.ListArpeggios)
		api.PUT("/arpeggios/:id", c.arpeggio.UpdateArpeggio)
		api.POST("/arpeggios/bulk-enable", c.arpeggio.BulkEnableArpeggios)
		api.POST("/arpeggios/bulk-articulation", c.arpeggio.BulkArticulationArpeggios)

		// 练习集生成与记录
		api.POST("/generate-set", c.practice.GenerateSet)
		api.POST("/practice-session", c.practice.RecordSession)
		api.GET("/practice-history", c.practice.History)

		// 算法配置
		api.GET("/settings/algorithm", c.settings.GetAlgorithmConfig)
		api.PUT("/settings/algorithm", c.settings.UpdateAlgorithmConfig)
		api.POST("/settings/algorithm/reset", c.settings.ResetAlgorithmConfig)

		// 命名预设
		api.GET("/selection-sets", c.selectionSet.ListSelectionSets)
		api.POST("/selection-sets", c.selectionSet.CreateSelectionSet)
		api.GET("/selection-sets/active", c.selectionSet.GetActiveSelectionSet)
		api.PUT("/selection-sets/:id", c.selectionSet.UpdateSelectionSet)
		api.DELETE("/selection-sets/:id", c.selectionSet.DeleteSelectionSet)
		api.POST("/selection-sets/:id/load", c.selectionSet.LoadSelectionSet)
		api.POST("/selection-sets/deactivate", c.selectionSet.DeactivateSelectionSets)
	}
}
