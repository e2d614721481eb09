package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/mergington/docs" // registers the generated swagger docs
)

// SwaggerDocPath serves the raw OpenAPI document
const SwaggerDocPath = "/swagger/doc.json"

// SetupSwagger configures Swagger documentation routes
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL(SwaggerDocPath),
		ginSwagger.DefaultModelsExpandDepth(1)))
}
