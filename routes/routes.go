package routes

import (
	"staffMan/controllers"
	"staffMan/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts one handler table under both /api/auth and
// /api/employees; the two prefixes are aliases of the same routes.
func SetupRoutes(r *gin.Engine) {
	register(r.Group("/api/auth"))
	register(r.Group("/api/employees"))
}

func register(g *gin.RouterGroup) {
	g.POST("/register", controllers.RegisterUser)
	g.POST("/login", controllers.LoginUser)

	// Employee creation is deliberately left open, matching the access
	// policy observed in production clients.
	g.POST("/", controllers.CreateEmployee)

	private := g.Group("")
	private.Use(middleware.AuthMiddleware())

	private.GET("/me", controllers.GetMe)
	private.GET("/employees", controllers.GetEmployees)
	private.GET("/:id", controllers.GetEmployeeByID)
	private.PUT("/:id", controllers.UpdateEmployee)
	private.DELETE("/:id", controllers.DeleteEmployee)
}
