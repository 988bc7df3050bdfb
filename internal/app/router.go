package app

import (
	"educanvas_backend/docs"
	"educanvas_backend/internal/config"
	"educanvas_backend/internal/middleware"
	"educanvas_backend/internal/util"
	"educanvas_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.NoRoute(util.NotFound)

	// 1. 公共路由（与用户无关）
	a.registerPublicRoutes(router, c)

	// 2. 需要当前用户的路由
	userGroup := router.Group("/api")
	userGroup.Use(middleware.CurrentUser(repos.user, cfg.Server.DefaultUserID))
	{
		a.registerCourseRoutes(userGroup, c)
		a.registerStudentRoutes(userGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/users", c.user.GetUsers)

		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/facets", c.course.GetFacets)
		public.GET("/courses/categories", c.course.GetCategories)
		public.GET("/courses/tags", c.course.GetTags)
	}
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	courses := rg.Group("/courses/:id")
	{
		courses.GET("", c.course.GetCourse)
		courses.POST("/enroll", c.course.Enroll)

		// 学习进度
		courses.GET("/progress", c.progress.GetProgress)
		courses.POST("/lessons/:lessonId/complete", c.progress.CompleteLesson)
		courses.POST("/quizzes/:quizId/score", c.progress.SubmitQuizScore)

		// 学习页
		courses.GET("/learn", c.learning.GetLesson)
		courses.POST("/learn/next", c.learning.Next)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.GET("/profile/courses", c.user.GetEnrolledCourses)
	rg.GET("/dashboard", c.dashboard.GetDashboard)
}
