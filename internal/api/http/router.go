package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	accounts *AccountController,
	auth *AuthController,
	contacts *ContactController,
	appointments *AppointmentController,
	videos *VideoController,
	contents *ContentController,
	allowedOrigins []string,
	secret string,
) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.GET("/user", RequireAuth(secret), auth.Me)

	accountGroup := api.Group("/accounts")
	accountGroup.GET("", accounts.ListAccounts)
	accountGroup.POST("", accounts.CreateAccount)
	accountGroup.GET("/:id", accounts.GetAccount)
	accountGroup.PUT("/:id", accounts.UpdateAccount)
	accountGroup.DELETE("/:id", accounts.DeleteAccount)

	contactGroup := api.Group("/contacts")
	contactGroup.POST("", contacts.CreateMessage)
	contactGroup.GET("", contacts.ListMessages)
	contactGroup.GET("/:id", contacts.GetMessage)
	contactGroup.DELETE("/:id", contacts.DeleteMessage)

	appointmentGroup := api.Group("/appointments")
	appointmentGroup.POST("", appointments.CreateAppointment)
	appointmentGroup.GET("", appointments.ListAppointments)
	appointmentGroup.GET("/:id", appointments.GetAppointment)
	appointmentGroup.PUT("/:id", appointments.UpdateAppointment)
	appointmentGroup.DELETE("/:id", appointments.DeleteAppointment)

	videoGroup := api.Group("/videos")
	videoGroup.GET("", videos.ListVideos)
	videoGroup.POST("", videos.CreateVideo)
	videoGroup.GET("/type/:type", videos.ListVideosByType)
	videoGroup.GET("/search", videos.SearchVideos)
	videoGroup.GET("/:id", videos.GetVideo)
	videoGroup.PUT("/:id", videos.UpdateVideo)
	videoGroup.DELETE("/:id", videos.DeleteVideo)

	contentGroup := api.Group("/content")
	contentGroup.GET("", contents.ListContent)
	contentGroup.POST("", contents.CreateContent)
	contentGroup.GET("/public", contents.ListPublicContent)
	contentGroup.GET("/:id", contents.GetContent)
	contentGroup.DELETE("/:id", contents.DeleteContent)

	return router
}
