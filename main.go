package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/GoelGroups/controllers"
	"github.com/GoelGroups/initializers"
	"github.com/GoelGroups/middlewares"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.UserLogin)
	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.GET("/users/me", controllers.GetUserProfile)

		// group directory and detail projections
		auth.GET("/groups", controllers.GetGroupDirectory)
		auth.GET("/groups/:group_profile_id", controllers.GetGroupDetail)

		// membership lifecycle
		auth.POST("/groups/:group_profile_id/join", controllers.JoinGroup)
		auth.POST("/groups/:group_profile_id/leave", controllers.LeaveGroup)
		auth.PATCH("/groups/:group_profile_id/notifications", controllers.UpdateNotificationPreference)

		// prayer request ledger
		auth.POST("/groups/:group_profile_id/requests", controllers.CreateGroupPrayerRequest)
		auth.POST("/groups/:group_profile_id/requests/:prayer_request_id/praying", controllers.TogglePraying)
		auth.POST("/groups/:group_profile_id/requests/:prayer_request_id/archive", controllers.ArchiveGroupPrayerRequest)
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
