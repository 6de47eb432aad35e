package api

import (
	"net/http"

	activityDelivery "taskflow-backend/internal/activity/delivery"
	categoryDelivery "taskflow-backend/internal/category/delivery"
	taskDelivery "taskflow-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full API surface under /api.
func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler, categoryHandler *categoryDelivery.CategoryHandler, activityHandler *activityDelivery.ActivityHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/view", taskHandler.GetTaskView)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.POST("/reorder", taskHandler.ReorderTasks)
			tasks.POST("/move", taskHandler.MoveTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/subtasks", taskHandler.AddSubtask)
			tasks.PATCH("/:id/subtasks/:subtaskId", taskHandler.ToggleSubtask)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
		}

		api.GET("/activity", activityHandler.GetActivityLog)
	}
}
