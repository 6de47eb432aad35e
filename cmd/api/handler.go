package api

import (
	activityDelivery "taskflow-backend/internal/activity/delivery"
	activityRepo "taskflow-backend/internal/activity/repository"
	categoryDelivery "taskflow-backend/internal/category/delivery"
	categoryUsecasePkg "taskflow-backend/internal/category/usecase"
	taskDelivery "taskflow-backend/internal/task/delivery"
	taskUsecasePkg "taskflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// Handler wires usecases into the Gin engine.
type Handler struct {
	engine *gin.Engine
}

// NewHandler builds the engine, middleware and routes.
func NewHandler(taskUc taskUsecasePkg.TaskUsecase, categoryUc categoryUsecasePkg.CategoryUsecase, activityRepository activityRepo.ActivityRepository) *Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r,
		taskDelivery.NewTaskHandler(taskUc),
		categoryDelivery.NewCategoryHandler(categoryUc),
		activityDelivery.NewActivityHandler(activityRepository),
	)

	return &Handler{engine: r}
}

// Engine exposes the underlying router, mainly for tests.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}

// Start serves HTTP on the given address.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
