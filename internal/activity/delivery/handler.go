package delivery

import (
	"net/http"

	"taskflow-backend/internal/activity/repository"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity-log HTTP requests
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

// GetActivityLog returns retained entries, most recent first
// GET /api/activity
func (h *ActivityHandler) GetActivityLog(c *gin.Context) {
	entries, err := h.activityRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
