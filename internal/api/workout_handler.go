package api

import (
	"fmt"
	"net/http"
	"sync"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler exposes the signed-in account's workout log.
type WorkoutHandler struct {
	workouts service.WorkoutStore
	writes   *sync.Mutex
}

func NewWorkoutHandler(workouts service.WorkoutStore, writes *sync.Mutex) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, writes: writes}
}

type AddWorkoutRequest struct {
	Exercise string   `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight"`
}

// ListWorkouts returns the account's records in creation order.
// GET /api/v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	c.JSON(http.StatusOK, h.workouts.LoadFor(c.Request.Context(), accountID))
}

// AddWorkout logs a new record.
// POST /api/v1/workouts
func (h *WorkoutHandler) AddWorkout(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	var req AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	h.writes.Lock()
	defer h.writes.Unlock()

	record, err := h.workouts.Add(c.Request.Context(), accountID, domain.WorkoutDraft{
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Weight:   req.Weight,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// DeleteWorkout removes one of the account's records. Unknown ids succeed.
// DELETE /api/v1/workouts/:workoutId
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	h.writes.Lock()
	defer h.writes.Unlock()

	if err := h.workouts.Delete(c.Request.Context(), accountID, c.Param("workoutId")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
