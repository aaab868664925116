package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"alcyxob/fittrack/internal/analytics"
	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsOptions are the presentation knobs for derived views.
type StatsOptions struct {
	Location     *time.Location
	TopExercises int
	RecentLimit  int
}

// StatsHandler recomputes derived stats from the stored records on every call.
type StatsHandler struct {
	workouts service.WorkoutStore
	opts     StatsOptions
	clock    func() time.Time
}

func NewStatsHandler(workouts service.WorkoutStore, opts StatsOptions) *StatsHandler {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &StatsHandler{workouts: workouts, opts: opts, clock: time.Now}
}

// Summary is the dashboard payload.
// GET /api/v1/stats
func (h *StatsHandler) Summary(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	records := h.workouts.LoadFor(c.Request.Context(), accountID)
	c.JSON(http.StatusOK, analytics.Summarize(records, h.clock(), analytics.SummaryOptions{
		Location:     h.opts.Location,
		TopExercises: h.opts.TopExercises,
		Recent:       h.opts.RecentLimit,
	}))
}

// TopExercises ranks exercises by frequency.
// GET /api/v1/stats/top?n=5
func (h *StatsHandler) TopExercises(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	n := h.opts.TopExercises
	if raw := c.Query("n"); raw != "" {
		n, err = strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, "n must be a non-negative integer")
			return
		}
	}

	records := h.workouts.LoadFor(c.Request.Context(), accountID)
	c.JSON(http.StatusOK, analytics.TopExercises(records, n))
}

// Achievements lists every milestone with its earned flag.
// GET /api/v1/achievements
func (h *StatsHandler) Achievements(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	records := h.workouts.LoadFor(c.Request.Context(), accountID)
	streak := analytics.CurrentStreak(records, h.opts.Location)
	c.JSON(http.StatusOK, analytics.Achievements(records, streak))
}

// Progress compares the first and latest workout.
// GET /api/v1/progress
func (h *StatsHandler) Progress(c *gin.Context) {
	accountID, err := getAccountIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get account ID from token")
		return
	}

	records := h.workouts.LoadFor(c.Request.Context(), accountID)
	report, err := analytics.Progress(records)
	if err != nil {
		if errors.Is(err, analytics.ErrNotEnoughData) {
			abortWithError(c, http.StatusUnprocessableEntity, "Log at least 2 workouts to see progress")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}
	c.JSON(http.StatusOK, report)
}
