package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats      *services.StatsService
	Activities *services.ActivityService
	Streaks    *services.StreakService
	Goals      *services.GoalService
}

func NewStatsController(stats *services.StatsService, activities *services.ActivityService, streaks *services.StreakService, goals *services.GoalService) *StatsController {
	return &StatsController{Stats: stats, Activities: activities, Streaks: streaks, Goals: goals}
}

// GET /stats/summary returns category aggregates plus the archival wellness score.
func (s *StatsController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := s.Stats.Summary(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /stats/session-score returns the in-session metric over activity totals,
// streak days and goal achievement. Distinct from the archival score.
func (s *StatsController) SessionScore(c *gin.Context) {
	uid := c.GetUint("userID")
	ctx := c.Request.Context()

	totalActivities := s.Activities.TotalSessions(ctx, uid)
	totalStreakDays := s.Streaks.TotalDays(ctx, uid)
	goalPct := s.Goals.AchievementPercent(ctx, uid)

	c.JSON(http.StatusOK, gin.H{
		"session_score":        services.CalculateSessionScore(totalActivities, totalStreakDays, goalPct),
		"total_activities":     totalActivities,
		"total_streak_days":    totalStreakDays,
		"goal_achievement_pct": goalPct,
	})
}
