package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"courtside/services/dashboard"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler exposes the overview counters.
type DashboardHandler struct {
	DashboardSvc dashboard.DashboardService
}

const adminStatsCacheKey = "dashboard:admin-stats"
const adminStatsCacheTTL = 30 * time.Second

// AdminStatsHandler handles GET /api/dashboard/admin-stats (admin). The
// aggregate fans out over every collection, so results are briefly
// cached.
func (h *DashboardHandler) AdminStatsHandler(c *gin.Context) {
	cache := utils.GetCacheClient()
	ctx := c.Request.Context()

	if cached, err := cache.Get(ctx, adminStatsCacheKey).Result(); err == nil {
		var stats dashboard.AdminStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	stats, err := h.DashboardSvc.GetAdminStats()
	if err != nil {
		utils.GetLogger().Error("Failed to aggregate admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := cache.Set(ctx, adminStatsCacheKey, data, adminStatsCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache admin stats", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, stats)
}

// UserStatsHandler handles GET /api/dashboard/user-stats for the
// authenticated caller.
func (h *DashboardHandler) UserStatsHandler(c *gin.Context) {
	email := requesterEmail(c)
	stats, err := h.DashboardSvc.GetUserStats(email)
	if err != nil {
		utils.GetLogger().Error("Failed to aggregate user stats",
			zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
