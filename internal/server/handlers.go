package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tickerfeed/internal/model"
	"tickerfeed/internal/store"
)

// listTickers returns the latest stored row per symbol, newest first.
// An optional ?symbol= restricts the result (case-insensitive).
func (s *Server) listTickers(c *gin.Context) {
	rows, err := s.store.Latest(c.Request.Context(), c.Query("symbol"))
	if err != nil {
		s.logger.Error("latest query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if rows == nil {
		rows = []model.StoredTickerPrice{}
	}
	c.JSON(http.StatusOK, rows)
}

// tickerHistory returns stored history filtered by symbol and time range,
// newest first. Unparseable time bounds are ignored rather than rejected.
func (s *Server) tickerHistory(c *gin.Context) {
	f := store.Filter{Symbol: c.Query("symbol")}

	if v := c.Query("start"); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			f.Start = ts
		}
	}
	if v := c.Query("end"); v != "" {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			f.End = ts
		}
	}

	rows, err := s.store.History(c.Request.Context(), f)
	if err != nil {
		s.logger.Error("history query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if rows == nil {
		rows = []model.StoredTickerPrice{}
	}
	c.JSON(http.StatusOK, rows)
}

// health reports database liveness and the current subscriber count.
func (s *Server) health(c *gin.Context) {
	status := "healthy"
	components := gin.H{
		"subscribers": s.hub.Count(),
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := s.db.Ping(ctx); err != nil {
			status = "unhealthy"
			components["database"] = gin.H{"status": "disconnected", "error": err.Error()}
		} else {
			components["database"] = "connected"
		}
	}

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "components": components})
}
