// File: handlers/bookings.go
package handlers

import (
	"net/http"
	"strconv"

	recordsRepo "schedmate/database/repository/records"
	"schedmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultRecentLimit = 20

// BookingRecordsHandler exposes the booking audit log.
type BookingRecordsHandler struct {
	Repo   recordsRepo.BookingRecordRepository
	Logger *zap.Logger
}

func NewBookingRecordsHandler(repo recordsRepo.BookingRecordRepository, logger *zap.Logger) *BookingRecordsHandler {
	return &BookingRecordsHandler{Repo: repo, Logger: logger}
}

// ListRecent returns the most recent confirmed bookings, newest first.
// Optional query param: limit.
func (h *BookingRecordsHandler) ListRecent(c *gin.Context) {
	limit := int64(defaultRecentLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid 'limit' parameter", raw)
			return
		}
		limit = n
	}

	records, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("failed to list booking records", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking records", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}
