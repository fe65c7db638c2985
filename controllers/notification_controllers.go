package controllers

import (
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// GetMyNotifications lists the authenticated user's notifications,
// newest first.
func GetMyNotifications(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unread := c.Query("unread"); unread == "true" {
		tx = tx.Where("read = ?", false)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			UserID:      n.UserID,
			Message:     n.Message,
			Description: n.Description,
			Read:        n.Read,
			CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		})
	}

	response.SuccessWithPagination(c, out, page, limit, int(total))
}

// CountUnreadNotifications returns the badge count the client polls
// for.
func CountUnreadNotifications(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var count int64
	err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"count": count})
}

// MarkNotificationsRead flags the given notifications as read. Only the
// owner's rows are touched.
func MarkNotificationsRead(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND id IN ?", userID, req.IDs).
		Update("read", true).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
