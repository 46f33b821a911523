package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httpresp"
	"github.com/gustavovieirarodrigues/taxi-management/internal/middleware"
	"github.com/gustavovieirarodrigues/taxi-management/internal/notify"
)

type NotificationHandler struct {
	store *notify.Store
}

func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// ListUnread devolve as notificações não lidas do usuário logado
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	notifications, err := h.store.ListUnread(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	err := h.store.MarkRead(c.Request.Context(), c.Param("id"), userID)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification_not_found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}

// Clear marca todas como lidas de uma vez
func (h *NotificationHandler) Clear(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.store.ClearAll(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
