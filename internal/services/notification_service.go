// internal/services/notification_service.go
package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/models"
)

// NotificationService is the in-process notification center. Newest
// notifications come first.
type NotificationService struct {
	mu            sync.RWMutex
	notifications []models.Notification
	now           func() time.Time
}

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unread_count"`
}

func NewNotificationService() *NotificationService {
	return &NotificationService{now: time.Now}
}

// Seed adds the welcome notifications shown on a fresh install.
func (s *NotificationService) Seed() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = []models.Notification{
		{ID: uuid.New(), Title: "作品售出提醒", Message: "您的作品《无尽的创意》已被购买", Type: models.NotificationTypeSuccess, CreatedAt: now.Add(-10 * time.Minute)},
		{ID: uuid.New(), Title: "系统维护通知", Message: "系统将于今晚凌晨进行例行维护", Type: models.NotificationTypeInfo, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Title: "新功能上线", Message: "版权登记功能现已支持视频文件", Type: models.NotificationTypePrimary, Read: true, CreatedAt: now.Add(-24 * time.Hour)},
	}
}

func (s *NotificationService) List() NotificationList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NotificationList{
		Notifications: append([]models.Notification{}, s.notifications...),
		UnreadCount:   s.unreadLocked(),
	}
}

func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *NotificationService) unreadLocked() int {
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *NotificationService) Add(title, message string, kind models.NotificationType) models.Notification {
	n := models.Notification{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.notifications = slices.Insert(s.notifications, 0, n)
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"type":            kind,
	}).Debug("Notification added")
	return n
}

func (s *NotificationService) MarkRead(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

func (s *NotificationService) Clear() {
	s.mu.Lock()
	s.notifications = nil
	s.mu.Unlock()
}
