package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(
	userID string,
	rideID *string,
	notificationType string,
	message string,
) (*models.Notification, error) {

	n := models.Notification{
		UserID:  userID,
		RideID:  rideID,
		Type:    notificationType,
		Message: message,
	}

	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}

	return &n, nil
}

// ListUnread devolve as não lidas do usuário, mais recentes primeiro
func (s *Store) ListUnread(
	ctx context.Context,
	userID string,
) ([]models.Notification, error) {

	var out []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at DESC").
		Find(&out).Error

	return out, err
}

func (s *Store) MarkRead(
	ctx context.Context,
	id string,
	userID string,
) error {

	res := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearAll marca todas as notificações do usuário como lidas
func (s *Store) ClearAll(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("read", true).Error
}
