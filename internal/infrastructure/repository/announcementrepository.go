package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"volunteerhub/internal/domain/announcement"
	"volunteerhub/internal/infrastructure/persistence/models"
	apperrors "volunteerhub/internal/shared/errors"
)

type AnnouncementRepositoryImpl struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) announcement.Repository {
	return &AnnouncementRepositoryImpl{db: db}
}

// Create persists the announcement together with its recipient snapshot in
// one transaction.
func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, ann *announcement.Announcement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &models.AnnouncementModel{
			EventID:   ann.EventID(),
			Title:     ann.Title(),
			Message:   ann.Message(),
			CreatedBy: ann.CreatedBy(),
			CreatedAt: ann.CreatedAt(),
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create announcement: %w", err)
		}

		for _, userID := range ann.Recipients() {
			recipient := &models.AnnouncementRecipientModel{
				AnnouncementID: model.ID,
				UserID:         userID,
			}
			if err := tx.Create(recipient).Error; err != nil {
				return fmt.Errorf("failed to record recipient: %w", err)
			}
		}

		if err := ann.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set announcement ID: %w", err)
		}

		return nil
	})
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, id uint) (*announcement.Announcement, error) {
	var model models.AnnouncementModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	return r.toEntity(ctx, &model)
}

// ListByRecipient returns announcements whose send-time snapshot included
// the user, newest first.
func (r *AnnouncementRepositoryImpl) ListByRecipient(ctx context.Context, userID uint) ([]*announcement.Announcement, error) {
	var modelList []*models.AnnouncementModel

	err := r.db.WithContext(ctx).
		Joins("JOIN announcement_recipients ON announcement_recipients.announcement_id = announcements.id").
		Where("announcement_recipients.user_id = ?", userID).
		Order("announcements.created_at DESC, announcements.id DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements by recipient: %w", err)
	}

	entities := make([]*announcement.Announcement, 0, len(modelList))
	for _, m := range modelList {
		entity, err := r.toEntity(ctx, m)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// MarkRead inserts a read receipt. A duplicate insert is the idempotent
// success case, not an error.
func (r *AnnouncementRepositoryImpl) MarkRead(ctx context.Context, announcementID, userID uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AnnouncementModel{}).
		Where("id = ?", announcementID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check announcement: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("announcement not found")
	}

	receipt := &models.AnnouncementReadModel{
		AnnouncementID: announcementID,
		UserID:         userID,
		ReadAt:         time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil
		}
		return fmt.Errorf("failed to mark announcement as read: %w", err)
	}

	return nil
}

func (r *AnnouncementRepositoryImpl) toEntity(ctx context.Context, m *models.AnnouncementModel) (*announcement.Announcement, error) {
	var recipientRows []models.AnnouncementRecipientModel
	if err := r.db.WithContext(ctx).
		Where("announcement_id = ?", m.ID).
		Order("id ASC").
		Find(&recipientRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}

	recipients := make([]uint, 0, len(recipientRows))
	for _, row := range recipientRows {
		recipients = append(recipients, row.UserID)
	}

	var readRows []models.AnnouncementReadModel
	if err := r.db.WithContext(ctx).
		Where("announcement_id = ?", m.ID).
		Order("read_at ASC, id ASC").
		Find(&readRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load read receipts: %w", err)
	}

	readBy := make([]announcement.ReadReceipt, 0, len(readRows))
	for _, row := range readRows {
		readBy = append(readBy, announcement.ReadReceipt{UserID: row.UserID, ReadAt: row.ReadAt})
	}

	entity, err := announcement.ReconstructAnnouncement(
		m.ID, m.EventID, m.Title, m.Message, m.CreatedBy,
		recipients, readBy, m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map announcement model to entity: %w", err)
	}
	return entity, nil
}
