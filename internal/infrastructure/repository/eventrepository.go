package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/infrastructure/persistence/models"
	apperrors "volunteerhub/internal/shared/errors"
)

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, e *event.Event) error {
	model := eventToModel(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set event ID: %w", err)
	}

	return nil
}

func (r *EventRepositoryImpl) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	var model models.EventModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}

	roster, err := r.roster(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return eventToEntity(&model, roster)
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*event.Event, error) {
	var modelList []*models.EventModel

	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return r.toEntities(ctx, modelList)
}

func (r *EventRepositoryImpl) ListByVolunteer(ctx context.Context, userID uint) ([]*event.Event, error) {
	var modelList []*models.EventModel

	err := r.db.WithContext(ctx).
		Joins("JOIN event_volunteers ON event_volunteers.event_id = events.id").
		Where("event_volunteers.user_id = ?", userID).
		Order("events.created_at DESC, events.id DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list events by volunteer: %w", err)
	}

	return r.toEntities(ctx, modelList)
}

func (r *EventRepositoryImpl) Update(ctx context.Context, e *event.Event) error {
	model := eventToModel(e)

	// Existence is checked explicitly. RowsAffected is no proxy for it:
	// mysql reports zero affected rows for an update that changes nothing.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.EventModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("event not found")
		}

		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		return nil
	})
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.EventModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("event not found")
		}

		// Cascade the roster. Announcements stay behind deliberately:
		// readers must treat their event reference as degraded, not fail.
		if err := tx.Where("event_id = ?", id).Delete(&models.EventVolunteerModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete event roster: %w", err)
		}

		return nil
	})
}

// AddVolunteer enrolls the user inside a single transaction. The event row
// is locked for the capacity check so concurrent joins serialize; the
// unique roster index backstops the duplicate check.
func (r *EventRepositoryImpl) AddVolunteer(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("event not found")
			}
			return fmt.Errorf("failed to load event: %w", err)
		}

		var enrolled int64
		if err := tx.Model(&models.EventVolunteerModel{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&enrolled).Error; err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		if enrolled > 0 {
			return event.ErrAlreadyEnrolled
		}

		var count int64
		if err := tx.Model(&models.EventVolunteerModel{}).
			Where("event_id = ?", eventID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count roster: %w", err)
		}
		if count >= int64(model.MaxVolunteers) {
			return event.ErrEventFull
		}

		membership := &models.EventVolunteerModel{
			EventID:  eventID,
			UserID:   userID,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(membership).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return event.ErrAlreadyEnrolled
			}
			return fmt.Errorf("failed to add volunteer: %w", err)
		}

		return nil
	})
}

func (r *EventRepositoryImpl) RemoveVolunteer(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.EventModel{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check event: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("event not found")
		}

		result := tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			Delete(&models.EventVolunteerModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove volunteer: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return event.ErrNotEnrolled
		}

		return nil
	})
}

func (r *EventRepositoryImpl) toEntities(ctx context.Context, modelList []*models.EventModel) ([]*event.Event, error) {
	entities := make([]*event.Event, 0, len(modelList))
	for _, m := range modelList {
		roster, err := r.roster(ctx, r.db, m.ID)
		if err != nil {
			return nil, err
		}
		entity, err := eventToEntity(m, roster)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// roster returns the membership user IDs in enrollment order.
func (r *EventRepositoryImpl) roster(ctx context.Context, db *gorm.DB, eventID uint) ([]uint, error) {
	var memberships []models.EventVolunteerModel

	err := db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("joined_at ASC, id ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	roster := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		roster = append(roster, m.UserID)
	}
	return roster, nil
}

func eventToModel(e *event.Event) *models.EventModel {
	return &models.EventModel{
		ID:            e.ID(),
		Title:         e.Title(),
		Description:   e.Description(),
		Date:          e.Date(),
		Time:          e.TimeOfDay(),
		Location:      e.Location(),
		Category:      e.Category(),
		MaxVolunteers: e.MaxVolunteers(),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func eventToEntity(m *models.EventModel, roster []uint) (*event.Event, error) {
	entity, err := event.ReconstructEvent(
		m.ID, m.Title, m.Description, m.Date, m.Time, m.Location, m.Category,
		m.MaxVolunteers, roster, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map event model to entity: %w", err)
	}
	return entity, nil
}
