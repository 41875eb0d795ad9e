package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/announcement"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type MarkAnnouncementAsReadCommand struct {
	AnnouncementID uint
	UserID         uint
}

// MarkAnnouncementAsReadUseCase records a read receipt. Marking an
// announcement that is already read succeeds without effect.
type MarkAnnouncementAsReadUseCase struct {
	announcementRepo announcement.Repository
	logger           logger.Interface
}

func NewMarkAnnouncementAsReadUseCase(announcementRepo announcement.Repository, logger logger.Interface) *MarkAnnouncementAsReadUseCase {
	return &MarkAnnouncementAsReadUseCase{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

func (uc *MarkAnnouncementAsReadUseCase) Execute(ctx context.Context, cmd MarkAnnouncementAsReadCommand) error {
	existing, err := uc.announcementRepo.GetByID(ctx, cmd.AnnouncementID)
	if err != nil {
		uc.logger.Errorw("failed to get announcement", "announcement_id", cmd.AnnouncementID, "error", err)
		return fmt.Errorf("failed to get announcement: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("announcement not found")
	}

	if !existing.IsRecipient(cmd.UserID) {
		return errors.NewForbiddenError("announcement was not sent to you")
	}

	if err := uc.announcementRepo.MarkRead(ctx, cmd.AnnouncementID, cmd.UserID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to mark announcement as read", "announcement_id", cmd.AnnouncementID, "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to mark announcement as read: %w", err)
	}

	return nil
}
