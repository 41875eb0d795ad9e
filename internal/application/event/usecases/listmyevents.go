package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/logger"
)

type ListMyEventsQuery struct {
	UserID uint
}

type ListMyEventsUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListMyEventsUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *ListMyEventsUseCase {
	return &ListMyEventsUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListMyEventsUseCase) Execute(ctx context.Context, query ListMyEventsQuery) ([]*EventDTO, error) {
	events, err := uc.eventRepo.ListByVolunteer(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list events by volunteer", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	users, err := hydrateUsers(ctx, uc.userRepo, events)
	if err != nil {
		uc.logger.Errorw("failed to resolve volunteers", "error", err)
		return nil, err
	}

	dtos := make([]*EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventDTO(e, users))
	}
	return dtos, nil
}
