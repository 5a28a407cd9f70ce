package service

import (
	"context"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// AccountService covers user bookkeeping around the engine. Credential
// checking happens outside; this only stores what the caller hands over.
type AccountService struct {
	users    *repository.UserRepository
	subjects *repository.SubjectRepository
	tasks    *repository.TaskRepository
	blocks   *repository.BlockRepository
}

func NewAccountService(users *repository.UserRepository, subjects *repository.SubjectRepository, tasks *repository.TaskRepository, blocks *repository.BlockRepository) *AccountService {
	return &AccountService{users: users, subjects: subjects, tasks: tasks, blocks: blocks}
}

func (s *AccountService) Register(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if username == "" {
		return nil, &planner.ValidationError{Field: "username", Message: "username is required"}
	}
	user := model.User{Username: username, PasswordHash: passwordHash}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LinkTelegram records the chat weekly reports are delivered to.
func (s *AccountService) LinkTelegram(ctx context.Context, userID uint, chatID int64) error {
	return s.users.SetTelegramChatID(ctx, userID, chatID)
}

// ResetData wipes a user's schedule blocks, tasks, and subjects. The three
// deletes are not transactional; a failure leaves earlier deletes in place.
func (s *AccountService) ResetData(ctx context.Context, userID uint) error {
	if err := s.blocks.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.tasks.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	return s.subjects.DeleteAllForUser(ctx, userID)
}
