package services

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/pkg/rabbitmq"
)

// UserService handles business logic related to users, including the
// bonus point transfer workflow.
type UserService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. The RabbitMQ client may be
// nil; events are then skipped.
func NewUserService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(),
		mqClient: mqClient,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// CreateUser validates and creates a new user, returning the new ID.
func (s *UserService) CreateUser(user *models.User) (uint, error) {
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if err := s.validate.Struct(user); err != nil {
		return 0, fmt.Errorf("user validation failed: %w", err)
	}
	if user.BonusPoints.IsNegative() {
		return 0, fmt.Errorf("bonus points cannot be negative: %w", repositories.ErrInvalidAmount)
	}
	return s.userRepo.Create(user)
}

// UpdateUser validates and saves an existing user. Returns false when the
// id does not exist.
func (s *UserService) UpdateUser(user *models.User) (bool, error) {
	if err := s.validate.Struct(user); err != nil {
		return false, fmt.Errorf("user validation failed: %w", err)
	}
	if user.BonusPoints.IsNegative() {
		return false, fmt.Errorf("bonus points cannot be negative: %w", repositories.ErrInvalidAmount)
	}
	return s.userRepo.Update(user)
}

// DeleteUser removes a user unless orders still reference them.
func (s *UserService) DeleteUser(id uint) (repositories.DeleteResult, error) {
	return s.userRepo.Delete(id)
}

// TransferBonusPoints moves points between two users atomically. The
// transfer fails with ErrInvalidAmount for a non-positive amount and with
// ErrInsufficientBalance when the source balance does not cover it; in
// both cases no balance changes.
func (s *UserService) TransferBonusPoints(fromID, toID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("transfer of %s: %w", amount, repositories.ErrInvalidAmount)
	}

	if err := s.userRepo.TransferBonusPoints(fromID, toID, amount); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.PublishEvent(rabbitmq.EventBonusTransferred, map[string]interface{}{
			"from_user_id": fromID,
			"to_user_id":   toID,
			"amount":       amount,
		})
		if err != nil {
			log.Printf("Warning: failed to publish %s event: %v", rabbitmq.EventBonusTransferred, err)
		}
	}

	return nil
}
