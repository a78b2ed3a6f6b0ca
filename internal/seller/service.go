// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package seller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/apperr"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/sec"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/validate"
)

// Service orchestrates seller CRUD on top of the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the data required to register a new seller.
type CreateInput struct {
	FirstName  string
	SecondName string
	Email      string
	Password   string
}

// UpdateInput holds the partial-update payload: only non-nil fields change.
// The password is not updatable through this operation.
type UpdateInput struct {
	FirstName  *string
	SecondName *string
	Email      *string
}

func (service *Service) ListSellers(ctx context.Context) ([]*Seller, error) {
	sellers, err := service.repo.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	if sellers == nil {
		sellers = []*Seller{}
	}
	return sellers, nil
}

func (service *Service) GetSeller(ctx context.Context, id int64) (*Seller, error) {
	s, err := service.repo.GetSeller(ctx, id)
	if err != nil {
		return nil, notFoundAsSeller(err)
	}
	return s, nil
}

func (service *Service) CreateSeller(ctx context.Context, input CreateInput) (*Seller, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).MaxLen(FieldFirstName, input.FirstName, 50).
		Required(FieldSecondName, input.SecondName).MaxLen(FieldSecondName, input.SecondName, 50).
		Required(FieldEmail, input.Email).MaxLen(FieldEmail, input.Email, 50).
		Contains(FieldEmail, input.Email, "@").
		MinLen(FieldPassword, input.Password, 2)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Seller credentials get the same one-way treatment as user passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("seller_service_hash_failed: %w", err)
	}

	s := &Seller{
		FirstName:    input.FirstName,
		SecondName:   input.SecondName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := service.repo.CreateSeller(ctx, s); err != nil {
		return nil, err
	}

	service.logger.Info("seller_created", slog.Int64("seller_id", s.ID))
	return s, nil
}

// UpdateSeller applies only the fields present in the input, leaving the
// others untouched.
func (service *Service) UpdateSeller(ctx context.Context, id int64, input UpdateInput) (*Seller, error) {
	s, err := service.repo.GetSeller(ctx, id)
	if err != nil {
		return nil, notFoundAsSeller(err)
	}

	if input.FirstName != nil {
		s.FirstName = *input.FirstName
	}
	if input.SecondName != nil {
		s.SecondName = *input.SecondName
	}
	if input.Email != nil {
		s.Email = *input.Email
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, s.FirstName).MaxLen(FieldFirstName, s.FirstName, 50).
		Required(FieldSecondName, s.SecondName).MaxLen(FieldSecondName, s.SecondName, 50).
		Required(FieldEmail, s.Email).MaxLen(FieldEmail, s.Email, 50).
		Contains(FieldEmail, s.Email, "@")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateSeller(ctx, s); err != nil {
		return nil, notFoundAsSeller(err)
	}

	service.logger.Info("seller_updated", slog.Int64("seller_id", s.ID))
	return s, nil
}

// DeleteSeller removes the seller and, through the store-level cascade, every
// book it owns.
func (service *Service) DeleteSeller(ctx context.Context, id int64) error {
	if err := service.repo.DeleteSeller(ctx, id); err != nil {
		return notFoundAsSeller(err)
	}

	service.logger.Warn("seller_deleted", slog.Int64("seller_id", id))
	return nil
}

// notFoundAsSeller renames a generic storage NotFound to the entity the
// caller asked about.
func notFoundAsSeller(err error) error {
	if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
		return apperr.NotFound("Seller")
	}
	return err
}
