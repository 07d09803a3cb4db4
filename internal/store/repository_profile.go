// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ai-builder/internal/logger"
	"github.com/MKhiriev/ai-builder/models"
	"github.com/jackc/pgerrcode"
)

type profileRepository struct {
	*DB
}

func NewProfileRepository(db *DB) ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) CreateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createProfile,
		user.UserID, user.Email, user.Name, user.Plan, user.Credits, user.CreditsUsed)

	var created models.User
	err := row.Scan(&created.UserID, &created.Email, &created.Name, &created.Plan,
		&created.Credits, &created.CreditsUsed, &created.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", "CreateProfile").Str("user_id", user.UserID).Msg("profile already exists")
			return models.User{}, ErrProfileAlreadyExists
		}
		log.Err(err).Str("func", "CreateProfile").Msg("error scanning inserted profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, getProfile, userID)

	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.Plan,
		&user.Credits, &user.CreditsUsed, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "GetProfile").Msg("error scanning profile row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *profileRepository) DeductCredits(ctx context.Context, userID string, cost int) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deductCredits, cost, userID)
	if err != nil {
		log.Err(err).Str("func", "DeductCredits").Msg("error executing credit decrement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "DeductCredits").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	// zero rows means either the balance guard failed or the profile is gone;
	// a follow-up read tells the two apart.
	if _, err := r.GetProfile(ctx, userID); err != nil {
		return err
	}

	return ErrInsufficientCredits
}
