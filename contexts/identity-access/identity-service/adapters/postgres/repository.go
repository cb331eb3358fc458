package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/identity-access/identity-service/domain/entities"
	domainerrors "nusakarya/contexts/identity-access/identity-service/domain/errors"
	"nusakarya/contexts/identity-access/identity-service/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Upsert is one INSERT ... ON CONFLICT (privy_id) DO UPDATE statement. The
// unique index on privy_id makes concurrent syncs for the same identity
// converge on a single row; the loser of the insert race updates instead.
func (r *Repository) Upsert(
	ctx context.Context,
	privyID string,
	profile ports.Profile,
	newID string,
	now time.Time,
) (entities.User, error) {
	row := userModel{
		ID:            strings.TrimSpace(newID),
		PrivyID:       strings.TrimSpace(privyID),
		WalletAddress: profile.WalletAddress,
		Email:         profile.Email,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "privy_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"wallet_address": profile.WalletAddress,
				"email":          profile.Email,
				"updated_at":     now.UTC(),
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return entities.User{}, err
	}

	// Reselect so callers get the canonical row regardless of which side of
	// the conflict clause executed.
	return r.GetByPrivyID(ctx, privyID)
}

func (r *Repository) GetByPrivyID(ctx context.Context, privyID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("privy_id = ?", strings.TrimSpace(privyID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

type userModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	PrivyID       string    `gorm:"column:privy_id;uniqueIndex"`
	WalletAddress *string   `gorm:"column:wallet_address"`
	Email         *string   `gorm:"column:email"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:            m.ID,
		PrivyID:       m.PrivyID,
		WalletAddress: m.WalletAddress,
		Email:         m.Email,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}
