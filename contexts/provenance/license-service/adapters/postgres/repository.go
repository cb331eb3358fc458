package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/provenance/license-service/domain/entities"

	"gorm.io/gorm"
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

func (r *Repository) Create(ctx context.Context, license entities.License) error {
	row := licenseModelFromEntity(license)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.License, error) {
	var rows []licenseModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByKarya(ctx context.Context, karyaID string) ([]entities.License, error) {
	var rows []licenseModel
	if err := r.db.WithContext(ctx).
		Where("karya_id = ?", strings.TrimSpace(karyaID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

type licenseModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	KaryaID     string    `gorm:"column:karya_id"`
	UserID      string    `gorm:"column:user_id"`
	Type        string    `gorm:"column:type"`
	Price       float64   `gorm:"column:price"`
	Duration    int       `gorm:"column:duration"`
	Description string    `gorm:"column:description"`
	Tnc         string    `gorm:"column:tnc"`
	TxHash      *string   `gorm:"column:tx_hash"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (licenseModel) TableName() string {
	return "licenses"
}

func licenseModelFromEntity(item entities.License) licenseModel {
	return licenseModel{
		ID:          strings.TrimSpace(item.ID),
		KaryaID:     strings.TrimSpace(item.KaryaID),
		UserID:      strings.TrimSpace(item.UserID),
		Type:        strings.TrimSpace(item.Type),
		Price:       item.Price,
		Duration:    item.Duration,
		Description: strings.TrimSpace(item.Description),
		Tnc:         item.Tnc,
		TxHash:      item.TxHash,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m licenseModel) toEntity() entities.License {
	return entities.License{
		ID:          m.ID,
		KaryaID:     m.KaryaID,
		UserID:      m.UserID,
		Type:        m.Type,
		Price:       m.Price,
		Duration:    m.Duration,
		Description: m.Description,
		Tnc:         m.Tnc,
		TxHash:      m.TxHash,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func toEntities(rows []licenseModel) []entities.License {
	items := make([]entities.License, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}
