package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"nusakarya/contexts/provenance/karya-registry/domain/entities"
	domainerrors "nusakarya/contexts/provenance/karya-registry/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
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

// Create inserts a work. The unique index on file_hash is the authoritative
// content-addressing guarantee; a duplicate insert surfaces as
// ErrFileHashExists no matter what the advisory pre-check saw.
func (r *Repository) Create(ctx context.Context, karya entities.Karya) error {
	row := karyaModelFromEntity(karya)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrFileHashExists
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (entities.Karya, error) {
	var row karyaModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(id)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Karya{}, domainerrors.ErrKaryaNotFound
		}
		return entities.Karya{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByHash(ctx context.Context, hash string) (entities.Karya, error) {
	var row karyaModel
	err := r.db.WithContext(ctx).
		Where("file_hash = ?", strings.TrimSpace(hash)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Karya{}, domainerrors.ErrKaryaNotFound
		}
		return entities.Karya{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListByOwner(ctx context.Context, userID string) ([]entities.Karya, error) {
	var rows []karyaModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Karya, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) HashExists(ctx context.Context, hash string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&karyaModel{}).
		Where("file_hash = ?", strings.TrimSpace(hash)).
		Count(&count).
		Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type karyaModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Type        string    `gorm:"column:type"`
	Category    *string   `gorm:"column:category"`
	Tags        []string  `gorm:"column:tag;type:jsonb;serializer:json"`
	FileURL     string    `gorm:"column:file_url"`
	FileHash    string    `gorm:"column:file_hash;uniqueIndex"`
	NftID       *string   `gorm:"column:nft_id"`
	TxHash      *string   `gorm:"column:tx_hash"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (karyaModel) TableName() string {
	return "karya"
}

func karyaModelFromEntity(item entities.Karya) karyaModel {
	return karyaModel{
		ID:          strings.TrimSpace(item.ID),
		UserID:      strings.TrimSpace(item.UserID),
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		Type:        strings.TrimSpace(item.Type),
		Category:    item.Category,
		Tags:        copyOrEmpty(item.Tags),
		FileURL:     strings.TrimSpace(item.FileURL),
		FileHash:    strings.TrimSpace(item.FileHash),
		NftID:       item.NftID,
		TxHash:      item.TxHash,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m karyaModel) toEntity() entities.Karya {
	return entities.Karya{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Type:        m.Type,
		Category:    m.Category,
		Tags:        copyOrEmpty(m.Tags),
		FileURL:     m.FileURL,
		FileHash:    m.FileHash,
		NftID:       m.NftID,
		TxHash:      m.TxHash,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func copyOrEmpty(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	return append([]string(nil), items...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
