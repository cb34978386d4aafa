package repository

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/photoproof/internal/logging"
)

// ScanRepository provides persistence APIs for scan records.
type ScanRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewScanRepository creates a new repository instance.
func NewScanRepository(db *gorm.DB, logger *zap.Logger) *ScanRepository {
	return &ScanRepository{db: db, logger: logger.Named("scan_repository")}
}

// AutoMigrate ensures the scan records schema is available, including the
// foreign key back to accounts.
func (r *ScanRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&ScanRecord{})
}

// Save appends a scan record.
func (r *ScanRepository) Save(ctx context.Context, record *ScanRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		wrapped := logging.NewOperationError("repository.save_scan", strconv.FormatUint(uint64(record.AccountID), 10), err)
		r.logger.Error("failed to save scan record", zap.Error(wrapped))
		return wrapped
	}
	return nil
}

// ListByAccount returns the account's scan history, newest first.
func (r *ScanRepository) ListByAccount(ctx context.Context, accountID uint) ([]*ScanRecord, error) {
	var records []*ScanRecord
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByAccount returns how many scans the account has logged.
func (r *ScanRepository) CountByAccount(ctx context.Context, accountID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ScanRecord{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
