package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Kryptamyr/Packer-Tracker/internal/delivery/dto"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"
	"github.com/Kryptamyr/Packer-Tracker/internal/domain/repository"
	"github.com/Kryptamyr/Packer-Tracker/internal/legacy"

	"github.com/sirupsen/logrus"
)

// BackupSuffix is appended to a legacy file once it has been migrated.
const BackupSuffix = ".backup"

type LegacyImportUsecase interface {
	Import(ctx context.Context, path string) (*dto.LegacyImportResponse, error)
	MigrateIfNeeded(ctx context.Context, path string) (bool, error)
}

type legacyImportUsecase struct {
	log       *logrus.Logger
	orderRepo repository.PackerOrderRepository
}

func NewLegacyImportUsecase(log *logrus.Logger, orderRepo repository.PackerOrderRepository) LegacyImportUsecase {
	return &legacyImportUsecase{
		log:       log,
		orderRepo: orderRepo,
	}
}

// Import loads every record of the file at path. The first record of an
// order number wins; later ones and orders already stored count as duplicates.
func (u *legacyImportUsecase) Import(ctx context.Context, path string) (*dto.LegacyImportResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open legacy file: %w", err)
	}
	defer file.Close()

	records, skipped, err := legacy.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse legacy file: %w", err)
	}

	result := &dto.LegacyImportResponse{Skipped: skipped}
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if _, ok := seen[rec.OrderNumber]; ok {
			result.Duplicates++
			continue
		}
		seen[rec.OrderNumber] = struct{}{}

		order := &entity.PackerOrder{
			PackerName:  rec.PackerName,
			OrderNumber: rec.OrderNumber,
			RecordedAt:  rec.RecordedAt,
		}
		if err := u.orderRepo.Create(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicateOrderNumber) {
				result.Duplicates++
				continue
			}
			u.log.Warnf("Failed to import order %s: %+v", rec.OrderNumber, err)
			return result, fmt.Errorf("import order %s: %w", rec.OrderNumber, err)
		}
		result.Imported++
	}

	u.log.WithFields(logrus.Fields{
		"file":       path,
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
		"skipped":    result.Skipped,
	}).Info("Legacy data imported")

	return result, nil
}

// MigrateIfNeeded imports path into an empty database and renames the file
// with BackupSuffix. It reports whether a migration ran.
func (u *legacyImportUsecase) MigrateIfNeeded(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat legacy file: %w", err)
	}

	total, err := u.orderRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count orders: %+v", err)
		return false, err
	}
	if total > 0 {
		u.log.Debugf("Skipping legacy migration, %d orders already stored", total)
		return false, nil
	}

	u.log.Infof("Migrating legacy data from %s", path)
	if _, err := u.Import(ctx, path); err != nil {
		return false, err
	}

	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return true, fmt.Errorf("backup legacy file: %w", err)
	}
	u.log.Infof("Legacy data backed up as %s", path+BackupSuffix)

	return true, nil
}
