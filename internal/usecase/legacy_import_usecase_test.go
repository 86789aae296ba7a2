package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Kryptamyr/Packer-Tracker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyFixture = `Alice|ORD-1|2024-01-09 08:30:00
Bob|ORD-2|2024-01-10 09:00:00
Carol|ORD-1|2024-01-11 10:00:00
broken line
Dave|ORD-3|2024-01-12 11:00:00
`

func writeLegacyFile(t *testing.T) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "packer_data.txt")
	require.NoError(t, os.WriteFile(p, []byte(legacyFixture), 0o600))

	return p
}

func TestImport_FirstRecordWins(t *testing.T) {
	repo := &memoryOrderRepo{orders: []entity.PackerOrder{{PackerName: "Eve", OrderNumber: "ORD-3"}}}
	u := NewLegacyImportUsecase(quietLogger(), repo)

	result, err := u.Import(context.Background(), writeLegacyFile(t))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Duplicates)
	assert.Equal(t, 1, result.Skipped)

	found, _ := repo.FindByOrderNumber(context.Background(), "ORD-1")
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.PackerName)
	assert.Equal(t, "2024-01-09", found.OrderDate())
}

func TestImport_MissingFile(t *testing.T) {
	u := NewLegacyImportUsecase(quietLogger(), &memoryOrderRepo{})

	_, err := u.Import(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMigrateIfNeeded_EmptyDatabase(t *testing.T) {
	repo := &memoryOrderRepo{}
	u := NewLegacyImportUsecase(quietLogger(), repo)
	path := writeLegacyFile(t)

	migrated, err := u.MigrateIfNeeded(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Len(t, repo.orders, 3)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(path + BackupSuffix)
	assert.NoError(t, err)
}

func TestMigrateIfNeeded_SkipsPopulatedDatabase(t *testing.T) {
	repo := &memoryOrderRepo{orders: []entity.PackerOrder{{PackerName: "Eve", OrderNumber: "X"}}}
	u := NewLegacyImportUsecase(quietLogger(), repo)
	path := writeLegacyFile(t)

	migrated, err := u.MigrateIfNeeded(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Len(t, repo.orders, 1)

	_, err = os.Stat(path)
	assert.NoError(t, err, "file is left in place")
}

func TestMigrateIfNeeded_NoFile(t *testing.T) {
	u := NewLegacyImportUsecase(quietLogger(), &memoryOrderRepo{})

	migrated, err := u.MigrateIfNeeded(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.False(t, migrated)

	migrated, err = u.MigrateIfNeeded(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, migrated)
}
