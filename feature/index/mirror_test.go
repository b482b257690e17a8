package index

import (
	"context"
	"errors"
	"testing"

	"gdkp-ledger/feature/session/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormMirror_Sync(t *testing.T) {
	t.Run("ReplacesRows", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `gdkp_index`").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("INSERT INTO `gdkp_index`").WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectCommit()

		err := NewGormMirror(db).Sync(context.Background(), sampleEntries())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyIndexOnlyClears", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `gdkp_index`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := NewGormMirror(db).Sync(context.Background(), []models.IndexEntry{})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnInsertFailure", func(t *testing.T) {
		db, mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `gdkp_index`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO `gdkp_index`").WillReturnError(errors.New("duplicate"))
		mock.ExpectRollback()

		err := NewGormMirror(db).Sync(context.Background(), sampleEntries())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert index rows")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRow_TableName(t *testing.T) {
	assert.Equal(t, "gdkp_index", Row{}.TableName())
}
