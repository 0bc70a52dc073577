package repository

import (
	"context"
	"testing"

	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sqlmockの上にGORMを載せる
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestInventoryGorm_DecreaseEstoqueIfEnough_OK(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewInventoryGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "produtos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := r.DecreaseEstoqueIfEnough(context.Background(), 5, 3)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryGorm_DecreaseEstoqueIfEnough_Insufficient(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewInventoryGormRepository(gdb)

	//条件付きUPDATEが0行なら在庫不足（エラーではない）
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "produtos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := r.DecreaseEstoqueIfEnough(context.Background(), 5, 99)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryGorm_IncreaseEstoque_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewInventoryGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "produtos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.IncreaseEstoque(context.Background(), 404, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestInventoryGorm_SetEstoque_OK(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewInventoryGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "produtos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.SetEstoque(context.Background(), 5, 20)
	assert.NoError(t, err)
}
