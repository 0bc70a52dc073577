package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOrderGorm_ProximoNumero_FirstOfYear(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	agora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	//その年の注文がまだ無い
	mock.ExpectQuery(`SELECT (.+) FROM "pedidos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero_pedido"}))

	numero, err := r.ProximoNumero(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, "LCC-2026-000001", numero)
}

func TestOrderGorm_ProximoNumero_Increments(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	agora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "pedidos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "numero_pedido"}).
			AddRow(41, "LCC-2026-000041"))

	numero, err := r.ProximoNumero(context.Background(), agora)
	assert.NoError(t, err)
	assert.Equal(t, "LCC-2026-000042", numero)
}

func TestOrderGorm_UpdateStatus_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "pedidos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := r.UpdateStatus(context.Background(), 999, model.OrderStatusPago)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestOrderGorm_FindByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewOrderGormRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "pedidos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByID(context.Background(), 123)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
