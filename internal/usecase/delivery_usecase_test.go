package usecase_test

import (
	"context"
	"testing"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func entregadorAtivo(id int64) *model.User {
	return &model.User{ID: id, Nome: "João", Tipo: model.RoleEntregador, Ativo: true}
}

func TestDeliveryUsecase_Create_OrderNotFound(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewDeliveryUsecase(tx)

	_, err := uc.CreateDelivery(context.Background(), usecase.CreateDeliveryInput{PedidoID: 99})
	assertErrContains(t, err, "Pedido não encontrado")
}

func TestDeliveryUsecase_Create_DuplicatePerOrder(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	deliveriesRepo := new(DeliveryRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, deliveries: deliveriesRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, Status: model.OrderStatusPago,
	}, nil)
	deliveriesRepo.On("FindByPedidoID", mock.Anything, int64(10)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusAguardando,
	}, nil)

	uc := usecase.NewDeliveryUsecase(tx)

	_, err := uc.CreateDelivery(context.Background(), usecase.CreateDeliveryInput{PedidoID: 10})
	assertErrContains(t, err, "já possui entrega")

	deliveriesRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeliveryUsecase_Create_Success(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	deliveriesRepo := new(DeliveryRepoMock)

	tx.Repos = &TxReposMock{orders: ordersRepo, deliveries: deliveriesRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	ordersRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, Status: model.OrderStatusPronto,
	}, nil)
	deliveriesRepo.On("FindByPedidoID", mock.Anything, int64(10)).Return(model.Delivery{}, repo.ErrNotFound)
	deliveriesRepo.On("Create", mock.Anything, mock.Anything).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusAguardando,
	}, nil)

	uc := usecase.NewDeliveryUsecase(tx)

	out, err := uc.CreateDelivery(context.Background(), usecase.CreateDeliveryInput{PedidoID: 10})
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusAguardando, out.Status)

	deliveriesRepo.AssertExpectations(t)
}

func TestDeliveryUsecase_Assign_NotACourier(t *testing.T) {
	tx := new(TxManagerMock)
	deliveriesRepo := new(DeliveryRepoMock)
	usersRepo := new(UserRepoMock)

	tx.Repos = &TxReposMock{deliveries: deliveriesRepo, users: usersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	deliveriesRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusAguardando,
	}, nil)
	usersRepo.On("FindByID", mock.Anything, int64(2)).Return(clienteAtivo(2), nil)

	uc := usecase.NewDeliveryUsecase(tx)

	_, err := uc.AssignCourier(context.Background(), 3, 2)
	assertErrContains(t, err, "não é entregador")
}

func TestDeliveryUsecase_Assign_Success(t *testing.T) {
	tx := new(TxManagerMock)
	deliveriesRepo := new(DeliveryRepoMock)
	usersRepo := new(UserRepoMock)

	tx.Repos = &TxReposMock{deliveries: deliveriesRepo, users: usersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	deliveriesRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusAguardando,
	}, nil)
	usersRepo.On("FindByID", mock.Anything, int64(7)).Return(entregadorAtivo(7), nil)
	deliveriesRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewDeliveryUsecase(tx)

	out, err := uc.AssignCourier(context.Background(), 3, 7)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusAtribuido, out.Status)
	if assert.NotNil(t, out.EntregadorID) {
		assert.Equal(t, int64(7), *out.EntregadorID)
	}
	assert.NotNil(t, out.DataAtribuicao)
}

func TestDeliveryUsecase_UpdateStatus_InvalidTransition(t *testing.T) {
	tx := new(TxManagerMock)
	deliveriesRepo := new(DeliveryRepoMock)

	tx.Repos = &TxReposMock{deliveries: deliveriesRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	deliveriesRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusAguardando,
	}, nil)

	uc := usecase.NewDeliveryUsecase(tx)

	//出発前にいきなり完了へは飛べない
	_, err := uc.UpdateStatus(context.Background(), 3, model.DeliveryStatusEntregue)
	assertErrContains(t, err, "não pode mudar")
}

func TestDeliveryUsecase_UpdateStatus_Delivered_AdvancesOrder(t *testing.T) {
	tx := new(TxManagerMock)
	deliveriesRepo := new(DeliveryRepoMock)
	ordersRepo := new(OrderRepoMock)

	tx.Repos = &TxReposMock{deliveries: deliveriesRepo, orders: ordersRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	deliveriesRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusACaminho,
	}, nil)
	deliveriesRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	ordersRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, Status: model.OrderStatusSaiuParaEntrega,
	}, nil)
	ordersRepo.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusEntregue).Return(nil)

	uc := usecase.NewDeliveryUsecase(tx)

	out, err := uc.UpdateStatus(context.Background(), 3, model.DeliveryStatusEntregue)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusEntregue, out.Status)
	assert.NotNil(t, out.DataEntrega)

	ordersRepo.AssertExpectations(t)
}

func TestDeliveryUsecase_UpdateStatus_SameStatus_NoOp(t *testing.T) {
	tx := new(TxManagerMock)
	deliveriesRepo := new(DeliveryRepoMock)

	tx.Repos = &TxReposMock{deliveries: deliveriesRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	deliveriesRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Delivery{
		ID: 3, PedidoID: 10, Status: model.DeliveryStatusACaminho,
	}, nil)

	uc := usecase.NewDeliveryUsecase(tx)

	out, err := uc.UpdateStatus(context.Background(), 3, model.DeliveryStatusACaminho)
	assert.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusACaminho, out.Status)

	deliveriesRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
