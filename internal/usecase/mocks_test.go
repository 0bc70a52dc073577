package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	inventory  repo.InventoryRepository
	users      repo.UserRepository
	deliveries repo.DeliveryRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *TxReposMock) Users() repo.UserRepository           { return r.users }
func (r *TxReposMock) Deliveries() repo.DeliveryRepository  { return r.deliveries }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SetFormaPagamento(ctx context.Context, orderID int64, forma string) error {
	args := m.Called(ctx, orderID, forma)
	return args.Error(0)
}

func (m *OrderRepoMock) SetAvaliacao(ctx context.Context, orderID int64, nota int16, comentario string, quando time.Time) error {
	args := m.Called(ctx, orderID, nota, comentario, quando)
	return args.Error(0)
}

func (m *OrderRepoMock) ProximoNumero(ctx context.Context, agora time.Time) (string, error) {
	args := m.Called(ctx, agora)
	return args.String(0), args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAtivos(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) SetEstoque(ctx context.Context, productID int64, novoEstoque int64) error {
	args := m.Called(ctx, productID, novoEstoque)
	return args.Error(0)
}

func (m *InventoryRepoMock) DecreaseEstoqueIfEnough(ctx context.Context, productID int64, qtd int64) (bool, error) {
	args := m.Called(ctx, productID, qtd)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseEstoque(ctx context.Context, productID int64, qtd int64) error {
	args := m.Called(ctx, productID, qtd)
	return args.Error(0)
}

func (m *InventoryRepoMock) CreateAjuste(ctx context.Context, ajuste model.StockAdjustment) error {
	args := m.Called(ctx, ajuste)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepoMock) UpdateUltimoAcesso(ctx context.Context, userID int64, quando time.Time) error {
	args := m.Called(ctx, userID, quando)
	return args.Error(0)
}

type DeliveryRepoMock struct{ mock.Mock }

func (m *DeliveryRepoMock) Create(ctx context.Context, d model.Delivery) (model.Delivery, error) {
	args := m.Called(ctx, d)
	created, _ := args.Get(0).(model.Delivery)
	return created, args.Error(1)
}

func (m *DeliveryRepoMock) FindByID(ctx context.Context, id int64) (model.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(model.Delivery)
	return d, args.Error(1)
}

func (m *DeliveryRepoMock) FindByPedidoID(ctx context.Context, pedidoID int64) (model.Delivery, error) {
	args := m.Called(ctx, pedidoID)
	d, _ := args.Get(0).(model.Delivery)
	return d, args.Error(1)
}

func (m *DeliveryRepoMock) List(ctx context.Context) ([]model.Delivery, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]model.Delivery)
	return ds, args.Error(1)
}

func (m *DeliveryRepoMock) Update(ctx context.Context, d model.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// =====================
// Helper: error contains（エラー実装の詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
