package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	repo "github.com/Vinicius-Leon/leons-cupcake/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderItemInput struct {
	ProdutoID   int64
	Quantidade  int64
	Observacoes string
}

type PlaceOrderInput struct {
	UserID      int64
	Itens       []PlaceOrderItemInput
	Observacoes string
}

type OrderItemOutput struct {
	ID          int64   `json:"id_item"`
	ProdutoID   int64   `json:"id_produto"`
	NomeProduto string  `json:"nome_produto"`
	Quantidade  int64   `json:"quantidade"`
	Preco       float64 `json:"preco_unitario"`
	Subtotal    float64 `json:"subtotal"`
	Observacoes string  `json:"observacoes,omitempty"`
}

type OrderOutput struct {
	ID               int64             `json:"id_pedido"`
	Numero           string            `json:"numero_pedido"`
	UserID           int64             `json:"id_usuario"`
	DataPedido       time.Time         `json:"data_pedido"`
	DataAtualizacao  time.Time         `json:"data_atualizacao"`
	Subtotal         float64           `json:"subtotal"`
	Desconto         float64           `json:"desconto"`
	TaxaEntrega      float64           `json:"taxa_entrega"`
	ValorTotal       float64           `json:"valor_total"`
	Status           string            `json:"status"`
	FormaPagamento   string            `json:"forma_pagamento,omitempty"`
	Avaliacao        *int16            `json:"avaliacao"`
	QuantidadeItens  int64             `json:"quantidade_itens"`
	PodeSerCancelado bool              `json:"pode_ser_cancelado"`
	PodeSerAvaliado  bool              `json:"pode_ser_avaliado"`
	EstaFinalizado   bool              `json:"esta_finalizado"`
	Itens            []OrderItemOutput `json:"itens"`
}

// 注文作成。検証→在庫引当→明細スナップショット→合計計算→保存を
// 1トランザクションで行う。途中で1件でも失敗したら全部rollback。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if in.UserID <= 0 || len(in.Itens) == 0 {
		return OrderOutput{}, NewValidationError("id_usuario e itens são obrigatórios")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//ユーザー存在確認
		user, err := r.Users().FindByID(ctx, in.UserID)
		if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
			return NewNotFoundError("Usuário não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		subtotal := decimal.Zero
		items := make([]model.OrderItem, 0, len(in.Itens))

		//入力順に処理し、最初の失敗で全体を中断する
		for _, it := range in.Itens {
			if it.Quantidade <= 0 {
				return NewValidationError("Quantidade deve ser positiva")
			}

			p, err := r.Products().FindByID(ctx, it.ProdutoID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewNotFoundError("Produto %d não encontrado", it.ProdutoID)
			}
			if err != nil {
				return fmt.Errorf("find product: %w", err)
			}
			if !p.Ativo {
				return NewNotFoundError("Produto %d não encontrado", it.ProdutoID)
			}

			//在庫引当（足りなければfalse、0未満には絶対にならない）
			ok, err := r.Inventory().DecreaseEstoqueIfEnough(ctx, p.ID, it.Quantidade)
			if err != nil {
				return fmt.Errorf("decrease stock: %w", err)
			}
			if !ok {
				return &InsufficientStockError{Produto: p.Nome}
			}

			//購入時点のスナップショット
			sub := p.Preco.Mul(decimal.NewFromInt(it.Quantidade))
			items = append(items, model.OrderItem{
				ProductID:   p.ID,
				NomeProduto: p.Nome,
				Quantidade:  it.Quantidade,
				Preco:       p.Preco,
				Subtotal:    sub,
				Observacoes: strings.TrimSpace(it.Observacoes),
			})
			subtotal = subtotal.Add(sub)
		}

		agora := time.Now()

		//同一Txの中で採番する
		numero, err := r.Orders().ProximoNumero(ctx, agora)
		if err != nil {
			return fmt.Errorf("next order number: %w", err)
		}

		desconto := decimal.Zero
		taxaEntrega := decimal.Zero
		total := subtotal.Add(taxaEntrega).Sub(desconto)
		if total.IsNegative() {
			total = decimal.Zero
		}

		order := model.Order{
			Numero:      numero,
			UserID:      in.UserID,
			Subtotal:    subtotal,
			Desconto:    desconto,
			TaxaEntrega: taxaEntrega,
			ValorTotal:  total,
			Status:      model.OrderStatusAguardandoPagamento,
			Observacoes: strings.TrimSpace(in.Observacoes),
			CreatedAt:   agora,
			UpdatedAt:   agora,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		order.ID = orderID
		out = toOrderOutput(order, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 全注文を新しい順で返す
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return fmt.Errorf("list order items: %w", err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 指定ユーザーの注文履歴
func (u *OrderUsecase) ListOrdersByUser(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return nil, NewValidationError("id inválido")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByID(ctx, userID)
		if errors.Is(err, repo.ErrUserNotFound) || (err == nil && user == nil) {
			return NewHTTPError(http.StatusNotFound, "Usuário não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}

		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return fmt.Errorf("list order items: %w", err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError("id inválido")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("list order items: %w", err)
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// キャンセル。明細の数量を在庫へ戻してからCanceladoにする。
// 可能なのはAguardando pagamento/Pago/Em preparoのみ。
func (u *OrderUsecase) CancelOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError("id inválido")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}

		if !o.PodeSerCancelado() {
			return NewValidationError("Pedido com status '%s' não pode ser cancelado", o.Status)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("list order items: %w", err)
		}

		//在庫戻し
		for _, it := range items {
			if err := r.Inventory().IncreaseEstoque(ctx, it.ProductID, it.Quantidade); err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelado); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		o.Status = model.OrderStatusCancelado
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 支払い確定。Aguardando pagamentoのときだけ。
func (u *OrderUsecase) ConfirmPayment(ctx context.Context, orderID int64, forma string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewValidationError("id inválido")
	}
	forma = strings.TrimSpace(forma)
	switch forma {
	case "cartao_credito", "cartao_debito", "pix", "dinheiro", "mercadopago":
	default:
		return OrderOutput{}, NewValidationError("Forma de pagamento '%s' inválida", forma)
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}

		if o.Status != model.OrderStatusAguardandoPagamento {
			return NewValidationError("Pedido com status '%s' não pode ter pagamento confirmado", o.Status)
		}

		if err := r.Orders().SetFormaPagamento(ctx, orderID, forma); err != nil {
			return fmt.Errorf("set payment: %w", err)
		}
		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusPago); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("list order items: %w", err)
		}

		o.Status = model.OrderStatusPago
		o.FormaPagamento = forma
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 管理者によるステータス更新。Canceladoへの遷移は在庫を戻す。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, novoStatus model.OrderStatus) error {
	if orderID <= 0 {
		return NewValidationError("id inválido")
	}
	if !model.ValidOrderStatus(novoStatus) {
		return NewValidationError("Status '%s' inválido", novoStatus)
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}

		//同じなら何もしない
		if o.Status == novoStatus {
			return nil
		}
		if !o.Status.PodeTransicionarPara(novoStatus) {
			return NewValidationError("Pedido com status '%s' não pode mudar para '%s'", o.Status, novoStatus)
		}

		//キャンセルは在庫を戻す
		if novoStatus == model.OrderStatusCancelado {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("list order items: %w", err)
			}
			for _, it := range items {
				if err := r.Inventory().IncreaseEstoque(ctx, it.ProductID, it.Quantidade); err != nil {
					return fmt.Errorf("restore stock: %w", err)
				}
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, novoStatus); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
}

// 配達完了後の評価（1〜5）。一度だけ。
func (u *OrderUsecase) AddReview(ctx context.Context, orderID int64, nota int16, comentario string) error {
	if orderID <= 0 {
		return NewValidationError("id inválido")
	}
	if nota < 1 || nota > 5 {
		return NewValidationError("Avaliação deve estar entre 1 e 5")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}

		if !o.PodeSerAvaliado() {
			return NewValidationError("Este pedido não pode ser avaliado")
		}

		if err := r.Orders().SetAvaliacao(ctx, orderID, nota, strings.TrimSpace(comentario), time.Now()); err != nil {
			return fmt.Errorf("set review: %w", err)
		}
		return nil
	})
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var qtd int64
	for _, it := range items {
		qtd += it.Quantidade
		outItems = append(outItems, OrderItemOutput{
			ID:          it.ID,
			ProdutoID:   it.ProductID,
			NomeProduto: it.NomeProduto,
			Quantidade:  it.Quantidade,
			Preco:       it.Preco.InexactFloat64(),
			Subtotal:    it.Subtotal.InexactFloat64(),
			Observacoes: it.Observacoes,
		})
	}

	return OrderOutput{
		ID:               o.ID,
		Numero:           o.Numero,
		UserID:           o.UserID,
		DataPedido:       o.CreatedAt,
		DataAtualizacao:  o.UpdatedAt,
		Subtotal:         o.Subtotal.InexactFloat64(),
		Desconto:         o.Desconto.InexactFloat64(),
		TaxaEntrega:      o.TaxaEntrega.InexactFloat64(),
		ValorTotal:       o.ValorTotal.InexactFloat64(),
		Status:           string(o.Status),
		FormaPagamento:   o.FormaPagamento,
		Avaliacao:        o.Avaliacao,
		QuantidadeItens:  qtd,
		PodeSerCancelado: o.PodeSerCancelado(),
		PodeSerAvaliado:  o.PodeSerAvaliado(),
		EstaFinalizado:   o.EstaFinalizado(),
		Itens:            outItems,
	}
}
