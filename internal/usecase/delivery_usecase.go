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
)

type DeliveryUsecase struct {
	tx repo.TransactionManager
}

func NewDeliveryUsecase(tx repo.TransactionManager) *DeliveryUsecase {
	return &DeliveryUsecase{tx: tx}
}

type CreateDeliveryInput struct {
	PedidoID    int64
	EnderecoID  *int64
	Observacoes string
}

// 注文に対して配達レコードを作る。1注文につき1件だけ。
func (u *DeliveryUsecase) CreateDelivery(ctx context.Context, in CreateDeliveryInput) (model.Delivery, error) {
	if in.PedidoID <= 0 {
		return model.Delivery{}, NewValidationError("id_pedido é obrigatório")
	}

	var out model.Delivery

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, in.PedidoID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFoundError("Pedido não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find order: %w", err)
		}
		if o.EstaFinalizado() {
			return NewValidationError("Pedido com status '%s' não pode receber entrega", o.Status)
		}

		//既に配達がある注文は拒否する
		_, err = r.Deliveries().FindByPedidoID(ctx, in.PedidoID)
		if err == nil {
			return NewValidationError("Pedido %d já possui entrega", in.PedidoID)
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("find delivery: %w", err)
		}

		d := model.Delivery{
			PedidoID:    in.PedidoID,
			EnderecoID:  in.EnderecoID,
			Status:      model.DeliveryStatusAguardando,
			Observacoes: strings.TrimSpace(in.Observacoes),
		}

		created, err := r.Deliveries().Create(ctx, d)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		out = created
		return nil
	})

	if err != nil {
		return model.Delivery{}, err
	}
	return out, nil
}

// 配達員を割り当ててAtribuídoにする
func (u *DeliveryUsecase) AssignCourier(ctx context.Context, deliveryID, entregadorID int64) (model.Delivery, error) {
	if deliveryID <= 0 || entregadorID <= 0 {
		return model.Delivery{}, NewValidationError("id inválido")
	}

	var out model.Delivery

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		d, err := r.Deliveries().FindByID(ctx, deliveryID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Entrega não encontrada")
		}
		if err != nil {
			return fmt.Errorf("find delivery: %w", err)
		}

		courier, err := r.Users().FindByID(ctx, entregadorID)
		if errors.Is(err, repo.ErrUserNotFound) || (err == nil && courier == nil) {
			return NewNotFoundError("Entregador não encontrado")
		}
		if err != nil {
			return fmt.Errorf("find courier: %w", err)
		}
		if courier.Tipo != model.RoleEntregador {
			return NewValidationError("Usuário %d não é entregador", entregadorID)
		}

		if !d.Status.PodeTransicionarPara(model.DeliveryStatusAtribuido) {
			return NewValidationError("Entrega com status '%s' não pode ser atribuída", d.Status)
		}

		agora := time.Now()
		d.EntregadorID = &entregadorID
		d.Status = model.DeliveryStatusAtribuido
		d.DataAtribuicao = &agora

		if err := r.Deliveries().Update(ctx, d); err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}

		out = d
		return nil
	})

	if err != nil {
		return model.Delivery{}, err
	}
	return out, nil
}

// 配達状況の更新。出発と完了は日時を記録し、注文側のステータスも進める。
func (u *DeliveryUsecase) UpdateStatus(ctx context.Context, deliveryID int64, novoStatus model.DeliveryStatus) (model.Delivery, error) {
	if deliveryID <= 0 {
		return model.Delivery{}, NewValidationError("id inválido")
	}
	if !model.ValidDeliveryStatus(novoStatus) {
		return model.Delivery{}, NewValidationError("Status '%s' inválido", novoStatus)
	}

	var out model.Delivery

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		d, err := r.Deliveries().FindByID(ctx, deliveryID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Entrega não encontrada")
		}
		if err != nil {
			return fmt.Errorf("find delivery: %w", err)
		}

		if d.Status == novoStatus {
			out = d
			return nil
		}
		if !d.Status.PodeTransicionarPara(novoStatus) {
			return NewValidationError("Entrega com status '%s' não pode mudar para '%s'", d.Status, novoStatus)
		}

		agora := time.Now()
		d.Status = novoStatus
		switch novoStatus {
		case model.DeliveryStatusACaminho:
			d.DataSaida = &agora
		case model.DeliveryStatusEntregue:
			d.DataEntrega = &agora
		}

		if err := r.Deliveries().Update(ctx, d); err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}

		//注文ステータスを追従させる
		if next, ok := orderStatusForDelivery(novoStatus); ok {
			o, err := r.Orders().FindByID(ctx, d.PedidoID)
			if err != nil {
				return fmt.Errorf("find order: %w", err)
			}
			if o.Status != next && o.Status.PodeTransicionarPara(next) {
				if err := r.Orders().UpdateStatus(ctx, d.PedidoID, next); err != nil {
					return fmt.Errorf("update order status: %w", err)
				}
			}
		}

		out = d
		return nil
	})

	if err != nil {
		return model.Delivery{}, err
	}
	return out, nil
}

// 配達の進行に連動する注文ステータス
func orderStatusForDelivery(s model.DeliveryStatus) (model.OrderStatus, bool) {
	switch s {
	case model.DeliveryStatusACaminho:
		return model.OrderStatusSaiuParaEntrega, true
	case model.DeliveryStatusEntregue:
		return model.OrderStatusEntregue, true
	}
	return "", false
}

func (u *DeliveryUsecase) ListDeliveries(ctx context.Context) ([]model.Delivery, error) {
	var outs []model.Delivery
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ds, err := r.Deliveries().List(ctx)
		if err != nil {
			return fmt.Errorf("list deliveries: %w", err)
		}
		outs = ds
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outs == nil {
		outs = []model.Delivery{}
	}
	return outs, nil
}

func (u *DeliveryUsecase) GetDelivery(ctx context.Context, deliveryID int64) (model.Delivery, error) {
	if deliveryID <= 0 {
		return model.Delivery{}, NewValidationError("id inválido")
	}
	var out model.Delivery
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		d, err := r.Deliveries().FindByID(ctx, deliveryID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Entrega não encontrada")
		}
		if err != nil {
			return fmt.Errorf("find delivery: %w", err)
		}
		out = d
		return nil
	})
	if err != nil {
		return model.Delivery{}, err
	}
	return out, nil
}

// 注文IDから配達を引く
func (u *DeliveryUsecase) GetDeliveryByOrder(ctx context.Context, pedidoID int64) (model.Delivery, error) {
	if pedidoID <= 0 {
		return model.Delivery{}, NewValidationError("id inválido")
	}
	var out model.Delivery
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		d, err := r.Deliveries().FindByPedidoID(ctx, pedidoID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Entrega não encontrada")
		}
		if err != nil {
			return fmt.Errorf("find delivery: %w", err)
		}
		out = d
		return nil
	})
	if err != nil {
		return model.Delivery{}, err
	}
	return out, nil
}
