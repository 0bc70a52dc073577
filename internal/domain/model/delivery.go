package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusAguardando   DeliveryStatus = "Aguardando"
	DeliveryStatusAtribuido    DeliveryStatus = "Atribuído"
	DeliveryStatusACaminho     DeliveryStatus = "A caminho"
	DeliveryStatusProximo      DeliveryStatus = "Próximo ao destino"
	DeliveryStatusEntregue     DeliveryStatus = "Entregue"
	DeliveryStatusNaoEntregue  DeliveryStatus = "Não entregue"
	DeliveryStatusCancelado    DeliveryStatus = "Cancelado"
)

func ValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliveryStatusAguardando, DeliveryStatusAtribuido, DeliveryStatusACaminho,
		DeliveryStatusProximo, DeliveryStatusEntregue, DeliveryStatusNaoEntregue,
		DeliveryStatusCancelado:
		return true
	}
	return false
}

// 配達の遷移ルール
func (s DeliveryStatus) PodeTransicionarPara(next DeliveryStatus) bool {
	switch next {
	case DeliveryStatusAtribuido:
		return s == DeliveryStatusAguardando
	case DeliveryStatusACaminho:
		return s == DeliveryStatusAguardando || s == DeliveryStatusAtribuido
	case DeliveryStatusProximo:
		return s == DeliveryStatusACaminho
	case DeliveryStatusEntregue, DeliveryStatusNaoEntregue:
		return s == DeliveryStatusACaminho || s == DeliveryStatusProximo
	case DeliveryStatusCancelado:
		return s != DeliveryStatusEntregue && s != DeliveryStatusCancelado
	}
	return false
}

// 1注文につき配達は1件
type Delivery struct {
	ID           int64          `gorm:"primaryKey;autoIncrement" json:"id_entrega"`
	PedidoID     int64          `gorm:"column:id_pedido;not null;uniqueIndex" json:"id_pedido"`
	EntregadorID *int64         `gorm:"column:id_entregador;index" json:"id_entregador"`
	EnderecoID   *int64         `gorm:"column:id_endereco" json:"id_endereco"`
	Status       DeliveryStatus `gorm:"type:varchar(30);not null;index" json:"status"`

	DataAtribuicao *time.Time `json:"data_atribuicao"`
	DataSaida      *time.Time `json:"data_saida"`
	DataEntrega    *time.Time `json:"data_entrega"`

	Observacoes string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `gorm:"column:criado_em;not null;autoCreateTime" json:"criado_em"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;not null;autoUpdateTime" json:"atualizado_em"`
}

func (Delivery) TableName() string { return "entregas" }

func (d Delivery) EmAndamento() bool {
	switch d.Status {
	case DeliveryStatusAtribuido, DeliveryStatusACaminho, DeliveryStatusProximo:
		return true
	}
	return false
}

func (d Delivery) Concluida() bool {
	switch d.Status {
	case DeliveryStatusEntregue, DeliveryStatusNaoEntregue, DeliveryStatusCancelado:
		return true
	}
	return false
}
