package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	"github.com/Vinicius-Leon/leons-cupcake/internal/middleware"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	ProdutoID   int64  `json:"id_produto"`
	Quantidade  *int64 `json:"quantidade"`
	Observacoes string `json:"observacoes"`
}

type OrderCreateRequest struct {
	UserID      int64              `json:"id_usuario"`
	Itens       []OrderItemRequest `json:"itens"`
	Observacoes string             `json:"observacoes"`
}

type PaymentRequest struct {
	FormaPagamento string `json:"forma_pagamento"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ReviewRequest struct {
	Avaliacao  int16  `json:"avaliacao"`
	Comentario string `json:"comentario"`
}

func (h *OrderHandler) RegisterRoutes(authed *echo.Group) {
	g := authed.Group("/pedidos")

	g.POST("/", h.create)
	g.POST("", h.create)
	g.GET("", h.list, middleware.AdminRoleGuard())
	g.GET("/:id", h.detail)
	g.GET("/usuario/:id", h.listByUser)
	g.PUT("/:id/cancelar", h.cancel)
	g.PUT("/:id/pagamento", h.confirmPayment)
	g.PUT("/:id/status", h.updateStatus, middleware.AdminRoleGuard())
	g.POST("/:id/avaliacao", h.review)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	//clienteは自分の注文しか作れない。adminは代理作成できる。
	if req.UserID == 0 {
		req.UserID = userID
	}
	if req.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	itens := make([]usecase.PlaceOrderItemInput, 0, len(req.Itens))
	for _, it := range req.Itens {
		//quantidade省略時は1
		qtd := int64(1)
		if it.Quantidade != nil {
			qtd = *it.Quantidade
		}
		itens = append(itens, usecase.PlaceOrderItemInput{
			ProdutoID:   it.ProdutoID,
			Quantidade:  qtd,
			Observacoes: it.Observacoes,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		UserID:      req.UserID,
		Itens:       itens,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	//他人の注文は見せない
	if out.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listByUser(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}
	if id != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	out, err := h.uc.ListOrdersByUser(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	//本人か管理者だけキャンセルできる
	atual, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if atual.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	out, err := h.uc.CancelOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) confirmPayment(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	atual, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if atual.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	out, err := h.uc.ConfirmPayment(c.Request().Context(), id, req.FormaPagamento)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status)); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) review(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	atual, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	//評価できるのは注文した本人だけ
	if atual.UserID != userID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Erro: "Acesso negado"})
	}

	if err := h.uc.AddReview(c.Request().Context(), id, req.Avaliacao, req.Comentario); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"mensagem": "Avaliação registrada"})
}
