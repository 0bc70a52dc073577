package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/domain/model"
	"github.com/Vinicius-Leon/leons-cupcake/internal/middleware"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

type DeliveryCreateRequest struct {
	PedidoID    int64  `json:"id_pedido"`
	EnderecoID  *int64 `json:"id_endereco"`
	Observacoes string `json:"observacoes"`
}

type AssignRequest struct {
	EntregadorID int64 `json:"id_entregador"`
}

func (h *DeliveryHandler) RegisterRoutes(authed *echo.Group) {
	g := authed.Group("/entregas")

	g.POST("", h.create, middleware.AdminRoleGuard())
	g.GET("", h.list, middleware.EntregadorRoleGuard())
	g.GET("/:id", h.detail, middleware.EntregadorRoleGuard())
	g.PUT("/:id/atribuir", h.assign, middleware.AdminRoleGuard())
	g.PUT("/:id/status", h.updateStatus, middleware.EntregadorRoleGuard())

	//注文側から配達を引く
	authed.GET("/pedidos/:id/entrega", h.byOrder)
}

func (h *DeliveryHandler) create(c echo.Context) error {
	var req DeliveryCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.CreateDelivery(c.Request().Context(), usecase.CreateDeliveryInput{
		PedidoID:    req.PedidoID,
		EnderecoID:  req.EnderecoID,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *DeliveryHandler) list(c echo.Context) error {
	out, err := h.uc.ListDeliveries(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	out, err := h.uc.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) byOrder(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	out, err := h.uc.GetDeliveryByOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) assign(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.AssignCourier(c.Request().Context(), id, req.EntregadorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DeliveryHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "id inválido"})
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, model.DeliveryStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
