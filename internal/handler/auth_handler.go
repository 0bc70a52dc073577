package handler

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/middleware"
	"github.com/Vinicius-Leon/leons-cupcake/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type RegisterRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Senha     string `json:"senha"`
	Tipo      string `json:"tipo_usuario"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// public側とtoken必須側でグループを分けて登録する
func (h *AuthHandler) RegisterRoutes(public *echo.Group, authed *echo.Group) {
	public.POST("/auth/register", h.register)
	public.POST("/auth/login", h.login)
	authed.GET("/auth/me", h.me)
	authed.POST("/auth/refresh", h.refresh)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Senha:     req.Senha,
		Tipo:      req.Tipo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Erro: "corpo inválido"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	out, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) refresh(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Erro: "Não autenticado"})
	}

	out, err := h.uc.Refresh(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// AuthJWTがcontextに入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func getUserTipoFromContext(c echo.Context) string {
	tipo, _ := c.Get(middleware.CtxUserTipoKey).(string)
	return tipo
}

func isAdmin(c echo.Context) bool {
	return getUserTipoFromContext(c) == "admin"
}
