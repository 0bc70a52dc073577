package server

import (
	"net/http"

	"github.com/Vinicius-Leon/leons-cupcake/internal/config"
	"github.com/Vinicius-Leon/leons-cupcake/internal/handler"
	appmw "github.com/Vinicius-Leon/leons-cupcake/internal/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Category     *handler.CategoryHandler
	Product      *handler.ProductHandler
	AdminProduct *handler.AdminProductHandler
	Order        *handler.OrderHandler
	Delivery     *handler.DeliveryHandler
	Address      *handler.AddressHandler
}

// 全ルートを/api配下に登録する。
// public: 認証不要 / authed: token必須 / admin: token+admin必須
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	public := api.Group("")
	authed := api.Group("", appmw.AuthJWT(cfg))
	admin := api.Group("", appmw.AuthJWT(cfg), appmw.AdminRoleGuard())

	h.Auth.RegisterRoutes(public, authed)
	h.User.RegisterRoutes(authed, admin)
	h.Category.RegisterRoutes(public, admin)
	h.Product.RegisterRoutes(public)
	h.AdminProduct.RegisterRoutes(admin)
	h.Order.RegisterRoutes(authed)
	h.Delivery.RegisterRoutes(authed)
	h.Address.RegisterRoutes(authed)
}
