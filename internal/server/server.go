package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func New(
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, productH, cartH, checkoutH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
