package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
}

type ChangeQuantityRequest struct {
	Delta int64 `json:"delta"`
}

// /cart, /cart/items/{id} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.patchItem)
	g.DELETE("/items/:id", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.View())
}

// 追加（同一商品は数量加算）。コアは未解決をno-opにするが、HTTPでは404を返す。
func (h *CartHandler) addItem(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	if ok := h.uc.AddToCart(req.ProductID); !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
	}

	return c.JSON(http.StatusOK, h.uc.View())
}

// 数量変更。カートに無いIDはno-op（エラーにしない）。
func (h *CartHandler) patchItem(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.uc.ChangeQuantity(productID, req.Delta)
	return c.JSON(http.StatusOK, h.uc.View())
}

// 明細削除。無ければno-op。
func (h *CartHandler) deleteItem(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.uc.RemoveFromCart(productID)
	return c.JSON(http.StatusOK, h.uc.View())
}
