package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/infra/catalog"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	// カタログ取得の失敗は上流のせいなので502
	var fe *catalog.FetchError
	if errors.As(err, &fe) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "catalog fetch failed"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewProductHandler(uc *usecase.CartUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
}

type ProductListResponse struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// 一覧＝カタログ再取得の唯一のトリガ
func (h *ProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductListResponse{
		Items: items,
		Total: len(items),
	})
}
