package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

// CatalogHandler handles product search and detail requests.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type searchResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// Search handles GET /api/search.
//
// @Summary      Search the product catalog
// @Tags         catalog
// @Produce      json
// @Param        query     query     string  false  "Free-text query"
// @Param        category  query     string  false  "Category filter"
// @Param        keywords  query     string  false  "Keyword filter"
// @Success      200       {object}  searchResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	products, err := h.service.Search(c.Request().Context(), ports.SearchQuery{
		Query:    c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Keywords: c.QueryParam("keywords"),
	})
	if err != nil {
		// All-or-nothing: the client never sees a partial list.
		return err
	}

	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, searchResponse{Products: products, Count: len(products)})
}

// Detail handles GET /api/productDetails. The id is validated as numeric
// before any upstream call is made.
//
// @Summary      Get product details
// @Tags         catalog
// @Produce      json
// @Param        id   query     string  true  "Numeric product id"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/productDetails [get]
func (h *CatalogHandler) Detail(c echo.Context) error {
	rawID := c.QueryParam("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid product id %q: must be numeric", rawID))
	}

	product, err := h.service.Detail(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}
