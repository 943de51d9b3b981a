package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retailrelay/commerce-api/internal/api/metrics"
	"github.com/retailrelay/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations. The write
// operations are mounted behind Auth + RBAC(ADMIN) in the router.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/v1/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Page size (default 10, max 100)"
// @Param        category  query     string  false  "Exact category filter"
// @Param        search    query     string  false  "Case-insensitive search over name and description"
// @Success      200       {object}  envelope
// @Failure      500       {object}  envelope
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	res, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Page:     q.Page,
		Limit:    q.Limit,
		Category: q.Category,
		Search:   q.Search,
	})
	if err != nil {
		return err
	}

	metrics.CatalogQueriesTotal.WithLabelValues(queryKind(q)).Inc()
	return respondPage(c, http.StatusOK, "Products retrieved successfully", res.Items, toPagination(res))
}

// Get handles GET /api/v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product retrieved successfully", product)
}

// Create handles POST /api/v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return respond(c, http.StatusCreated, "Product created successfully", product)
}

// Update handles PUT /api/v1/products/:id.
//
// @Summary      Update a product (partial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return respond(c, http.StatusOK, "Product updated successfully", product)
}

// Delete handles DELETE /api/v1/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("delete").Inc()
	return respond(c, http.StatusOK, "Product deleted successfully", nil)
}

func queryKind(q listProductsQuery) string {
	switch {
	case q.Category != "" && q.Search != "":
		return "category_search"
	case q.Category != "":
		return "category"
	case q.Search != "":
		return "search"
	default:
		return "all"
	}
}
