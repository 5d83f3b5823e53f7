package http

import (
	"errors"
	"log/slog"
	"net/http"

	"sculpture_shop/internal/lib/logger/sl"
	taxonomysvc "sculpture_shop/internal/services/taxonomy_service"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetCategories godoc
// @Summary List active categories
// @Tags categories
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Category}
// @Router /api/method/sculpture_shop.api.get_categories [get]
func (r *Routers) GetCategories(c echo.Context) error {
	const op = "http.routers.GetCategories"

	log := r.log.With(slog.String("op", op))

	categories, err := r.TaxonomyService.GetCategories(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Categories retrieved successfully", categories))
}

// GetCategoryByID godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id query int true "Category ID"
// @Success 200 {object} response.Response{data=models.Category}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_category_by_id [get]
func (r *Routers) GetCategoryByID(c echo.Context) error {
	const op = "http.routers.GetCategoryByID"

	log := r.log.With(slog.String("op", op))

	id := queryID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Category ID is required"))
	}

	category, err := r.TaxonomyService.GetCategoryByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, taxonomysvc.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgCategoryNotFound))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Category retrieved successfully", category))
}

// GetCategoriesWithCount godoc
// @Summary List categories with sculpture counts
// @Tags categories
// @Produce json
// @Success 200 {object} response.Response{data=[]models.CategoryWithCount}
// @Router /api/method/sculpture_shop.api.get_categories_with_count [get]
func (r *Routers) GetCategoriesWithCount(c echo.Context) error {
	const op = "http.routers.GetCategoriesWithCount"

	log := r.log.With(slog.String("op", op))

	categories, err := r.TaxonomyService.GetCategoriesWithCount(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Categories with count retrieved successfully", categories))
}

// AddCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.add_category [post]
func (r *Routers) AddCategory(c echo.Context) error {
	const op = "http.routers.AddCategory"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateCategoryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Category name is required"))
	}

	id, err := r.TaxonomyService.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	log.Info("category added", slog.Int64("id", id))

	return c.JSON(http.StatusOK, response.OKWithMessage("Category added successfully", map[string]int64{"id": id}))
}

// UpdateCategory godoc
// @Summary Update category fields
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_category [post]
func (r *Routers) UpdateCategory(c echo.Context) error {
	const op = "http.routers.UpdateCategory"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateCategoryRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Category ID is required"))
	}

	err := r.TaxonomyService.UpdateCategory(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, taxonomysvc.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgCategoryNotFound))
		case errors.Is(err, taxonomysvc.ErrNothingToUpdate):
			return c.JSON(http.StatusBadRequest, response.Fail("No fields to update"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Category updated successfully", nil))
}

// DeleteCategory godoc
// @Summary Soft-delete a category
// @Description Refused while active sculptures still reference the category.
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.delete_category [post]
func (r *Routers) DeleteCategory(c echo.Context) error {
	const op = "http.routers.DeleteCategory"

	log := r.log.With(slog.String("op", op))

	var req struct {
		ID int64 `json:"id"`
	}

	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Category ID is required"))
	}

	err := r.TaxonomyService.DeleteCategory(c.Request().Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, taxonomysvc.ErrCategoryNotFound):
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgCategoryNotFound))
		case errors.Is(err, taxonomysvc.ErrCategoryInUse):
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgCategoryInUse))
		}

		return r.internalError(c, log, err)
	}

	log.Info("category deleted", slog.Int64("id", req.ID))

	return c.JSON(http.StatusOK, response.OKWithMessage("Category deleted successfully", nil))
}

// GetMaterials godoc
// @Summary List active materials
// @Tags materials
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Material}
// @Router /api/method/sculpture_shop.api.get_materials [get]
func (r *Routers) GetMaterials(c echo.Context) error {
	const op = "http.routers.GetMaterials"

	log := r.log.With(slog.String("op", op))

	materials, err := r.TaxonomyService.GetMaterials(c.Request().Context())
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Materials retrieved successfully", materials))
}

// AddMaterial godoc
// @Summary Create a material
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Material fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.add_material [post]
func (r *Routers) AddMaterial(c echo.Context) error {
	const op = "http.routers.AddMaterial"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateMaterialRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Material name is required"))
	}

	id, err := r.TaxonomyService.CreateMaterial(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Material added successfully", map[string]int64{"id": id}))
}

// UpdateMaterial godoc
// @Summary Update material fields
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateMaterialRequest true "Material id plus fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_material [post]
func (r *Routers) UpdateMaterial(c echo.Context) error {
	const op = "http.routers.UpdateMaterial"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateMaterialRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Material ID is required"))
	}

	err := r.TaxonomyService.UpdateMaterial(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, taxonomysvc.ErrMaterialNotFound):
			return c.JSON(http.StatusNotFound, response.Fail("Material not found"))
		case errors.Is(err, taxonomysvc.ErrNothingToUpdate):
			return c.JSON(http.StatusBadRequest, response.Fail("No fields to update"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Material updated successfully", nil))
}

// DeleteMaterial godoc
// @Summary Soft-delete a material
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.delete_material [post]
func (r *Routers) DeleteMaterial(c echo.Context) error {
	const op = "http.routers.DeleteMaterial"

	log := r.log.With(slog.String("op", op))

	var req struct {
		ID int64 `json:"id"`
	}

	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Material ID is required"))
	}

	err := r.TaxonomyService.DeleteMaterial(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, taxonomysvc.ErrMaterialNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail("Material not found"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Material deleted successfully", nil))
}
