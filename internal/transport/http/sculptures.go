package http

import (
	"errors"
	"log/slog"
	"net/http"

	"sculpture_shop/internal/catalog"
	"sculpture_shop/internal/lib/logger/sl"
	catalogsvc "sculpture_shop/internal/services/catalog_service"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetSculptures godoc
// @Summary List sculptures
// @Description Returns the catalog page matching the query filters.
// @Tags sculptures
// @Produce json
// @Param category_id query int false "Category filter"
// @Param material_id query int false "Material filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param search_term query string false "Text search over name and description"
// @Param is_featured query bool false "Featured only"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response{data=dto.SculptureListResponse}
// @Failure 500 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_sculptures [get]
func (r *Routers) GetSculptures(c echo.Context) error {
	const op = "http.routers.GetSculptures"

	log := r.log.With(slog.String("op", op))

	f := catalog.ParseFilter(c.QueryParams())

	list, err := r.CatalogService.ListSculptures(c.Request().Context(), f)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculptures retrieved successfully", list))
}

// GetSculpturesCount godoc
// @Summary Count sculptures
// @Description Returns the total number of sculptures matching the same filters as get_sculptures.
// @Tags sculptures
// @Produce json
// @Success 200 {object} response.Response{data=object{total_count=int}}
// @Router /api/method/sculpture_shop.api.get_sculptures_count [get]
func (r *Routers) GetSculpturesCount(c echo.Context) error {
	const op = "http.routers.GetSculpturesCount"

	log := r.log.With(slog.String("op", op))

	f := catalog.ParseFilter(c.QueryParams())

	count, err := r.CatalogService.CountSculptures(c.Request().Context(), f)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Count retrieved successfully", map[string]int64{"total_count": count}))
}

// GetSculptureByID godoc
// @Summary Get sculpture by ID
// @Tags sculptures
// @Produce json
// @Param id query int true "Sculpture ID"
// @Success 200 {object} response.Response{data=dto.SculptureDetailResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_sculpture_by_id [get]
func (r *Routers) GetSculptureByID(c echo.Context) error {
	const op = "http.routers.GetSculptureByID"

	log := r.log.With(slog.String("op", op))

	id := queryID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	detail, err := r.CatalogService.GetSculptureByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrSculptureNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgSculptureNotFound))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture retrieved successfully", detail))
}

// GetSculptureBySlug godoc
// @Summary Get sculpture by slug
// @Tags sculptures
// @Produce json
// @Param slug query string true "Sculpture slug"
// @Success 200 {object} response.Response{data=dto.SculptureDetailResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_sculpture_by_slug [get]
func (r *Routers) GetSculptureBySlug(c echo.Context) error {
	const op = "http.routers.GetSculptureBySlug"

	log := r.log.With(slog.String("op", op))

	slug := c.QueryParam("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture slug is required"))
	}

	detail, err := r.CatalogService.GetSculptureBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrSculptureNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgSculptureNotFound))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture retrieved successfully", detail))
}

// GetSculptureImages godoc
// @Summary List sculpture images
// @Tags sculptures
// @Produce json
// @Param sculpture_id query int true "Sculpture ID"
// @Success 200 {object} response.Response{data=[]models.SculptureImage}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_sculpture_images [get]
func (r *Routers) GetSculptureImages(c echo.Context) error {
	const op = "http.routers.GetSculptureImages"

	log := r.log.With(slog.String("op", op))

	id := queryID(c, "sculpture_id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	images, err := r.CatalogService.GetImages(c.Request().Context(), id)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Images retrieved successfully", images))
}

// GetFeaturedSculptures godoc
// @Summary List featured sculptures
// @Tags sculptures
// @Produce json
// @Param limit query int false "Maximum rows, defaults to 10"
// @Success 200 {object} response.Response{data=[]models.Sculpture}
// @Router /api/method/sculpture_shop.api.get_featured_sculptures [get]
func (r *Routers) GetFeaturedSculptures(c echo.Context) error {
	const op = "http.routers.GetFeaturedSculptures"

	log := r.log.With(slog.String("op", op))

	limit := queryInt(c, "limit", 0)

	list, err := r.CatalogService.GetFeaturedSculptures(c.Request().Context(), limit)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Featured sculptures retrieved successfully", list))
}

// GetRelatedSculptures godoc
// @Summary List sculptures related to one sculpture
// @Description Related means the same category, excluding the sculpture itself.
// @Tags sculptures
// @Produce json
// @Param sculpture_id query int true "Sculpture ID"
// @Param limit query int false "Maximum rows, defaults to 4"
// @Success 200 {object} response.Response{data=[]models.Sculpture}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_related_sculptures [get]
func (r *Routers) GetRelatedSculptures(c echo.Context) error {
	const op = "http.routers.GetRelatedSculptures"

	log := r.log.With(slog.String("op", op))

	id := queryID(c, "sculpture_id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	limit := queryInt(c, "limit", 0)

	list, err := r.CatalogService.GetRelatedSculptures(c.Request().Context(), id, limit)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Related sculptures retrieved successfully", list))
}

// AddSculpture godoc
// @Summary Create a sculpture
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateSculptureRequest true "Sculpture fields"
// @Success 200 {object} response.Response{data=models.Sculpture}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.add_sculpture [post]
func (r *Routers) AddSculpture(c echo.Context) error {
	const op = "http.routers.AddSculpture"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateSculptureRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture name is required"))
	}

	created, err := r.CatalogService.CreateSculpture(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	log.Info("sculpture added", slog.Int64("id", created.ID), slog.String("slug", created.Slug))

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture added successfully", created))
}

// UpdateSculpture godoc
// @Summary Update sculpture fields
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateSculptureRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_sculpture [post]
func (r *Routers) UpdateSculpture(c echo.Context) error {
	const op = "http.routers.UpdateSculpture"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateSculptureRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	err := r.CatalogService.UpdateSculpture(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalogsvc.ErrSculptureNotFound):
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgSculptureNotFound))
		case errors.Is(err, catalogsvc.ErrNothingToUpdate):
			return c.JSON(http.StatusBadRequest, response.Fail("No fields to update"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture updated successfully", nil))
}

// DeleteSculpture godoc
// @Summary Soft-delete a sculpture
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.delete_sculpture [post]
func (r *Routers) DeleteSculpture(c echo.Context) error {
	const op = "http.routers.DeleteSculpture"

	log := r.log.With(slog.String("op", op))

	var req struct {
		ID int64 `json:"id"`
	}

	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	err := r.CatalogService.DeleteSculpture(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrSculptureNotFound) {
			return c.JSON(http.StatusNotFound, response.Fail(response.MsgSculptureNotFound))
		}

		return r.internalError(c, log, err)
	}

	log.Info("sculpture deleted", slog.Int64("id", req.ID))

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture deleted successfully", nil))
}

// AddSculptureImage godoc
// @Summary Attach an image to a sculpture
// @Description Marking the new image primary demotes the previous primary image.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AddImageRequest true "Image fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.add_sculpture_image [post]
func (r *Routers) AddSculptureImage(c echo.Context) error {
	const op = "http.routers.AddSculptureImage"

	log := r.log.With(slog.String("op", op))

	var req dto.AddImageRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID and image URL are required"))
	}

	id, err := r.CatalogService.AddImage(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Image added successfully", map[string]int64{"id": id}))
}

// DeleteSculptureImage godoc
// @Summary Delete a sculpture image
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.delete_sculpture_image [post]
func (r *Routers) DeleteSculptureImage(c echo.Context) error {
	const op = "http.routers.DeleteSculptureImage"

	log := r.log.With(slog.String("op", op))

	var req struct {
		ID int64 `json:"id"`
	}

	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Image ID is required"))
	}

	if err := r.CatalogService.DeleteImage(c.Request().Context(), req.ID); err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Image deleted successfully", nil))
}
