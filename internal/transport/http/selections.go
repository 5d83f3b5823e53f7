package http

import (
	"log/slog"
	"net/http"

	"sculpture_shop/internal/lib/logger/sl"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AddSelectedSculpture godoc
// @Summary Add a sculpture to a client's selection
// @Description The selection is keyed by an anonymous client UUID. Repeated adds are no-ops.
// @Tags selections
// @Accept json
// @Produce json
// @Param request body dto.SelectionInput true "Client ID and sculpture ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.add_selected_sculpture [post]
func (r *Routers) AddSelectedSculpture(c echo.Context) error {
	const op = "http.routers.AddSelectedSculpture"

	log := r.log.With(slog.String("op", op))

	var req dto.SelectionInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Client ID and sculpture ID are required"))
	}

	if err := r.SelectionService.Add(c.Request().Context(), req.ClientID, req.SculptureID); err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture added to selection", nil))
}

// RemoveSelectedSculpture godoc
// @Summary Remove a sculpture from a client's selection
// @Description Removing a sculpture that is not selected is a no-op.
// @Tags selections
// @Accept json
// @Produce json
// @Param request body dto.SelectionInput true "Client ID and sculpture ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.remove_selected_sculpture [post]
func (r *Routers) RemoveSelectedSculpture(c echo.Context) error {
	const op = "http.routers.RemoveSelectedSculpture"

	log := r.log.With(slog.String("op", op))

	var req dto.SelectionInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Client ID and sculpture ID are required"))
	}

	if err := r.SelectionService.Remove(c.Request().Context(), req.ClientID, req.SculptureID); err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Sculpture removed from selection", nil))
}

// ClearSelectedSculptures godoc
// @Summary Drop a client's whole selection
// @Tags selections
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.clear_selected_sculptures [post]
func (r *Routers) ClearSelectedSculptures(c echo.Context) error {
	const op = "http.routers.ClearSelectedSculptures"

	log := r.log.With(slog.String("op", op))

	var req struct {
		ClientID uuid.UUID `json:"client_id"`
	}

	if err := c.Bind(&req); err != nil || req.ClientID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Client ID is required"))
	}

	if err := r.SelectionService.Clear(c.Request().Context(), req.ClientID); err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Selection cleared successfully", nil))
}

// GetSelectedSculptures godoc
// @Summary List a client's selected sculptures in insertion order
// @Description Selected ids are hydrated to full sculpture rows. Ids of deleted sculptures are dropped.
// @Tags selections
// @Produce json
// @Param client_id query string true "Client UUID"
// @Success 200 {object} response.Response{data=dto.SelectionResponse}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.get_selected_sculptures [get]
func (r *Routers) GetSelectedSculptures(c echo.Context) error {
	const op = "http.routers.GetSelectedSculptures"

	log := r.log.With(slog.String("op", op))

	clientID, err := uuid.Parse(c.QueryParam("client_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Client ID is required"))
	}

	sculptures, err := r.SelectionService.GetSelected(c.Request().Context(), clientID)
	if err != nil {
		return r.internalError(c, log, err)
	}

	resp := dto.SelectionResponse{
		ClientID:   clientID,
		Sculptures: sculptures,
		TotalCount: len(sculptures),
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Selected sculptures retrieved successfully", resp))
}

// IsSculptureSelected godoc
// @Summary Check whether a sculpture is in a client's selection
// @Tags selections
// @Produce json
// @Param client_id query string true "Client UUID"
// @Param sculpture_id query int true "Sculpture ID"
// @Success 200 {object} response.Response{data=object{selected=bool}}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.is_sculpture_selected [get]
func (r *Routers) IsSculptureSelected(c echo.Context) error {
	const op = "http.routers.IsSculptureSelected"

	log := r.log.With(slog.String("op", op))

	clientID, err := uuid.Parse(c.QueryParam("client_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Client ID is required"))
	}

	sculptureID := queryID(c, "sculpture_id")
	if sculptureID == 0 {
		return c.JSON(http.StatusBadRequest, response.Fail("Sculpture ID is required"))
	}

	selected, err := r.SelectionService.IsSelected(c.Request().Context(), clientID, sculptureID)
	if err != nil {
		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Selection status retrieved successfully", map[string]bool{"selected": selected}))
}
