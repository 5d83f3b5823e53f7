package http

import (
	"errors"
	"log/slog"
	"net/http"

	"sculpture_shop/internal/lib/logger/sl"
	inquirysvc "sculpture_shop/internal/services/inquiry_service"
	"sculpture_shop/internal/transport/http/dto"
	"sculpture_shop/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// CreateContactRequest godoc
// @Summary Submit a contact request
// @Description Public lead capture. Selected sculpture IDs are stored with the request.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.ContactRequestInput true "Contact fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.create_contact_request [post]
func (r *Routers) CreateContactRequest(c echo.Context) error {
	const op = "http.routers.CreateContactRequest"

	log := r.log.With(slog.String("op", op))

	var req dto.ContactRequestInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgContactFieldsNeeded))
	}

	id, err := r.InquiryService.CreateContactRequest(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	log.Info("contact request created", slog.Int64("id", id))

	return c.JSON(http.StatusOK, response.OKWithMessage("Contact request submitted successfully", map[string]int64{"id": id}))
}

// GetContactRequests godoc
// @Summary List contact requests
// @Tags admin
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size, defaults to 50"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response{data=[]models.ContactRequest}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.get_contact_requests [get]
func (r *Routers) GetContactRequests(c echo.Context) error {
	const op = "http.routers.GetContactRequests"

	log := r.log.With(slog.String("op", op))

	status := c.QueryParam("status")
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	list, err := r.InquiryService.GetContactRequests(c.Request().Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, inquirysvc.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidStatus))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Contact requests retrieved successfully", list))
}

// UpdateContactRequestStatus godoc
// @Summary Change a contact request status
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateContactStatusRequest true "Request ID and new status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_contact_request_status [post]
func (r *Routers) UpdateContactRequestStatus(c echo.Context) error {
	const op = "http.routers.UpdateContactRequestStatus"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateContactStatusRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Request ID and status are required"))
	}

	err := r.InquiryService.UpdateContactRequestStatus(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inquirysvc.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, response.Fail("Request not found"))
		case errors.Is(err, inquirysvc.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidStatus))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Status updated successfully", nil))
}

// CreateCustomRequest godoc
// @Summary Submit a custom order request
// @Tags inquiries
// @Accept json
// @Produce json
// @Param request body dto.CustomRequestInput true "Custom order fields"
// @Success 200 {object} response.Response{data=object{id=int}}
// @Failure 400 {object} response.Response
// @Router /api/method/sculpture_shop.api.create_custom_request [post]
func (r *Routers) CreateCustomRequest(c echo.Context) error {
	const op = "http.routers.CreateCustomRequest"

	log := r.log.With(slog.String("op", op))

	var req dto.CustomRequestInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgContactFieldsNeeded))
	}

	id, err := r.InquiryService.CreateCustomRequest(c.Request().Context(), req)
	if err != nil {
		return r.internalError(c, log, err)
	}

	log.Info("custom request created", slog.Int64("id", id))

	return c.JSON(http.StatusOK, response.OKWithMessage("Custom request submitted successfully", map[string]int64{"id": id}))
}

// GetCustomRequests godoc
// @Summary List custom order requests
// @Tags admin
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Page size, defaults to 50"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response{data=[]models.CustomRequest}
// @Failure 400 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.get_custom_requests [get]
func (r *Routers) GetCustomRequests(c echo.Context) error {
	const op = "http.routers.GetCustomRequests"

	log := r.log.With(slog.String("op", op))

	status := c.QueryParam("status")
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	list, err := r.InquiryService.GetCustomRequests(c.Request().Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, inquirysvc.ErrInvalidStatus) {
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidStatus))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Custom requests retrieved successfully", list))
}

// UpdateCustomRequest godoc
// @Summary Update a custom order request
// @Description Admin can change status, quoted price, estimated days and notes.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateCustomRequestInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security ApiKeyAuth
// @Router /api/method/sculpture_shop.api.update_custom_request [post]
func (r *Routers) UpdateCustomRequest(c echo.Context) error {
	const op = "http.routers.UpdateCustomRequest"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateCustomRequestInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidRequest))
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Fail("Request ID is required"))
	}

	err := r.InquiryService.UpdateCustomRequest(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inquirysvc.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, response.Fail("Request not found"))
		case errors.Is(err, inquirysvc.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, response.Fail(response.MsgInvalidStatus))
		case errors.Is(err, inquirysvc.ErrNothingToUpdate):
			return c.JSON(http.StatusBadRequest, response.Fail("No fields to update"))
		}

		return r.internalError(c, log, err)
	}

	return c.JSON(http.StatusOK, response.OKWithMessage("Custom request updated successfully", nil))
}
