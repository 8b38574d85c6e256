package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const maxBodyBytes = 1 << 20

const (
	defaultPage = 1

	msgEmptyBody    = "the JSON request body is empty"
	msgInvalidBody  = "the request body must be a valid JSON object"
	msgInvalidPage  = "the 'page' parameter must be greater than 0"
	msgInvalidLimit = "the 'per_page' parameter must be between 1 and 100"
	msgInvalidID    = "the route id must be a positive integer"
)

// Ping answers liveness probes.
func (s *Server) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

// Ready reports the latest probe of every external service.
func (s *Server) Ready(c echo.Context) error {
	ready := s.readiness.Ready()
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, toReadinessResponse(ready, s.readiness.Statuses()))
}

// CreateRoute handles POST /logistics/routes.
func (s *Server) CreateRoute(c echo.Context) error {
	req, err := decodeCreateRouteRequest(c.Request())
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure(errValidation, err.Error()))
	}

	cmd, err := commands.NewCreateRouteCommand(req.AssignedTruck, req.DeliveryDate)
	if err != nil {
		return s.respondError(c, err, http.StatusUnprocessableEntity)
	}

	created, err := s.createRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err, http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusCreated, success("Route created successfully", toRouteResponse(created)))
}

// ListRoutes handles GET /logistics/routes.
func (s *Server) ListRoutes(c echo.Context) error {
	params := c.QueryParams()

	// Optional parameters bind into pointers; nil means absent.
	var pageParam, perPageParam *int
	if err := runtime.BindQueryParameter("form", true, false, "page", params, &pageParam); err != nil {
		return c.JSON(http.StatusBadRequest, failure(errValidation, msgInvalidPage))
	}
	if err := runtime.BindQueryParameter("form", true, false, "per_page", params, &perPageParam); err != nil {
		return c.JSON(http.StatusBadRequest, failure(errValidation, msgInvalidLimit))
	}

	page := defaultPage
	if pageParam != nil {
		page = *pageParam
	}
	if page < 1 {
		return c.JSON(http.StatusBadRequest, failure(errValidation, msgInvalidPage))
	}

	perPage := queries.DefaultPerPage
	if perPageParam != nil {
		perPage = *perPageParam
	}
	if perPage < queries.MinPerPage || perPage > queries.MaxPerPage {
		return c.JSON(http.StatusBadRequest, failure(errValidation, msgInvalidLimit))
	}

	query, err := queries.NewListRoutesQuery(
		page,
		perPage,
		params.Get("route_code"),
		params.Get("assigned_truck"),
		params.Get("delivery_date"),
	)
	if err != nil {
		return s.respondError(c, err, http.StatusInternalServerError)
	}

	res, err := s.listRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, success("Routes retrieved successfully", listRoutesResponse{
		Routes:     toRouteResponses(res.Routes),
		Pagination: toPaginationResponse(res.Pagination),
	}))
}

// GetRoute handles GET /logistics/routes/:id.
func (s *Server) GetRoute(c echo.Context) error {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure(errValidation, msgInvalidID))
	}

	query, err := queries.NewGetRouteWithClientsQuery(id)
	if err != nil {
		return s.respondError(c, err, http.StatusInternalServerError)
	}

	res, err := s.getRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, success("Route retrieved successfully", routeDetailResponse{
		Route:   toRouteResponse(res.Route),
		Clients: toClientResponses(res.Clients),
	}))
}

// DeleteRoutes handles DELETE /logistics/routes.
func (s *Server) DeleteRoutes(c echo.Context) error {
	deleted, err := s.deleteAllRoutes.Handle(c.Request().Context(), commands.NewDeleteAllRoutesCommand())
	if err != nil {
		return s.respondError(c, err, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, success(
		fmt.Sprintf("deleted %d routes successfully", deleted),
		deleteRoutesResponse{DeletedCount: deleted},
	))
}

// decodeCreateRouteRequest reads the body as a JSON object. A missing body or
// an object without members counts as empty.
func decodeCreateRouteRequest(r *http.Request) (createRouteRequest, error) {
	var req createRouteRequest
	if r.Body == nil {
		return req, errs.NewValidationError(msgEmptyBody)
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return req, errs.NewValidationErrorWithCause(msgInvalidBody, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return req, errs.NewValidationError(msgEmptyBody)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return req, errs.NewValidationError(msgInvalidBody)
	}
	if len(fields) == 0 {
		return req, errs.NewValidationError(msgEmptyBody)
	}

	if req.AssignedTruck, err = stringField(fields, "assigned_truck"); err != nil {
		return req, err
	}
	if req.DeliveryDate, err = stringField(fields, "delivery_date"); err != nil {
		return req, err
	}
	return req, nil
}

// stringField returns "" for absent or null members.
func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return "", nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return "", errs.NewValidationError(fmt.Sprintf("the '%s' field must be a string", name))
		}
		return "", errs.NewValidationError(msgInvalidBody)
	}
	return v, nil
}
