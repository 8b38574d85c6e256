package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
)

const (
	errValidation    = "Validation error"
	errBusinessLogic = "Business logic error"
	errNotFound      = "Not found"
	errInternal      = "Internal server error"
)

type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func success(message string, data any) successEnvelope {
	return successEnvelope{Success: true, Message: message, Data: data}
}

func failure(category, details string) errorEnvelope {
	return errorEnvelope{Success: false, Error: category, Details: details}
}

type createRouteRequest struct {
	AssignedTruck string `json:"assigned_truck"`
	DeliveryDate  string `json:"delivery_date"`
}

type routeResponse struct {
	ID            int64  `json:"id"`
	RouteCode     string `json:"route_code"`
	AssignedTruck string `json:"assigned_truck"`
	DeliveryDate  string `json:"delivery_date"`
	OrdersCount   int    `json:"orders_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toRouteResponse(r *route.Route) routeResponse {
	return routeResponse{
		ID:            r.ID(),
		RouteCode:     r.Code(),
		AssignedTruck: r.Truck().String(),
		DeliveryDate:  r.DeliveryDate().String(),
		OrdersCount:   r.OrdersCount(),
		CreatedAt:     r.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func toRouteResponses(routes []*route.Route) []routeResponse {
	out := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteResponse(r))
	}
	return out
}

type paginationResponse struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	NextPage   *int  `json:"next_page"`
	PrevPage   *int  `json:"prev_page"`
}

func toPaginationResponse(p queries.Pagination) paginationResponse {
	return paginationResponse{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
		NextPage:   p.NextPage,
		PrevPage:   p.PrevPage,
	}
}

type listRoutesResponse struct {
	Routes     []routeResponse    `json:"routes"`
	Pagination paginationResponse `json:"pagination"`
}

type clientResponse struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Address   *string  `json:"address"`
	Phone     *string  `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func toClientResponses(clients []ports.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientResponse(c))
	}
	return out
}

type routeDetailResponse struct {
	Route   routeResponse    `json:"route"`
	Clients []clientResponse `json:"clients"`
}

type deleteRoutesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

type serviceStatusResponse struct {
	Service   string  `json:"service"`
	Healthy   bool    `json:"healthy"`
	CheckedAt *string `json:"checked_at"`
	Error     string  `json:"error,omitempty"`
}

type readinessResponse struct {
	Ready    bool                    `json:"ready"`
	Services []serviceStatusResponse `json:"services"`
}

func toReadinessResponse(ready bool, statuses []jobs.ProbeStatus) readinessResponse {
	services := make([]serviceStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		var checkedAt *string
		if !s.CheckedAt.IsZero() {
			v := s.CheckedAt.UTC().Format(time.RFC3339)
			checkedAt = &v
		}
		services = append(services, serviceStatusResponse{
			Service:   s.Service,
			Healthy:   s.Healthy,
			CheckedAt: checkedAt,
			Error:     s.Error,
		})
	}
	return readinessResponse{Ready: ready, Services: services}
}
