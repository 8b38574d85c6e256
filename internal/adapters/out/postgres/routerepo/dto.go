// Package routerepo maps Route aggregates to the routes table.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO is one row of the routes table. The schema itself is owned by the
// SQL migrations; the tags mirror it.
type RouteDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	RouteCode     string    `gorm:"size:20;not null;uniqueIndex:routes_route_code_key"`
	AssignedTruck string    `gorm:"size:20;not null;uniqueIndex:routes_truck_date_key"`
	DeliveryDate  time.Time `gorm:"type:date;not null;uniqueIndex:routes_truck_date_key"`
	OrdersCount   int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(r *route.Route) RouteDTO {
	return RouteDTO{
		ID:            r.ID(),
		RouteCode:     r.Code(),
		AssignedTruck: r.Truck().String(),
		DeliveryDate:  r.DeliveryDate().Time(),
		OrdersCount:   r.OrdersCount(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	return route.RestoreRoute(
		dto.ID,
		dto.RouteCode,
		route.Truck(dto.AssignedTruck),
		kernel.DateOf(dto.DeliveryDate),
		dto.OrdersCount,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}
