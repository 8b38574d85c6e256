package routerepo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

//nolint:gochecknoglobals // stateless
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{db: db}
}

// Add inserts the route and returns the stored copy.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) (*route.Route, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, route.ErrRouteAlreadyExists
		}
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByTruckAndDate retrieves the route of a truck on a date.
func (r *GormRouteRepository) FindByTruckAndDate(
	ctx context.Context,
	truck route.Truck,
	date kernel.Date,
) (*route.Route, error) {
	var dto RouteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "assigned_truck = ? AND delivery_date = ?", truck.String(), date.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", truck.String()+"/"+date.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListPaged returns a page of routes, newest delivery date first.
func (r *GormRouteRepository) ListPaged(
	ctx context.Context,
	limit, offset int,
	filter ports.RouteFilter,
) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := applyFilter(r.db.WithContext(ctx).Model(&RouteDTO{}), filter).
		Order("delivery_date DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// Count returns the number of routes matching the filter.
func (r *GormRouteRepository) Count(ctx context.Context, filter ports.RouteFilter) (int64, error) {
	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Model(&RouteDTO{}), filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// NextSequenceNumber returns max(id)+1, or 1 when the table is empty.
func (r *GormRouteRepository) NextSequenceNumber(ctx context.Context) (int64, error) {
	var next int64
	if err := r.db.WithContext(ctx).Raw("SELECT COALESCE(MAX(id), 0) + 1 FROM routes").Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}

// DeleteAll removes all routes in a single statement.
func (r *GormRouteRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&RouteDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func applyFilter(q *gorm.DB, filter ports.RouteFilter) *gorm.DB {
	if filter.RouteCode != "" {
		q = q.Where("route_code ILIKE ?", "%"+likeEscaper.Replace(filter.RouteCode)+"%")
	}
	if filter.AssignedTruck != "" {
		q = q.Where("assigned_truck ILIKE ?", "%"+likeEscaper.Replace(filter.AssignedTruck)+"%")
	}
	if filter.DeliveryDate != nil {
		q = q.Where("delivery_date = ?", filter.DeliveryDate.String())
	}
	return q
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
