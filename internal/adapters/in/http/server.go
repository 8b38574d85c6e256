// Package http is the inbound REST boundary of the logistics service, built
// on echo. It translates requests into commands and queries and maps the
// error kinds they return onto HTTP statuses.
package http

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/jobs"
)

// Use case contracts the server depends on. The command and query handlers
// satisfy them.
type (
	RouteCreator interface {
		Handle(ctx context.Context, cmd commands.CreateRouteCommand) (*route.Route, error)
	}

	RoutesDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteAllRoutesCommand) (int64, error)
	}

	RoutesLister interface {
		Handle(ctx context.Context, query queries.ListRoutesQuery) (queries.ListRoutesQueryResponse, error)
	}

	RouteReader interface {
		Handle(
			ctx context.Context,
			query queries.GetRouteWithClientsQuery,
		) (queries.GetRouteWithClientsQueryResponse, error)
	}

	Readiness interface {
		Ready() bool
		Statuses() []jobs.ProbeStatus
	}
)

// Server implements the route endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRoute     RouteCreator
	deleteAllRoutes RoutesDeleter

	// Query handlers
	listRoutes RoutesLister
	getRoute   RouteReader

	readiness Readiness
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRoute RouteCreator,
	deleteAllRoutes RoutesDeleter,
	listRoutes RoutesLister,
	getRoute RouteReader,
	readiness Readiness,
	logger *slog.Logger,
) *Server {
	return &Server{
		createRoute:     createRoute,
		deleteAllRoutes: deleteAllRoutes,
		listRoutes:      listRoutes,
		getRoute:        getRoute,
		readiness:       readiness,
		logger:          logger.With("component", "http_server"),
	}
}
