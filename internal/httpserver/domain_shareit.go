package httpserver

import (
	"context"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingRepoPG "shareit/internal/booking/repository/postgre"
	bookingUC "shareit/internal/booking/usecase"
	itemHTTP "shareit/internal/item/delivery/http"
	itemRepoPG "shareit/internal/item/repository/postgre"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestRepoPG "shareit/internal/request/repository/postgre"
	requestUC "shareit/internal/request/usecase"
	userHTTP "shareit/internal/user/delivery/http"
	userRepoPG "shareit/internal/user/repository/postgre"
	userUC "shareit/internal/user/usecase"
)

// registerDomainRoutes wires every domain: repository, use case, HTTP
// handler, routes. The item, booking and request use cases read across
// domain stores, so repositories are built once and shared.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	userRepo := userRepoPG.New(srv.postgresDB, srv.l)
	itemRepo := itemRepoPG.New(srv.postgresDB, srv.l)
	bookingRepo := bookingRepoPG.New(srv.postgresDB, srv.l)
	requestRepo := requestRepoPG.New(srv.postgresDB, srv.l)

	userHandler := userHTTP.New(srv.l, userUC.New(userRepo, srv.l))
	userHTTP.RegisterRoutes(srv.gin.Group("/users"), userHandler)

	itemHandler := itemHTTP.New(srv.l, itemUC.New(itemRepo, userRepo, bookingRepo, srv.l))
	itemHTTP.RegisterRoutes(srv.gin.Group("/items"), itemHandler, mw)

	bookingHandler := bookingHTTP.New(srv.l, bookingUC.New(bookingRepo, itemRepo, userRepo, srv.l))
	bookingHTTP.RegisterRoutes(srv.gin.Group("/bookings"), bookingHandler, mw)

	requestHandler := requestHTTP.New(srv.l, requestUC.New(requestRepo, itemRepo, userRepo, srv.l))
	requestHTTP.RegisterRoutes(srv.gin.Group("/requests"), requestHandler, mw)

	srv.l.Infof(ctx, "Domains registered: users, items, bookings, requests")
	return nil
}
