package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nikitalobanov12/dayflow-sub002/internal/middleware"
	recurringHTTP "github.com/nikitalobanov12/dayflow-sub002/internal/recurring/delivery/http"
	scheduleHTTP "github.com/nikitalobanov12/dayflow-sub002/internal/schedule/delivery/http"
)

// setupScheduleDomain registers /api/v1/schedule.
//
// Use cases are built by the caller so the server stays free of storage and
// LLM wiring:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}

// setupRecurringDomain registers /api/v1/recurring.
func (srv HTTPServer) setupRecurringDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := recurringHTTP.New(srv.l, srv.recurringUC, srv.dateParser)
	recurringHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Recurring domain registered (backend: %s)", srv.recurringUC.Backend())
	return nil
}
