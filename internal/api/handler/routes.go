package handler

import (
	"net/http"

	"github.com/wendyapp/admin-console-api/internal/api/handler/router"
	"github.com/wendyapp/admin-console-api/internal/scheduler"
	"github.com/wendyapp/admin-console-api/internal/usecases/approving"
	"github.com/wendyapp/admin-console-api/internal/usecases/authenticating"
	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"github.com/wendyapp/admin-console-api/internal/usecases/privileging"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
	"github.com/wendyapp/admin-console-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(authenticator authenticating.Authenticator, sessions session.Sessions, overviewer overview.Overviewer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(authenticator, sessions, overviewer),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/operators",
			Method:      http.MethodPost,
			Handler:     CreateOperator(authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/operators",
			Method:      http.MethodGet,
			Handler:     ListOperators(authenticator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Overview(overviewer overview.Overviewer, sessions session.Sessions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(overviewer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/overview/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshOverview(overviewer, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Approval(approver approving.Approver, sessions session.Sessions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveStore(approver, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stores/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectStore(approver, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/deliverers/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveDeliverer(approver, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/deliverers/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectDeliverer(approver, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(approver, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tracking(trackingService *scheduler.TrackingSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tracking",
			Method:      http.MethodGet,
			Handler:     GetTracking(trackingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tracking/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshTracking(trackingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tracking/polling",
			Method:      http.MethodPut,
			Handler:     SetTrackingPolling(trackingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Privileges(privileger privileging.Privileger, sessions session.Sessions) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/privileges",
			Method:      http.MethodGet,
			Handler:     GetPrivileges(privileger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/privileges/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshPrivileges(privileger, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/privileges/:id/toggle",
			Method:      http.MethodPost,
			Handler:     TogglePrivilege(privileger, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/privileges/selection",
			Method:      http.MethodPut,
			Handler:     UpdateSelection(privileger),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/privileges/batch",
			Method:      http.MethodPost,
			Handler:     BatchPrivilege(privileger, sessions),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
