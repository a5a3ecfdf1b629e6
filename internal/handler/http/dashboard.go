package http

import (
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/dashboard"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Navigation(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Navigation implements DashboardHandler. The menu is derived from the role
// claim alone, no storage round trip.
func (h *DashboardHandlerImpl) Navigation(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	role, _ := claims["role"].(string)
	response.Success(w, user.NavigationFor(user.Role(role)))
}
