package dashboard

import "context"

type DashboardService interface {
	Overview(ctx context.Context) (DashboardResponse, error)
}
