package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdateCounters(ctx context.Context, req UpdateCountersRequest) error
	SoftDelete(ctx context.Context, id string) error
}
