package employee

import (
	"context"
	"time"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/employee"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/datekey"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/roster"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	locationRepo location.LocationRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		locationRepo: locationRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *req.LocationID); err != nil {
			return employee.EmployeeResponse{}, employee.ErrLocationNotFound
		}
	}

	hireDate, _ := time.ParseInLocation(datekey.DayKeyLayout, req.HireDate, datekey.Location())

	emp := employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		JobTitle:   req.JobTitle,
		Phone:      req.Phone,
		LocationID: req.LocationID,
		BaseSalary: req.BaseSalary,
		HourlyRate: req.HourlyRate,
		Status:     employee.StatusActive,
		HireDate:   hireDate,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *req.LocationID); err != nil {
			return employee.EmployeeResponse{}, employee.ErrLocationNotFound
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *EmployeeServiceImpl) UpdateCounters(ctx context.Context, req employee.UpdateCountersRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateCounters(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.SoftDelete(ctx, id)
}

// toResponse builds the staff-list row, including the flat net salary
// preview. The hours-based estimate lives in the roster view instead.
func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		FullName:         emp.FullName(),
		JobTitle:         emp.JobTitle,
		Phone:            emp.Phone,
		LocationID:       emp.LocationID,
		LocationName:     emp.LocationName,
		BaseSalary:       valueOrZero(emp.BaseSalary),
		HourlyRate:       valueOrZero(emp.HourlyRate),
		Bonus:            valueOrZero(emp.Bonus),
		Advance:          valueOrZero(emp.Advance),
		InfractionCount:  emp.InfractionCount,
		AbsenceCount:     emp.AbsenceCount,
		LatenessCount:    emp.LatenessCount,
		Penalties:        roster.Penalties(emp.InfractionCount, emp.LatenessCount, emp.AbsenceCount),
		NetSalaryPreview: roster.NetSalaryPreview(emp),
		Status:           string(emp.Status),
		HireDate:         emp.HireDate.Format(datekey.DayKeyLayout),
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
