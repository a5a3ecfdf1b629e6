package main

import (
	"fmt"
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/config"
	appHTTP "github.com/abdelmoulehnajeh/redcastle-sub001/internal/handler/http"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/jwt"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/repository/postgresql"
	authService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/auth"
	dashboardService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/dashboard"
	employeeService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/employee"
	locationService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/location"
	payrollService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/payroll"
	scheduleService "github.com/abdelmoulehnajeh/redcastle-sub001/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, locationRepo)
	locationSvc := locationService.NewLocationService(db, locationRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, employeeRepo, locationRepo, nil)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, scheduleRepo, nil)
	dashboardSvc := dashboardService.NewDashboardService(db, dashboardRepo, nil)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authHandler,
		employeeHandler,
		locationHandler,
		scheduleHandler,
		payrollHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
