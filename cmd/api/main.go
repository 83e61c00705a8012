package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/payrollhq/payroll-backend-go/internal/config"
	"github.com/payrollhq/payroll-backend-go/internal/fixtures"
	appHTTP "github.com/payrollhq/payroll-backend-go/internal/handler/http"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/jwt"
	"github.com/payrollhq/payroll-backend-go/internal/repository/postgresql"
	earningsService "github.com/payrollhq/payroll-backend-go/internal/service/earnings"
	employeeService "github.com/payrollhq/payroll-backend-go/internal/service/employee"
	payrunService "github.com/payrollhq/payroll-backend-go/internal/service/payrun"
	ratetableService "github.com/payrollhq/payroll-backend-go/internal/service/ratetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	rateTableRepo := postgresql.NewRateTableRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	earningsRepo := postgresql.NewEarningsRepository(db)
	payrunRepo := postgresql.NewPayrunRepository(db)

	if err := fixtures.SeedStatutoryDefaults(ctx, rateTableRepo, "system"); err != nil {
		log.Fatal("Failed to seed statutory rate tables: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	rateTableSvc := ratetableService.NewRateTableService(rateTableRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	earningsSvc := earningsService.NewEarningsService(earningsRepo, employeeRepo)
	payrunSvc := payrunService.NewPayrunService(db, payrunRepo, employeeRepo, earningsRepo, rateTableRepo, cfg.Payroll.BatchWorkers)

	rateTableHandler := appHTTP.NewRateTableHandler(rateTableSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	earningsHandler := appHTTP.NewEarningsHandler(earningsSvc)
	payrunHandler := appHTTP.NewPayrunHandler(payrunSvc)

	router := appHTTP.NewRouter(
		JWTService,
		rateTableHandler,
		employeeHandler,
		earningsHandler,
		payrunHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
