package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/payrollhq/payroll-backend-go/internal/handler/http/middleware"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	rateTableHandler RateTableHandler,
	employeeHandler EmployeeHandler,
	earningsHandler EarningsHandler,
	payrunHandler PayrunHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/rate-tables", func(r chi.Router) {
				r.Get("/", rateTableHandler.List)
				r.Post("/", rateTableHandler.Create)
				r.Get("/resolve", rateTableHandler.Resolve)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", rateTableHandler.Get)
					r.Post("/approve", rateTableHandler.Approve)
					r.Post("/deactivate", rateTableHandler.Deactivate)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Post("/activate", employeeHandler.Activate)
					r.Post("/deactivate", employeeHandler.Deactivate)

					r.Route("/allowances", func(r chi.Router) {
						r.Get("/", employeeHandler.ListAllowances)
						r.Post("/", employeeHandler.AddAllowance)
						r.Delete("/{allowanceID}", employeeHandler.RemoveAllowance)
					})

					r.Route("/deductions", func(r chi.Router) {
						r.Get("/", employeeHandler.ListDeductions)
						r.Post("/", employeeHandler.AddDeduction)
						r.Delete("/{deductionID}", employeeHandler.RemoveDeduction)
					})
				})
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Get("/", earningsHandler.List)
				r.Post("/", earningsHandler.Record)
				r.Route("/one-off-deductions", func(r chi.Router) {
					r.Post("/", earningsHandler.AddOneOffDeduction)
					r.Delete("/{id}", earningsHandler.RemoveOneOffDeduction)
				})
			})

			r.Route("/payrun", func(r chi.Router) {
				r.Post("/calculate-batch", payrunHandler.CalculateBatch)
				r.Post("/preview", payrunHandler.Preview)

				r.Route("/batches", func(r chi.Router) {
					r.Get("/", payrunHandler.ListBatches)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", payrunHandler.GetBatch)
						r.Get("/payslips", payrunHandler.ListPayslips)
						r.Post("/review", payrunHandler.Review)
						r.Post("/approve", payrunHandler.Approve)
						r.Post("/lock", payrunHandler.Lock)
						r.Post("/remit", payrunHandler.Remit)
						r.Post("/cancel", payrunHandler.Cancel)
					})
				})

				r.Patch("/payslips/{id}/payment", payrunHandler.UpdatePayment)
			})
		})
	})
	return r
}
