package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/shift"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/handlers"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/export"
	"github.com/BruksfildServices01/shift-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/shift-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	ucAssignment "github.com/BruksfildServices01/shift-scheduler/internal/usecase/assignment"
	ucShift "github.com/BruksfildServices01/shift-scheduler/internal/usecase/shift"
)

// Store is everything the HTTP surface needs from persistence. Both
// repository implementations satisfy it.
type Store interface {
	assignment.Repository
	shift.Repository
	user.Repository
	audit.Store

	Ping(ctx context.Context) error
}

type Deps struct {
	Store    Store
	Config   *config.Config
	Locker   lock.Locker
	Uploader export.Uploader
	Audit    *audit.Dispatcher

	Metrics  metrics.Recorder
	Gatherer prometheus.Gatherer

	// AuthLimiter throttles register and login; nil disables it.
	AuthLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// USE CASES: SHIFTS
	// ======================================================
	createShiftUC := ucShift.NewCreateShift(d.Store, d.Audit, d.Metrics)
	listShiftsUC := ucShift.NewListShifts(d.Store)
	getShiftUC := ucShift.NewGetShift(d.Store)
	deleteShiftUC := ucShift.NewDeleteShift(d.Store, d.Audit)

	// ======================================================
	// USE CASES: ASSIGNMENTS
	// ======================================================
	assignShiftUC := ucAssignment.NewAssignShift(
		d.Store,
		d.Locker,
		d.Audit,
		d.Metrics,
	)
	listAssignmentsUC := ucAssignment.NewListAssignments(d.Store)
	myShiftsUC := ucAssignment.NewMyShifts(d.Store)
	exportRosterUC := ucAssignment.NewExportRoster(
		d.Store,
		d.Uploader,
		d.Audit,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Store.Ping)
	authHandler := handlers.NewAuthHandler(d.Store, cfg, d.Audit)
	meHandler := handlers.NewMeHandler(d.Store)

	shiftHandler := handlers.NewShiftHandler(
		createShiftUC,
		listShiftsUC,
		getShiftUC,
		deleteShiftUC,
	)

	assignmentHandler := handlers.NewAssignmentHandler(
		assignShiftUC,
		listAssignmentsUC,
		exportRosterUC,
	)

	staffHandler := handlers.NewStaffHandler(d.Store, myShiftsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.Store)

	// ======================================================
	// METRICS
	// ======================================================
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		if d.AuthLimiter != nil {
			auth.Use(d.AuthLimiter.Middleware())
		}
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/shifts/:id", shiftHandler.Get)

			staffOnly := secured.Group("/")
			staffOnly.Use(middleware.RequireRole(models.RoleStaff))
			{
				staffOnly.GET("/staff/shifts", staffHandler.MyShifts)
			}

			managerOnly := secured.Group("/")
			managerOnly.Use(middleware.RequireRole(models.RoleManager))
			{
				managerOnly.POST("/shifts", shiftHandler.Create)
				managerOnly.GET("/shifts", shiftHandler.List)
				managerOnly.DELETE("/shifts/:id", shiftHandler.Delete)

				managerOnly.POST("/assignments", assignmentHandler.Create)
				managerOnly.GET("/assignments", assignmentHandler.List)
				managerOnly.POST("/assignments/export", assignmentHandler.Export)

				managerOnly.GET("/staff", staffHandler.ListStaff)
				managerOnly.GET("/users/staff", staffHandler.ListStaff)

				managerOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
