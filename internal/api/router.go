package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emsuite/employee-system/internal/api/handler"
	"github.com/emsuite/employee-system/internal/api/middleware"
	"github.com/emsuite/employee-system/internal/core/domain"
	"github.com/emsuite/employee-system/internal/core/ports"
	"github.com/emsuite/employee-system/internal/core/service"
	mongorepo "github.com/emsuite/employee-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/emsuite/employee-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. The session service and directory are supplied by the
// caller; repositories and the remaining services are wired here.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	sessions ports.SessionService,
	directory ports.DirectoryRepository,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ems"))

	// --- Dependencies ---
	attendanceService := service.NewAttendanceService(redisrepo.NewAttendanceStore(rdb), log)
	taskService := service.NewTaskService(mongorepo.NewTaskRepository(db), log)
	leaveService := service.NewLeaveService(mongorepo.NewLeaveRepository(db), log)
	ticketService := service.NewTicketService(mongorepo.NewTicketRepository(db), log)
	payslipService := service.NewPayslipService(mongorepo.NewPayslipRepository(db), directory, log)
	holidayService := service.NewHolidayService(mongorepo.NewHolidayRepository(db), log)

	authHandler := handler.NewAuthHandler(sessions)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	taskHandler := handler.NewTaskHandler(taskService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	payslipHandler := handler.NewPayslipHandler(payslipService)
	holidayHandler := handler.NewHolidayHandler(holidayService)
	employeeHandler := handler.NewEmployeeHandler(directory)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Employee dashboard ---
	employee := e.Group("/dashboard/employee", middleware.Guard(sessions, domain.RoleEmployee))
	employee.GET("", attendanceHandler.Status)
	employee.POST("/checkin", attendanceHandler.CheckIn)
	employee.POST("/checkout", attendanceHandler.CheckOut)
	employee.GET("/tasks", taskHandler.List)
	employee.POST("/tasks", taskHandler.Create)
	employee.PUT("/tasks/:id", taskHandler.Update)
	employee.DELETE("/tasks/:id", taskHandler.Delete)
	employee.GET("/holidays", holidayHandler.List)
	employee.GET("/leave", leaveHandler.List)
	employee.POST("/leave", leaveHandler.Apply)
	employee.GET("/leave/balance", leaveHandler.Balance)
	employee.GET("/tickets", ticketHandler.List)
	employee.POST("/tickets", ticketHandler.Create)
	employee.GET("/payslips", payslipHandler.List)
	employee.POST("/payslips/:id/download", payslipHandler.Download)

	// --- HR dashboard ---
	hr := e.Group("/dashboard/hr", middleware.Guard(sessions, domain.RoleHR))
	hr.GET("", attendanceHandler.Status)
	hr.POST("/checkin", attendanceHandler.CheckIn)
	hr.POST("/checkout", attendanceHandler.CheckOut)
	hr.GET("/leave-approvals", leaveHandler.ListAll)
	hr.POST("/leave-approvals/:id/approve", leaveHandler.Approve)
	hr.POST("/leave-approvals/:id/reject", leaveHandler.Reject)
	hr.GET("/payslips", payslipHandler.ListAll)
	hr.POST("/payslips", payslipHandler.Upload)
	hr.GET("/holidays", holidayHandler.List)
	hr.GET("/tickets", ticketHandler.ListAll)
	hr.POST("/tickets/:id/respond", ticketHandler.Respond)

	// --- Admin dashboard ---
	admin := e.Group("/dashboard/admin", middleware.Guard(sessions, domain.RoleAdmin))
	admin.GET("", employeeHandler.List)
	admin.GET("/leave-oversight", leaveHandler.ListAll)
	admin.GET("/holidays", holidayHandler.List)
	admin.POST("/holidays", holidayHandler.Create)
	admin.DELETE("/holidays/:id", holidayHandler.Delete)
	admin.GET("/payslips", payslipHandler.ListAll)
	admin.POST("/payslips", payslipHandler.Upload)

	// --- Health probes and metrics (no guard) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
