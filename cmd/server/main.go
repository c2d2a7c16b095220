package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/handlers"
	"github.com/shiftline/shiftline/internal/middleware"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/internal/services"
	"github.com/shiftline/shiftline/internal/workers"
	"github.com/shiftline/shiftline/pkg/config"
	"github.com/shiftline/shiftline/pkg/database"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize repositories
	groupRepo := repositories.NewGroupRepository(database.DB)
	employeeRepo := repositories.NewEmployeeRepository(database.DB)
	shiftTypeRepo := repositories.NewShiftTypeRepository(database.DB)
	scheduleRepo := repositories.NewScheduleRepository(database.DB)
	workDayRepo := repositories.NewWorkDayRepository(database.DB)
	holidayRepo := repositories.NewHolidayRepository(database.DB)
	timeOffRepo := repositories.NewTimeOffRepository(database.DB)

	// Initialize services
	groupService := services.NewGroupService(groupRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	shiftTypeService := services.NewShiftTypeService(shiftTypeRepo)
	scheduleService := services.NewScheduleService(scheduleRepo, shiftTypeRepo, employeeRepo)
	workCalendarService := services.NewWorkCalendarService(workDayRepo, holidayRepo)
	timeOffService := services.NewTimeOffService(timeOffRepo)
	coverageService := services.NewCoverageService(scheduleService, shiftTypeRepo, workDayRepo, holidayRepo)
	exportService := services.NewExportService(scheduleRepo, employeeRepo, holidayRepo)
	generatorClient := services.NewGeneratorClient(config.AppConfig.Generator.BaseURL,
		time.Duration(config.AppConfig.Generator.Timeout)*time.Second)
	generationService := services.NewGenerationService(generatorClient, scheduleRepo, shiftTypeRepo, employeeRepo)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(config.AppConfig, holidayRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, scheduleService, shiftTypeService, employeeService, groupService,
		workCalendarService, timeOffService, coverageService, exportService, generationService)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, scheduleService *services.ScheduleService, shiftTypeService *services.ShiftTypeService,
	employeeService *services.EmployeeService, groupService *services.GroupService, workCalendarService *services.WorkCalendarService,
	timeOffService *services.TimeOffService, coverageService *services.CoverageService, exportService *services.ExportService,
	generationService *services.GenerationService) {
	// Initialize handlers
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, shiftTypeService, employeeService, groupService, exportService)
	generationHandler := handlers.NewGenerationHandler(generationService)
	coverageHandler := handlers.NewCoverageHandler(coverageService)
	shiftTypeHandler := handlers.NewShiftTypeHandler(shiftTypeService)
	workCalendarHandler := handlers.NewWorkCalendarHandler(workCalendarService)
	timeOffHandler := handlers.NewTimeOffHandler(timeOffService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	groupHandler := handlers.NewGroupHandler(groupService)

	api := router.Group("/api")
	{
		// Schedule routes
		api.GET("/schedule-data-for-managing/:groupID", scheduleHandler.GetScheduleDataForManaging)
		api.GET("/schedule-info-with-shifts", scheduleHandler.GetScheduleInfoWithShifts)
		api.POST("/schedules/update-schedule", scheduleHandler.UpdateSchedule)
		api.POST("/schedules/unconfirm/:scheduleID", scheduleHandler.UnconfirmSchedule)
		api.GET("/schedules/export/:scheduleID", scheduleHandler.ExportSchedule)

		// Generation routes
		api.POST("/schedule-generator/generate", generationHandler.GenerateSchedule)
		api.POST("/schedules/generate-retail", generationHandler.GenerateRetailSchedule)

		// Coverage check
		api.POST("/coverage/check", coverageHandler.CheckCoverage)

		// Shift type routes
		api.POST("/shift-types", shiftTypeHandler.CreateShiftType)
		api.GET("/shift-types", shiftTypeHandler.ListShiftTypes)
		api.PUT("/shift-types/:id", shiftTypeHandler.UpdateShiftType)
		api.DELETE("/shift-types/:id", shiftTypeHandler.DeleteShiftType)

		// Work calendar routes
		api.POST("/work-days", workCalendarHandler.SetWorkDay)
		api.GET("/work-days", workCalendarHandler.ListWorkDays)
		api.DELETE("/work-days/:dayOfWeek", workCalendarHandler.ClearWorkDay)
		api.POST("/holidays", workCalendarHandler.CreateHoliday)
		api.GET("/holidays", workCalendarHandler.ListHolidays)
		api.DELETE("/holidays/:id", workCalendarHandler.DeleteHoliday)

		// Time off routes
		api.POST("/time-offs", timeOffHandler.CreateTimeOff)
		api.GET("/time-offs", timeOffHandler.ListTimeOffs)
		api.DELETE("/time-offs/:id", timeOffHandler.DeleteTimeOff)

		// Employee routes
		api.POST("/employees", employeeHandler.CreateEmployee)
		api.GET("/employees", employeeHandler.ListEmployees)
		api.PUT("/employees/:id", employeeHandler.UpdateEmployee)
		api.DELETE("/employees/:id", employeeHandler.DeleteEmployee)

		// Group routes
		api.POST("/groups", groupHandler.CreateGroup)
		api.GET("/groups", groupHandler.ListGroups)
		api.PUT("/groups/:id", groupHandler.UpdateGroup)
		api.DELETE("/groups/:id", groupHandler.DeleteGroup)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
