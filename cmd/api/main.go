package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/adnanaslam989/attendance-backend-go/internal/config"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	appHTTP "github.com/adnanaslam989/attendance-backend-go/internal/handler/http"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/database"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/storage"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/timeutil"
	"github.com/adnanaslam989/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/adnanaslam989/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/adnanaslam989/attendance-backend-go/internal/service/employee"
	"github.com/adnanaslam989/attendance-backend-go/internal/service/file"
	reportService "github.com/adnanaslam989/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftDefaults, err := shiftDefaultsFromConfig(cfg.Shift)
	if err != nil {
		log.Fatal("Invalid shift policy defaults: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	entryRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftConfigRepository(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	fileService := file.NewFileService(fileStorage)
	reconciliationService := attendanceService.NewReconciliationService(
		db,
		entryRepo,
		employeeRepo,
		shiftRepo,
		shiftDefaults,
	)
	empService := employeeService.NewEmployeeService(employeeRepo, fileService)
	reportSvc := reportService.NewReportService(entryRepo, shiftRepo, shiftDefaults)

	attendanceHandler := appHTTP.NewAttendanceHandler(reconciliationService)
	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		attendanceHandler,
		employeeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func shiftDefaultsFromConfig(cfg config.ShiftConfig) (shift.Config, error) {
	timeIn, err := timeutil.Parse(cfg.DefaultTimeIn)
	if err != nil {
		return shift.Config{}, fmt.Errorf("DEFAULT_TIME_IN: %w", err)
	}
	timeOut, err := timeutil.Parse(cfg.DefaultTimeOut)
	if err != nil {
		return shift.Config{}, fmt.Errorf("DEFAULT_TIME_OUT: %w", err)
	}

	defaults := shift.Config{
		DefaultTimeIn:           timeIn,
		DefaultTimeOut:          timeOut,
		GracePeriodMinutes:      cfg.GracePeriodMinutes,
		EarlyLeaveBufferMinutes: cfg.EarlyLeaveBufferMinutes,
	}
	if err := defaults.Validate(); err != nil {
		return shift.Config{}, err
	}

	return defaults, nil
}
