package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/attendance"
	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	"github.com/adnanaslam989/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckDate(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	Prepare(w http.ResponseWriter, r *http.Request)
	ImportExcel(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetShiftPolicy(w http.ResponseWriter, r *http.Request)
	UpdateShiftPolicy(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	reconciliationService attendance.ReconciliationService
}

func NewAttendanceHandler(reconciliationService attendance.ReconciliationService) AttendanceHandler {
	return &attendanceHandlerImpl{
		reconciliationService: reconciliationService,
	}
}

// CheckDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	result, err := h.reconciliationService.CheckDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.reconciliationService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Prepare implements AttendanceHandler.
func (h *attendanceHandlerImpl) Prepare(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	result, err := h.reconciliationService.PrepareNewAttendance(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportExcel implements AttendanceHandler.
func (h *attendanceHandlerImpl) ImportExcel(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := attendance.ImportRequest{
		Date:       r.FormValue("date"),
		DateFormat: r.FormValue("date_format"),
	}
	if req.DateFormat == "" {
		req.DateFormat = "auto"
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Spreadsheet file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	result, err := h.reconciliationService.ApplyImport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.AddAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reconciliationService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance submitted successfully", result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req attendance.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.reconciliationService.UpdateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance entry updated successfully", result)
}

// GetShiftPolicy implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetShiftPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconciliationService.GetShiftPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateShiftPolicy implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateShiftPolicy(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reconciliationService.UpdateShiftPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift policy updated successfully", result)
}
