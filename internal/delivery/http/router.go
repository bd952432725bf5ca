package http

import (
	"net/http"

	"github.com/sleepysheepppp/hospital-management/internal/delivery/http/handler"
	"github.com/sleepysheepppp/hospital-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	receptionHandler *handler.ReceptionHandler
	doctorHandler    *handler.DoctorHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	receptionHandler *handler.ReceptionHandler,
	doctorHandler *handler.DoctorHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		receptionHandler: receptionHandler,
		doctorHandler:    doctorHandler,
		adminHandler:     adminHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Department list (any authenticated user, used by the booking form)
	departments := api.PathPrefix("/departments").Subrouter()
	departments.Use(r.authMiddleware.Authenticate)
	departments.HandleFunc("", r.patientHandler.GetDepartments).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/profile", r.patientHandler.GetProfile).Methods(http.MethodGet)
	patient.HandleFunc("/profile", r.patientHandler.UpsertProfile).Methods(http.MethodPut)
	patient.HandleFunc("/appointments", r.patientHandler.CreateAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.patientHandler.GetMyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.patientHandler.GetAppointment).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.patientHandler.CancelAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/dashboard", r.patientHandler.GetDashboard).Methods(http.MethodGet)

	// Reception routes (protected - front desk only)
	reception := api.PathPrefix("/reception").Subrouter()
	reception.Use(r.authMiddleware.Authenticate)
	reception.Use(middleware.RequireFrontDesk)
	reception.HandleFunc("/appointments/verify", r.receptionHandler.VerifyAppointment).Methods(http.MethodPost)
	reception.HandleFunc("/payments", r.receptionHandler.SettlePayment).Methods(http.MethodPost)
	reception.HandleFunc("/payments", r.receptionHandler.GetPayments).Methods(http.MethodGet)
	reception.HandleFunc("/visits", r.receptionHandler.GetVisits).Methods(http.MethodGet)
	reception.HandleFunc("/dashboard", r.receptionHandler.GetDashboard).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/records", r.doctorHandler.GetMyRecords).Methods(http.MethodGet)
	doctor.HandleFunc("/records/{id}", r.doctorHandler.UpdateRecord).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/schedules", r.adminHandler.CreateSchedule).Methods(http.MethodPost)
	admin.HandleFunc("/schedules", r.adminHandler.GetSchedules).Methods(http.MethodGet)
	admin.HandleFunc("/departments", r.adminHandler.CreateDepartment).Methods(http.MethodPost)
	admin.HandleFunc("/rooms", r.adminHandler.CreateRoom).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.adminHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", r.adminHandler.GetDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/statistics/visits", r.adminHandler.GetVisitStatistics).Methods(http.MethodGet)
	admin.HandleFunc("/statistics/revenue", r.adminHandler.GetRevenueStatistics).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
