package http

import (
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/delivery/http/handler"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	appointmentHandler   *handler.AppointmentHandler
	facilityHandler      *handler.FacilityHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	requestLogMiddleware *middleware.RequestLogMiddleware
	metricsMiddleware    *middleware.MetricsMiddleware
	gatherer             prometheus.Gatherer
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	appointmentHandler *handler.AppointmentHandler,
	facilityHandler *handler.FacilityHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogMiddleware *middleware.RequestLogMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		patientHandler:       patientHandler,
		doctorHandler:        doctorHandler,
		medicalRecordHandler: medicalRecordHandler,
		appointmentHandler:   appointmentHandler,
		facilityHandler:      facilityHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		requestLogMiddleware: requestLogMiddleware,
		metricsMiddleware:    metricsMiddleware,
		gatherer:             gatherer,
	}
}

func (r *Router) Setup() http.Handler {
	// Public routes
	r.router.HandleFunc("/", r.facilityHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.router.HandleFunc("/facility-info", r.facilityHandler.GetFacilityInfo).Methods(http.MethodGet)
	r.router.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)

	// Bare OPTIONS requests that are not CORS preflights
	r.router.Methods(http.MethodOptions).HandlerFunc(r.options)

	// Protected routes
	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	protected.Handle("/patients", middleware.RequireDoctor(http.HandlerFunc(r.patientHandler.GetAllPatients))).Methods(http.MethodGet)
	protected.HandleFunc("/patient/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{patient_id}", r.medicalRecordHandler.GetPatientRecords).Methods(http.MethodGet)
	protected.HandleFunc("/doctor-patients/{doctor_id}", r.doctorHandler.GetDoctorPatients).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	protected.Handle("/appointments", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)

	r.router.Use(r.metricsMiddleware.Handle)

	// CORS must see preflights before route matching
	return r.requestLogMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func (r *Router) options(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, dto.MessageResponse{Message: "OK"})
}
