package http

import (
	"net/http"
	"time"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"

	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsHandler     http.Handler
	requestsPerMinute  int
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsHandler http.Handler,
	requestsPerMinute int,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsHandler:     metricsHandler,
		requestsPerMinute:  requestsPerMinute,
	}
}

func (r *Router) Setup() *mux.Router {
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	if r.requestsPerMinute > 0 {
		api.Use(httprate.LimitByIP(r.requestsPerMinute, time.Minute))
	}

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.HandleFunc("", r.doctorHandler.SearchDoctors).Methods(http.MethodGet)
	doctors.HandleFunc("/filter", r.doctorHandler.ChangeFilter).Methods(http.MethodPost)
	doctors.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	doctors.HandleFunc("/suggestions", r.doctorHandler.GetSuggestions).Methods(http.MethodGet)
	doctors.HandleFunc("/status", r.doctorHandler.GetStatus).Methods(http.MethodGet)
	doctors.HandleFunc("/reload", r.doctorHandler.Reload).Methods(http.MethodPost)
	doctors.HandleFunc("/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)

	// preflight requests must match a route for the CORS middleware to run
	r.router.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
