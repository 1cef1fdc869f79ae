package http

import (
	"net/http"

	"gms-backend/internal/handlers"
	"gms-backend/internal/middleware"
	"gms-backend/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	geoHandler *handlers.GeoHandler,
	projectHandler *handlers.ProjectHandler,
	propertyHandler *handlers.PropertyHandler,
	customerHandler *handlers.CustomerHandler,
	agentHandler *handlers.AgentHandler,
	costConfigHandler *handlers.CostConfigHandler,
	meterHandler *handlers.MeterHandler,
	meterLogHandler *handlers.MeterLogHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	templateHandler *handlers.TemplateHandler,
	reportHandler *handlers.ReportHandler,
	smsHandler *handlers.SmsHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Unauthenticated probes
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public auth routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/verify-totp", authHandler.VerifyTOTP).Methods("POST")

	admin := authMiddleware.RequireAdmin
	writer := authMiddleware.RequireRole(models.RoleAdmin, models.RoleOperator)

	authAPI := r.PathPrefix("/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	authAPI.HandleFunc("/totp/setup", userHandler.SetupTOTP).Methods("POST")
	authAPI.HandleFunc("/totp/confirm", userHandler.ConfirmTOTP).Methods("POST")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.Handle("", admin(http.HandlerFunc(userHandler.ListUsers))).Methods("GET")
	usersAPI.Handle("", admin(http.HandlerFunc(userHandler.CreateUser))).Methods("POST")
	usersAPI.Handle("/{id}", admin(http.HandlerFunc(userHandler.GetUser))).Methods("GET")
	usersAPI.Handle("/{id}", admin(http.HandlerFunc(userHandler.UpdateUser))).Methods("PUT")
	usersAPI.Handle("/{id}", admin(http.HandlerFunc(userHandler.DeleteUser))).Methods("DELETE")
	usersAPI.Handle("/{id}/toggle-active", admin(http.HandlerFunc(userHandler.ToggleActive))).Methods("PATCH")

	// Cities and localities
	citiesAPI := r.PathPrefix("/api/cities").Subrouter()
	citiesAPI.Use(authMiddleware.Authenticate)
	citiesAPI.HandleFunc("", geoHandler.ListCities).Methods("GET")
	citiesAPI.Handle("", writer(http.HandlerFunc(geoHandler.CreateCity))).Methods("POST")
	citiesAPI.HandleFunc("/{id}", geoHandler.GetCity).Methods("GET")
	citiesAPI.Handle("/{id}", writer(http.HandlerFunc(geoHandler.UpdateCity))).Methods("PUT")
	citiesAPI.Handle("/{id}", admin(http.HandlerFunc(geoHandler.DeleteCity))).Methods("DELETE")

	localitiesAPI := r.PathPrefix("/api/localities").Subrouter()
	localitiesAPI.Use(authMiddleware.Authenticate)
	localitiesAPI.HandleFunc("", geoHandler.ListLocalities).Methods("GET")
	localitiesAPI.Handle("", writer(http.HandlerFunc(geoHandler.CreateLocality))).Methods("POST")
	localitiesAPI.HandleFunc("/{id}", geoHandler.GetLocality).Methods("GET")
	localitiesAPI.Handle("/{id}", writer(http.HandlerFunc(geoHandler.UpdateLocality))).Methods("PUT")
	localitiesAPI.Handle("/{id}", admin(http.HandlerFunc(geoHandler.DeleteLocality))).Methods("DELETE")

	// Projects
	projectsAPI := r.PathPrefix("/api/projects").Subrouter()
	projectsAPI.Use(authMiddleware.Authenticate)
	projectsAPI.HandleFunc("", projectHandler.ListProjects).Methods("GET")
	projectsAPI.Handle("", writer(http.HandlerFunc(projectHandler.CreateProject))).Methods("POST")
	projectsAPI.HandleFunc("/{id}", projectHandler.GetProject).Methods("GET")
	projectsAPI.Handle("/{id}", writer(http.HandlerFunc(projectHandler.UpdateProject))).Methods("PUT")
	projectsAPI.Handle("/{id}", admin(http.HandlerFunc(projectHandler.DeleteProject))).Methods("DELETE")

	// Property hierarchy
	towersAPI := r.PathPrefix("/api/towers").Subrouter()
	towersAPI.Use(authMiddleware.Authenticate)
	towersAPI.HandleFunc("", propertyHandler.ListTowers).Methods("GET")
	towersAPI.Handle("", writer(http.HandlerFunc(propertyHandler.CreateTower))).Methods("POST")
	towersAPI.HandleFunc("/{id}", propertyHandler.GetTower).Methods("GET")
	towersAPI.Handle("/{id}", writer(http.HandlerFunc(propertyHandler.UpdateTower))).Methods("PUT")
	towersAPI.Handle("/{id}", admin(http.HandlerFunc(propertyHandler.DeleteTower))).Methods("DELETE")

	wingsAPI := r.PathPrefix("/api/wings").Subrouter()
	wingsAPI.Use(authMiddleware.Authenticate)
	wingsAPI.HandleFunc("", propertyHandler.ListWings).Methods("GET")
	wingsAPI.Handle("", writer(http.HandlerFunc(propertyHandler.CreateWing))).Methods("POST")
	wingsAPI.HandleFunc("/{id}", propertyHandler.GetWing).Methods("GET")
	wingsAPI.Handle("/{id}", writer(http.HandlerFunc(propertyHandler.UpdateWing))).Methods("PUT")
	wingsAPI.Handle("/{id}", admin(http.HandlerFunc(propertyHandler.DeleteWing))).Methods("DELETE")

	floorsAPI := r.PathPrefix("/api/floors").Subrouter()
	floorsAPI.Use(authMiddleware.Authenticate)
	floorsAPI.HandleFunc("", propertyHandler.ListFloors).Methods("GET")
	floorsAPI.Handle("", writer(http.HandlerFunc(propertyHandler.CreateFloor))).Methods("POST")
	floorsAPI.HandleFunc("/{id}", propertyHandler.GetFloor).Methods("GET")
	floorsAPI.Handle("/{id}", writer(http.HandlerFunc(propertyHandler.UpdateFloor))).Methods("PUT")
	floorsAPI.Handle("/{id}", admin(http.HandlerFunc(propertyHandler.DeleteFloor))).Methods("DELETE")

	flatsAPI := r.PathPrefix("/api/flats").Subrouter()
	flatsAPI.Use(authMiddleware.Authenticate)
	flatsAPI.HandleFunc("", propertyHandler.ListFlats).Methods("GET")
	flatsAPI.Handle("", writer(http.HandlerFunc(propertyHandler.CreateFlat))).Methods("POST")
	flatsAPI.HandleFunc("/{id}", propertyHandler.GetFlat).Methods("GET")
	flatsAPI.HandleFunc("/{id}/location", propertyHandler.GetFlatLocation).Methods("GET")
	flatsAPI.Handle("/{id}", writer(http.HandlerFunc(propertyHandler.UpdateFlat))).Methods("PUT")
	flatsAPI.Handle("/{id}", admin(http.HandlerFunc(propertyHandler.DeleteFlat))).Methods("DELETE")

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.Handle("", writer(http.HandlerFunc(customerHandler.CreateCustomer))).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.Handle("/{id}", writer(http.HandlerFunc(customerHandler.UpdateCustomer))).Methods("PUT")
	customersAPI.Handle("/{id}/approve", admin(http.HandlerFunc(customerHandler.ApproveCustomer))).Methods("PATCH")
	customersAPI.Handle("/{id}/toggle-disabled", admin(http.HandlerFunc(customerHandler.ToggleDisabled))).Methods("PATCH")
	customersAPI.Handle("/{id}", admin(http.HandlerFunc(customerHandler.DeleteCustomer))).Methods("DELETE")

	// Agents
	agentsAPI := r.PathPrefix("/api/agents").Subrouter()
	agentsAPI.Use(authMiddleware.Authenticate)
	agentsAPI.HandleFunc("", agentHandler.ListAgents).Methods("GET")
	agentsAPI.Handle("", writer(http.HandlerFunc(agentHandler.CreateAgent))).Methods("POST")
	agentsAPI.HandleFunc("/{id}", agentHandler.GetAgent).Methods("GET")
	agentsAPI.Handle("/{id}", writer(http.HandlerFunc(agentHandler.UpdateAgent))).Methods("PUT")
	agentsAPI.Handle("/{id}", admin(http.HandlerFunc(agentHandler.DeleteAgent))).Methods("DELETE")

	// Cost configs
	costConfigsAPI := r.PathPrefix("/api/cost-configs").Subrouter()
	costConfigsAPI.Use(authMiddleware.Authenticate)
	costConfigsAPI.HandleFunc("", costConfigHandler.ListCostConfigs).Methods("GET")
	costConfigsAPI.Handle("", admin(http.HandlerFunc(costConfigHandler.CreateCostConfig))).Methods("POST")
	costConfigsAPI.HandleFunc("/{id}", costConfigHandler.GetCostConfig).Methods("GET")
	costConfigsAPI.Handle("/{id}", admin(http.HandlerFunc(costConfigHandler.UpdateCostConfig))).Methods("PUT")
	costConfigsAPI.Handle("/{id}", admin(http.HandlerFunc(costConfigHandler.DeleteCostConfig))).Methods("DELETE")

	// Meters
	metersAPI := r.PathPrefix("/api/meters").Subrouter()
	metersAPI.Use(authMiddleware.Authenticate)
	metersAPI.HandleFunc("", meterHandler.ListMeters).Methods("GET")
	metersAPI.Handle("", writer(http.HandlerFunc(meterHandler.CreateMeter))).Methods("POST")
	metersAPI.HandleFunc("/filter/{projectId}", meterHandler.FilterByProject).Methods("GET")
	metersAPI.HandleFunc("/{id}", meterHandler.GetMeter).Methods("GET")
	metersAPI.Handle("/{id}", writer(http.HandlerFunc(meterHandler.UpdateMeter))).Methods("PUT")
	metersAPI.Handle("/{id}", admin(http.HandlerFunc(meterHandler.DeleteMeter))).Methods("DELETE")

	// Meter logs
	meterLogsAPI := r.PathPrefix("/api/meter-logs").Subrouter()
	meterLogsAPI.Use(authMiddleware.Authenticate)
	meterLogsAPI.HandleFunc("", meterLogHandler.ListMeterLogs).Methods("GET")
	meterLogsAPI.Handle("", writer(http.HandlerFunc(meterLogHandler.CreateMeterLog))).Methods("POST")
	meterLogsAPI.HandleFunc("/{id}", meterLogHandler.GetMeterLog).Methods("GET")
	meterLogsAPI.HandleFunc("/{id}/image", meterLogHandler.MeterLogImage).Methods("GET")
	meterLogsAPI.Handle("/{id}/status/{status}", writer(http.HandlerFunc(meterLogHandler.UpdateStatus))).Methods("PATCH")
	meterLogsAPI.Handle("/{id}", admin(http.HandlerFunc(meterLogHandler.DeleteMeterLog))).Methods("DELETE")

	// Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("", invoiceHandler.ListInvoices).Methods("GET")
	invoicesAPI.Handle("", writer(http.HandlerFunc(invoiceHandler.GenerateInvoice))).Methods("POST")
	invoicesAPI.Handle("/mark-overdue", admin(http.HandlerFunc(invoiceHandler.MarkOverdue))).Methods("POST")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.GetInvoice).Methods("GET")
	invoicesAPI.Handle("/{id}", writer(http.HandlerFunc(invoiceHandler.UpdateInvoice))).Methods("PUT")
	invoicesAPI.Handle("/{id}", admin(http.HandlerFunc(invoiceHandler.DeleteInvoice))).Methods("DELETE")

	// Payments and gateway feeds
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.ListPayments).Methods("GET")
	paymentsAPI.Handle("", writer(http.HandlerFunc(paymentHandler.RecordPayment))).Methods("POST")
	paymentsAPI.HandleFunc("/gateway/{entity}", paymentHandler.GatewayFeed).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.GetPayment).Methods("GET")

	// SMS and email templates
	smsTemplatesAPI := r.PathPrefix("/api/sms-templates").Subrouter()
	smsTemplatesAPI.Use(authMiddleware.Authenticate)
	smsTemplatesAPI.HandleFunc("", templateHandler.ListSmsTemplates).Methods("GET")
	smsTemplatesAPI.Handle("", writer(http.HandlerFunc(templateHandler.CreateSmsTemplate))).Methods("POST")
	smsTemplatesAPI.HandleFunc("/{id}", templateHandler.GetSmsTemplate).Methods("GET")
	smsTemplatesAPI.HandleFunc("/{id}/render", templateHandler.RenderSmsTemplate).Methods("POST")
	smsTemplatesAPI.Handle("/{id}", writer(http.HandlerFunc(templateHandler.UpdateSmsTemplate))).Methods("PUT")
	smsTemplatesAPI.Handle("/{id}", admin(http.HandlerFunc(templateHandler.DeleteSmsTemplate))).Methods("DELETE")

	emailTemplatesAPI := r.PathPrefix("/api/email-templates").Subrouter()
	emailTemplatesAPI.Use(authMiddleware.Authenticate)
	emailTemplatesAPI.HandleFunc("", templateHandler.ListEmailTemplates).Methods("GET")
	emailTemplatesAPI.Handle("", writer(http.HandlerFunc(templateHandler.CreateEmailTemplate))).Methods("POST")
	emailTemplatesAPI.HandleFunc("/{id}", templateHandler.GetEmailTemplate).Methods("GET")
	emailTemplatesAPI.HandleFunc("/{id}/render", templateHandler.RenderEmailTemplate).Methods("POST")
	emailTemplatesAPI.Handle("/{id}", writer(http.HandlerFunc(templateHandler.UpdateEmailTemplate))).Methods("PUT")
	emailTemplatesAPI.Handle("/{id}", admin(http.HandlerFunc(templateHandler.DeleteEmailTemplate))).Methods("DELETE")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("", reportHandler.ListReports).Methods("GET")
	reportsAPI.Handle("", writer(http.HandlerFunc(reportHandler.GenerateReport))).Methods("POST")
	reportsAPI.HandleFunc("/{id}/download", reportHandler.DownloadReport).Methods("GET")
	reportsAPI.Handle("/{id}", admin(http.HandlerFunc(reportHandler.DeleteReport))).Methods("DELETE")

	// SMS dispatch and logs
	smsAPI := r.PathPrefix("/api/sms").Subrouter()
	smsAPI.Use(authMiddleware.Authenticate)
	smsAPI.Handle("/send", writer(http.HandlerFunc(smsHandler.SendSms))).Methods("POST")
	smsAPI.HandleFunc("/logs", smsHandler.ListSmsLogs).Methods("GET")

	return r
}
