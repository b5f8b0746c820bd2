package rest

const (
	// api
	RouteAPI = "/api"

	// identity
	RouteRegister = RouteAPI + "/register"
	RouteLogin    = RouteAPI + "/login"

	// catalog
	RouteServices = RouteAPI + "/services"
	RouteService  = RouteAPI + "/service"

	// bookings
	RouteReservation    = RouteAPI + "/reservation"
	RouteHistory        = RouteAPI + "/history/:user_id/:role"
	RouteProcessPayment = RouteAPI + "/process_payment"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
