package reservation

import (
	"encoding/json"
	"errors"
	"net/http"

	"atlas-marina/calendar"
	"atlas-marina/rest"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InitializeRoutes initializes reservation-related REST routes
func InitializeRoutes(db *gorm.DB) func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
	return func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
		return func(router *mux.Router, logger logrus.FieldLogger) {
			// GET /api/reservations
			router.HandleFunc("/reservations",
				rest.RegisterHandler(logger)(serverInfo)("get_reservations", getReservationsHandler(db))).
				Methods(http.MethodGet)

			// GET /api/clients/{clientId}/reservations
			router.HandleFunc("/clients/{clientId}/reservations",
				rest.RegisterHandler(logger)(serverInfo)("get_client_reservations", getClientReservationsHandler(db))).
				Methods(http.MethodGet)

			// GET /api/clients/{clientId}/blocked-dates
			router.HandleFunc("/clients/{clientId}/blocked-dates",
				rest.RegisterHandler(logger)(serverInfo)("get_client_blocked_dates", getBlockedDatesHandler(db))).
				Methods(http.MethodGet)

			// GET /api/clients/{clientId}/booking-eligibility/{date}
			router.HandleFunc("/clients/{clientId}/booking-eligibility/{date}",
				rest.RegisterHandler(logger)(serverInfo)("get_booking_eligibility", getBookingEligibilityHandler(db))).
				Methods(http.MethodGet)

			// GET /api/vessels/{vesselName}/maintenance
			router.HandleFunc("/vessels/{vesselName}/maintenance",
				rest.RegisterHandler(logger)(serverInfo)("get_vessel_maintenance", getVesselMaintenanceHandler(db))).
				Methods(http.MethodGet)
		}
	}
}

// getReservationsHandler returns the full schedule board for the tenant
func getReservationsHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			processor := NewProcessor(d.Logger(), d.Context(), db)
			reservations, err := processor.GetAll()()
			if err != nil {
				writeErrorResponse(w, http.StatusInternalServerError, err.Error())
				return
			}

			restReservations, err := TransformAll(reservations)
			if err != nil {
				writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform reservation data")
				return
			}

			query := r.URL.Query()
			queryParams := jsonapi.ParseQueryFields(&query)
			server.MarshalResponse[[]RestReservation](d.Logger())(w)(c.ServerInformation())(queryParams)(restReservations)
		}
	}
}

// getClientReservationsHandler returns all reservations for a client
func getClientReservationsHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseClientId(d.Logger(), func(clientId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				reservations, err := processor.GetByClient(clientId)()
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restReservations, err := TransformAll(reservations)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform reservation data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestReservation](d.Logger())(w)(c.ServerInformation())(queryParams)(restReservations)
			}
		})
	}
}

// getBlockedDatesHandler returns the advisory unselectable dates for a client
func getBlockedDatesHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseClientId(d.Logger(), func(clientId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				dates, err := processor.BlockedDates(clientId)()
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restDates := make([]string, 0, len(dates))
				for _, date := range dates {
					restDates = append(restDates, string(date))
				}

				restBlockedDates := RestBlockedDates{
					ClientId: clientId,
					Dates:    restDates,
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestBlockedDates](d.Logger())(w)(c.ServerInformation())(queryParams)(restBlockedDates)
			}
		})
	}
}

// getBookingEligibilityHandler runs the booking decision for a client and
// date without creating anything
func getBookingEligibilityHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseClientId(d.Logger(), func(clientId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				vars := mux.Vars(r)
				date, err := calendar.ParseDate(vars["date"])
				if err != nil {
					writeErrorResponse(w, http.StatusBadRequest, "Invalid date")
					return
				}

				processor := NewProcessor(d.Logger(), d.Context(), db)
				if err := processor.EvaluateBooking(clientId, date); err != nil {
					var eligibilityErr EligibilityError
					if errors.As(err, &eligibilityErr) {
						writeEligibilityResponse(w, false, eligibilityErr.Code, eligibilityErr.Message)
						return
					}
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				writeEligibilityResponse(w, true, "", "")
			}
		})
	}
}

// getVesselMaintenanceHandler returns the maintenance blocks for a vessel
func getVesselMaintenanceHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseVesselName(d.Logger(), func(vesselName string) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				blocks, err := processor.GetMaintenanceByVessel(vesselName)()
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restBlocks, err := TransformMaintenanceBlocks(blocks)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform maintenance data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[[]RestMaintenanceBlock](d.Logger())(w)(c.ServerInformation())(queryParams)(restBlocks)
			}
		})
	}
}

// writeEligibilityResponse writes the booking decision as a JSON response
func writeEligibilityResponse(w http.ResponseWriter, eligible bool, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"eligible": eligible,
	}
	if !eligible {
		response["code"] = code
		response["message"] = message
	}

	_ = json.NewEncoder(w).Encode(response)
}

// writeErrorResponse writes a JSON error response
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error": map[string]interface{}{
			"status": statusCode,
			"title":  http.StatusText(statusCode),
			"detail": message,
		},
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}
