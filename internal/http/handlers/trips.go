package handlers

import (
	"net/http"
	"strings"
	"sync"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/http/middleware"
	"tripplanner/internal/services"
	"tripplanner/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	tripSvcMu sync.RWMutex
	tripSvc   *services.TripService
)

// SetTripService wires the shared trip service into the handler package.
func SetTripService(s *services.TripService) {
	tripSvcMu.Lock()
	defer tripSvcMu.Unlock()
	tripSvc = s
}

func tripService() *services.TripService {
	tripSvcMu.RLock()
	defer tripSvcMu.RUnlock()
	return tripSvc
}

// actionRequest is the tagged wire form of one engine action. Type selects
// the variant; the remaining fields carry that variant's payload.
type actionRequest struct {
	Type string `json:"type"`

	// ADD_CITY: either an explicit city (+ optional day plan) or a supported
	// location name routed through the synthesizer.
	City     *models.CityStop `json:"city"`
	DayPlan  *models.DayPlan  `json:"dayPlan"`
	Location string           `json:"location"`

	// CHANGE_HOTEL
	CityIndex *int                  `json:"cityIndex"`
	NewHotel  *models.Accommodation `json:"newHotel"`

	// APPLY_BUDGET_CHANGES
	Hotel *services.HotelSwap       `json:"hotel"`
	Items []services.BudgetItemRule `json:"items"`
}

// GET /api/trips/:id
func GetTrip(c *gin.Context) {
	svc := tripService()
	if svc == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "trip service not configured", nil)
		return
	}
	tripID := c.Param("id")
	reload := c.Query("reload") != ""

	if !reload {
		if doc, ok := svc.Current(tripID); ok {
			c.JSON(http.StatusOK, gin.H{"trip": doc})
			return
		}
	}

	doc, err := svc.Load(c.Request.Context(), tripID)
	resp := gin.H{"trip": doc}
	if err != nil {
		// the document is still usable (template-defaulted); surface the
		// load failure alongside it for the UI banner
		resp["loadError"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/trips/:id/actions
func DispatchTripAction(c *gin.Context) {
	svc := tripService()
	if svc == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "trip service not configured", nil)
		return
	}
	tripID := c.Param("id")

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid action payload", err.Error())
		return
	}

	reqID := middleware.GetRequestID(c)
	actionType := strings.ToUpper(utils.TrimOrEmpty(req.Type))

	if location := utils.TrimOrEmpty(req.Location); actionType == "ADD_CITY" && location != "" {
		doc, err := svc.AddCityByName(tripID, location)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		logAction(reqID, tripID, actionType+":"+location)
		c.JSON(http.StatusOK, gin.H{"trip": doc})
		return
	}

	action, err := buildAction(actionType, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	doc, err := svc.Dispatch(tripID, action)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	logAction(reqID, tripID, actionType)
	c.JSON(http.StatusOK, gin.H{"trip": doc})
}

// GET /api/trips/:id/itinerary.pdf
func GetTripItineraryPDF(c *gin.Context) {
	svc := tripService()
	if svc == nil {
		respondError(c, http.StatusServiceUnavailable, "not_ready", "trip service not configured", nil)
		return
	}

	docs := services.ItineraryDocsService{
		Trips:     svc,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := docs.GenerateItinerary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/trips/locations
func GetSupportedLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": services.SupportedLocations()})
}

// buildAction maps the tagged wire form onto the engine's closed action set.
// Unknown types are rejected here at the boundary; inside the engine the set
// is sealed and needs no runtime guard.
func buildAction(actionType string, req actionRequest) (services.Action, error) {
	switch actionType {
	case "REMOVE_FLIGHTS":
		return services.RemoveFlights{}, nil
	case "ADD_CITY":
		if req.City == nil {
			return nil, domain.ValidationError{Field: "city", Msg: "city or location is required"}
		}
		return services.AddCity{City: *req.City, DayPlan: req.DayPlan}, nil
	case "CHANGE_HOTEL":
		if req.CityIndex == nil || req.NewHotel == nil {
			return nil, domain.ValidationError{Field: "cityIndex", Msg: "cityIndex and newHotel are required"}
		}
		return services.ChangeHotel{CityIndex: *req.CityIndex, NewHotel: *req.NewHotel}, nil
	case "APPLY_BUDGET_CHANGES":
		return services.ApplyBudgetChanges{Hotel: req.Hotel, Items: req.Items}, nil
	case "RESET":
		return services.Reset{}, nil
	case "UNDO":
		return services.Undo{}, nil
	default:
		return nil, domain.ValidationError{Field: "type", Msg: "unknown action type: " + actionType}
	}
}

func logAction(requestID, tripID, actionType string) {
	utils.LogEvent(requestID, "trip", "dispatch", "trip_id="+tripID+" type="+actionType)
}
