package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/propertysales/collection-service/internal/models"
	"github.com/propertysales/collection-service/internal/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register handles admin user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// CreateUnit handles housing unit creation
func (h *Handler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var unit models.HousingUnit
	if err := json.NewDecoder(r.Body).Decode(&unit); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if unit.Block == "" || unit.Number == "" {
		http.Error(w, "block and number are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.CreateHousingUnit(&unit); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

// ListUnits handles listing all housing units
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.svc.ListHousingUnits()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// CreateConsumer handles consumer contract creation
func (h *Handler) CreateConsumer(w http.ResponseWriter, r *http.Request) {
	var consumer models.Consumer
	if err := json.NewDecoder(r.Body).Decode(&consumer); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if consumer.Name == "" || consumer.Price <= 0 {
		http.Error(w, "name and a positive price are required", http.StatusBadRequest)
		return
	}

	if err := h.svc.CreateConsumer(&consumer); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, consumer)
}

// AppendPayment handles appending a raw payment record to a contract
func (h *Handler) AppendPayment(w http.ResponseWriter, r *http.Request) {
	consumerID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid consumer id", http.StatusBadRequest)
		return
	}

	var payment models.PaymentRecord
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	payment.ConsumerID = consumerID

	if err := h.svc.AppendPayment(&payment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// ConsumerSnapshot handles computing one contract's derived snapshot
func (h *Handler) ConsumerSnapshot(w http.ResponseWriter, r *http.Request) {
	consumerID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid consumer id", http.StatusBadRequest)
		return
	}
	asOf, err := asOfParam(r)
	if err != nil {
		http.Error(w, "Invalid as_of (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	snap, err := h.svc.SnapshotForConsumer(consumerID, asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// CollectionReport handles the risk-ordered collection queue
func (h *Handler) CollectionReport(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		http.Error(w, "Invalid as_of (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	items, err := h.svc.CollectionReport(asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"as_of": asOf.Format("2006-01-02"),
		"items": items,
	})
}

// AgingReport handles the aging-bucket summary
func (h *Handler) AgingReport(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		http.Error(w, "Invalid as_of (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	report, err := h.svc.AgingBuckets(asOf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// asOfParam reads the as_of query parameter, defaulting to today. The
// clock is read here at the boundary only; everything below takes the
// reference time as an argument.
func asOfParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
