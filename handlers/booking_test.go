package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"huzla/models"
	"huzla/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService answers with canned results so handler tests exercise
// only binding, status codes and error mapping.
type stubBookingService struct {
	detail *models.BookingDetail
	list   []models.BookingDetail
	err    error

	gotCustomerID string
	gotInput      booking.CreateInput
	gotStatus     models.BookingStatus
}

func (s *stubBookingService) Create(customerID string, input booking.CreateInput) (*models.BookingDetail, error) {
	s.gotCustomerID = customerID
	s.gotInput = input
	return s.detail, s.err
}

func (s *stubBookingService) List(userID, role string) ([]models.BookingDetail, error) {
	return s.list, s.err
}

func (s *stubBookingService) Get(id, callerID string) (*models.BookingDetail, error) {
	return s.detail, s.err
}

func (s *stubBookingService) UpdateStatus(id, callerID string, status models.BookingStatus) (*models.BookingDetail, error) {
	s.gotStatus = status
	return s.detail, s.err
}

func (s *stubBookingService) Cancel(id, callerID string) (*models.BookingDetail, error) {
	return s.detail, s.err
}

func (s *stubBookingService) ListAll() ([]models.Booking, error) { return nil, s.err }

func bookingRouter(svc booking.BookingService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("userRole", role)
	})
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings", h.ListBookingsHandler)
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.PUT("/api/bookings/:id/status", h.UpdateBookingStatusHandler)
	r.PUT("/api/bookings/:id/cancel", h.CancelBookingHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleDetail() *models.BookingDetail {
	return &models.BookingDetail{
		Booking: models.Booking{
			ID:         "bk-1",
			ServiceID:  "svc-1",
			CustomerID: "cust-1",
			ProviderID: "prov-1",
			Date:       "2026-10-01",
			Slot:       models.SlotWindow{Start: "10:00", End: "12:00"},
			Status:     models.BookingPending,
			Payment:    models.Payment{Amount: 50, Status: models.PaymentPending},
		},
	}
}

func TestCreateBookingHandler(t *testing.T) {
	stub := &stubBookingService{detail: sampleDetail()}
	r := bookingRouter(stub, "cust-1", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"serviceId":"svc-1","date":"2026-10-01","slot":{"start":"10:00","end":"12:00"}}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cust-1", stub.gotCustomerID)
	assert.Equal(t, "svc-1", stub.gotInput.ServiceID)

	var got models.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "bk-1", got.ID)
	assert.Equal(t, models.BookingPending, got.Status)
}

func TestCreateBookingHandlerBadBody(t *testing.T) {
	r := bookingRouter(&stubBookingService{}, "cust-1", models.RoleCustomer)

	// Missing required slot field.
	w := doJSON(t, r, http.MethodPost, "/api/bookings", `{"serviceId":"svc-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/bookings", `not-json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerSlotTaken(t *testing.T) {
	stub := &stubBookingService{err: booking.ErrSlotTaken}
	r := bookingRouter(stub, "cust-1", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/bookings",
		`{"serviceId":"svc-1","date":"2026-10-01","slot":{"start":"10:00","end":"12:00"}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "This slot is already booked")
}

func TestGetBookingHandlerForbidden(t *testing.T) {
	stub := &stubBookingService{err: booking.ErrNotBookingViewer}
	r := bookingRouter(stub, "nobody", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/bk-1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListBookingsHandler(t *testing.T) {
	stub := &stubBookingService{list: []models.BookingDetail{*sampleDetail()}}
	r := bookingRouter(stub, "cust-1", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "bk-1", got[0].ID)
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	confirmed := sampleDetail()
	confirmed.Status = models.BookingConfirmed
	stub := &stubBookingService{detail: confirmed}
	r := bookingRouter(stub, "prov-1", models.RoleProvider)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/bk-1/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingConfirmed, stub.gotStatus)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/bk-1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing status should fail binding")
}

func TestUpdateBookingStatusHandlerIllegalTransition(t *testing.T) {
	stub := &stubBookingService{err: booking.ErrIllegalTransition}
	r := bookingRouter(stub, "prov-1", models.RoleProvider)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/bk-1/status", `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "transition not allowed")
}

func TestCancelBookingHandler(t *testing.T) {
	cancelled := sampleDetail()
	cancelled.Status = models.BookingCancelled
	stub := &stubBookingService{detail: cancelled}
	r := bookingRouter(stub, "cust-1", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/bk-1/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestCancelCompletedBookingHandler(t *testing.T) {
	stub := &stubBookingService{err: booking.ErrCancelCompleted}
	r := bookingRouter(stub, "cust-1", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/bk-1/cancel", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot cancel a completed booking")
}
