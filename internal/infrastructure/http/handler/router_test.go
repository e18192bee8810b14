package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hbnb-api/internal/application/usecase"
	"hbnb-api/internal/config"
	"hbnb-api/internal/domain/entity"
	"hbnb-api/internal/domain/event"
	"hbnb-api/internal/infrastructure/database"
	"hbnb-api/internal/infrastructure/http/middleware"
	"hbnb-api/internal/infrastructure/persistence"
	"hbnb-api/pkg/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithPublisher(t, nil)
}

func newTestRouterWithPublisher(t *testing.T, publisher event.Publisher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	cfg := &config.Config{App: config.AppConfig{Environment: "test"}}
	tm := database.NewMemoryTransactionManager(log)
	facade := usecase.NewFacade(
		usecase.Repositories{
			Users:     persistence.NewMemoryRepository[*entity.User]("User"),
			Places:    persistence.NewMemoryRepository[*entity.Place]("Place"),
			Reviews:   persistence.NewMemoryRepository[*entity.Review]("Review"),
			Amenities: persistence.NewMemoryRepository[*entity.Amenity]("Amenity"),
		},
		tm,
		publisher,
		log,
	)

	return NewRouter(Handlers{
		Users:     NewUserHandler(log, cfg, tm, facade),
		Places:    NewPlaceHandler(log, cfg, tm, facade),
		Reviews:   NewReviewHandler(log, cfg, tm, facade),
		Amenities: NewAmenityHandler(log, cfg, tm, facade),
	}, log, middleware.NewMetrics("hbnb_test"))
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/users",
		`{"first_name":"John","last_name":"Doe","email":"`+email+`","password":"secret"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func createPlace(t *testing.T, router *gin.Engine, ownerID string) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/places",
		`{"title":"Cozy","description":"Nice","price":100,"latitude":37.7749,"longitude":-122.4194,"owner_id":"`+ownerID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestRouter_Users(t *testing.T) {
	router := newTestRouter(t)
	id := createUser(t, router, "john@example.com")

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "john@example.com", body["email"])
	assert.Equal(t, false, body["is_admin"])
	assert.NotContains(t, body, "password")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = doRequest(t, router, http.MethodPost, "/api/v1/users",
		`{"first_name":"Jane","last_name":"Doe","email":"john@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/users",
		`{"first_name":"Jane","last_name":"Doe","email":"invalid-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/users", `{"first_name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/users", `{"last_name":"Doe","email":"x@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/users",
		`{"first_name":"","last_name":"","email":"empty.names@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "", decodeBody(t, w)["first_name"])

	w = doRequest(t, router, http.MethodPut, "/api/v1/users/"+id, `{"first_name":"Johnny","is_admin":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Johnny", body["first_name"])
	assert.Equal(t, false, body["is_admin"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/users/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "User not found", body["error"])
	assert.Equal(t, "NOT_FOUND", body["code"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestRouter_Places(t *testing.T) {
	router := newTestRouter(t)
	ownerID := createUser(t, router, "owner@example.com")
	placeID := createPlace(t, router, ownerID)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/"+ownerID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{placeID}, decodeBody(t, w)["places"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/places",
		`{"title":"T","price":10,"owner_id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Owner not found", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/places",
		`{"title":"","price":5,"owner_id":"`+ownerID+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/places", `{"title":"T","price":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/places",
		`{"title":"T","price":-10,"owner_id":"`+ownerID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Price must be a positive number", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPut, "/api/v1/places/"+placeID, `{"longitude":200}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Longitude must be between -180 and 180", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPut, "/api/v1/places/"+placeID, `{"title":"Loft","latitude":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Loft", body["title"])
	assert.Nil(t, body["latitude"])
	assert.Equal(t, -122.4194, body["longitude"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/places/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Place not found", decodeBody(t, w)["error"])
}

func TestRouter_AmenitiesAndLinking(t *testing.T) {
	router := newTestRouter(t)
	ownerID := createUser(t, router, "owner@example.com")
	placeID := createPlace(t, router, ownerID)

	w := doRequest(t, router, http.MethodPost, "/api/v1/amenities", `{"name":"  WiFi  ","description":"Fast"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	amenity := decodeBody(t, w)
	assert.Equal(t, "WiFi", amenity["name"])
	amenityID := amenity["id"].(string)

	w = doRequest(t, router, http.MethodPost, "/api/v1/amenities", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amenity name cannot be empty", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/amenities", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amenity name cannot be empty", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPut, "/api/v1/amenities/"+amenityID, `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amenity name cannot be empty", decodeBody(t, w)["error"])

	for i := 0; i < 2; i++ {
		w = doRequest(t, router, http.MethodPost, "/api/v1/places/"+placeID+"/amenities/"+amenityID, "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	amenities := decodeBody(t, w)["amenities"].([]interface{})
	require.Len(t, amenities, 1)
	assert.Equal(t, amenityID, amenities[0].(map[string]interface{})["id"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/amenities/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Reviews(t *testing.T) {
	router := newTestRouter(t)
	ownerID := createUser(t, router, "owner@example.com")
	guestID := createUser(t, router, "guest@example.com")
	placeID := createPlace(t, router, ownerID)

	invalidRatings := []string{"0", "6", "3.5", "4.0", `"3"`, "true", "null"}
	for _, rating := range invalidRatings {
		t.Run("rating "+rating, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/reviews",
				`{"rating":`+rating+`,"comment":"ok","user_id":"`+guestID+`","place_id":"`+placeID+`"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Rating must be an integer between 1 and 5", decodeBody(t, w)["error"])
		})
	}

	w := doRequest(t, router, http.MethodPost, "/api/v1/reviews",
		`{"rating":5,"comment":"mine","user_id":"`+ownerID+`","place_id":"`+placeID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot review your own place", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodPost, "/api/v1/reviews",
		`{"rating":5,"comment":"  Great  ","user_id":"`+guestID+`","place_id":"`+placeID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	review := decodeBody(t, w)
	assert.Equal(t, "Great", review["comment"])
	reviewID := review["id"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/places/"+placeID+"/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, reviewID, reviews[0]["id"])

	w = doRequest(t, router, http.MethodPut, "/api/v1/reviews/"+reviewID, `{"rating":2.5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/reviews/"+reviewID, `{"rating":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["rating"])

	w = doRequest(t, router, http.MethodDelete, "/api/v1/reviews/"+reviewID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(t, router, http.MethodDelete, "/api/v1/reviews/"+reviewID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Review not found", decodeBody(t, w)["error"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/users/"+guestID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["reviews"])
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodGet, "/api/v1/users", "")

	w := doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `hbnb_test_http_requests_total{method="GET",path="/api/v1/users",status="200"} 1`))
}

// blockingPublisher holds every Publish call until release is closed
type blockingPublisher struct {
	entered chan struct{}
	release chan struct{}
}

func (p *blockingPublisher) Publish(ctx context.Context, _ event.Event) error {
	select {
	case p.entered <- struct{}{}:
	default:
	}
	<-p.release
	return nil
}

func TestRouter_SlowPublisherDoesNotBlockReads(t *testing.T) {
	publisher := &blockingPublisher{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	router := newTestRouterWithPublisher(t, publisher)

	posted := make(chan int, 1)
	go func() {
		w := doRequest(t, router, http.MethodPost, "/api/v1/amenities", `{"name":"WiFi"}`)
		posted <- w.Code
	}()

	select {
	case <-publisher.entered:
	case <-time.After(2 * time.Second):
		close(publisher.release)
		t.Fatal("publisher was never called")
	}

	got := make(chan int, 1)
	go func() {
		got <- doRequest(t, router, http.MethodGet, "/api/v1/amenities", "").Code
	}()

	select {
	case code := <-got:
		assert.Equal(t, http.StatusOK, code)
	case <-time.After(time.Second):
		t.Error("GET waited on a publish in progress")
	}

	close(publisher.release)
	assert.Equal(t, http.StatusCreated, <-posted)
}

func TestRouter_DeleteReviewInsideWriteTransaction(t *testing.T) {
	publisher := &blockingPublisher{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	close(publisher.release)
	router := newTestRouterWithPublisher(t, publisher)

	ownerID := createUser(t, router, "owner@example.com")
	guestID := createUser(t, router, "guest@example.com")
	placeID := createPlace(t, router, ownerID)
	w := doRequest(t, router, http.MethodPost, "/api/v1/reviews",
		`{"rating":4,"comment":"ok","user_id":"`+guestID+`","place_id":"`+placeID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	reviewID := decodeBody(t, w)["id"].(string)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/reviews/"+reviewID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/places/"+placeID+"/reviews", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
