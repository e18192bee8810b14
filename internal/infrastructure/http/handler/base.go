package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hbnb-api/internal/config"
	domainError "hbnb-api/internal/domain/error"
	"hbnb-api/internal/domain/repository"
	"hbnb-api/pkg/logger"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	logger             logger.Logger
	config             *config.Config
	transactionManager repository.TransactionManager
}

// NewBaseHandler creates a new BaseHandler instance
func NewBaseHandler(
	logger logger.Logger,
	config *config.Config,
	transactionManager repository.TransactionManager,
) *BaseHandler {
	return &BaseHandler{
		logger:             logger,
		config:             config,
		transactionManager: transactionManager,
	}
}

// ErrorResponse represents standard error response format
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	Code      string    `json:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// fail logs the error and returns standardized HTTP error response
func (h *BaseHandler) fail(c *gin.Context, err error, message string) {
	requestID := h.getRequestID(c)

	statusCode, errorCode, publicMessage := h.mapError(err)

	fields := []logger.Field{
		logger.String("request_id", requestID),
		logger.String("method", c.Request.Method),
		logger.String("path", c.Request.URL.Path),
		logger.String("remote_addr", c.ClientIP()),
		logger.Int("status", statusCode),
		logger.Error(err),
		logger.String("custom_message", message),
	}
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("Handler error occurred", fields...)
	} else {
		fields = append(fields, logger.Any("details", domainError.GetErrorDetails(err)))
		h.logger.Warn("Request rejected", fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:     publicMessage,
		Message:   message,
		Code:      errorCode,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// success returns the payload with 200
func (h *BaseHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// created returns the payload with 201
func (h *BaseHandler) created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// noContent returns 204 with an empty body
func (h *BaseHandler) noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// getRequestID extracts or generates request ID
func (h *BaseHandler) getRequestID(c *gin.Context) string {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = c.Writer.Header().Get(RequestIDHeader)
	}
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header(RequestIDHeader, requestID)
	}
	return requestID
}

// mapError maps domain errors to HTTP status codes and public messages
func (h *BaseHandler) mapError(err error) (statusCode int, errorCode string, publicMessage string) {
	var validationErr *domainError.ValidationError
	var notFoundErr *domainError.NotFoundError

	errorCode = domainError.GetErrorCode(err)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errorCode, validationErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, errorCode, notFoundErr.Error()
	default:
		// Don't expose internal error details to client
		return http.StatusInternalServerError, errorCode, "Internal server error"
	}
}

// validateRequest binds the JSON body
func (h *BaseHandler) validateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return &domainError.ValidationError{Message: "Invalid request format: " + err.Error()}
	}
	return nil
}

// read runs fn in a read transaction so that the entities it renders cannot
// change underneath it.
func (h *BaseHandler) read(c *gin.Context, fn func(ctx context.Context) error) error {
	return h.transactionManager.WithReadTransaction(c.Request.Context(), fn)
}

// write runs fn in a write transaction
func (h *BaseHandler) write(c *gin.Context, fn func(ctx context.Context) error) error {
	return h.transactionManager.WithTransaction(c.Request.Context(), fn)
}
