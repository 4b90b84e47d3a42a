package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "servicos_xpto/internal/adapter/http/dto/request"
	response "servicos_xpto/internal/adapter/http/dto/response"
	"servicos_xpto/internal/usecase"
	"servicos_xpto/internal/usecase/interfaces"
	"servicos_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
	errInvalidOrderID      = pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid service order id", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// ListOrders returns the current order set, optionally narrowed by the
// q (client name substring) and status query parameters.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), c.Query("q"), c.Query("status"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), order)
	if err != nil {
		log.Printf("[orders][handler] create failed client=%q err=%v", order.ClientName, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] create success order_id=%d status=%s", created.ID, created.Status)

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	order.ID = id

	if err := h.usecase.Update(c.Request.Context(), order); err != nil {
		log.Printf("[orders][handler] update failed order_id=%d err=%v", id, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] update success order_id=%d status=%s", id, order.Status)

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[orders][handler] delete failed order_id=%d err=%v", id, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] delete success order_id=%d", id)

	c.Status(http.StatusNoContent)
}

func orderIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapServiceOrderError(err error) *pkg.AppError {
	var storeErr *interfaces.StoreError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidOrderValue),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORE_NOT_CONFIGURED", "Persistence backend not configured", http.StatusServiceUnavailable)
	case errors.As(err, &storeErr):
		return pkg.NewDomainError("STORE_ERROR", "Persistence backend rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
