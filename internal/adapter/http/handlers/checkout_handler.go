package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	request "checkout_gateway/internal/adapter/http/dto/request"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the gateway's checkout routes. Success responses
// relay the provider's status code and raw JSON body; every failure collapses
// to HTTP 500 with a fixed per-endpoint payload, with the cause logged only.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// GenerateClientToken handles POST /api/token.
//
// @Summary      Generate a client-rendering token
// @Tags         checkout
// @Produce      json
// @Success      200 {object} map[string]any
// @Failure      500 {object} pkg.HTTPError
// @Router       /api/token [post]
func (h *CheckoutHandler) GenerateClientToken(c *gin.Context) {
	log.Printf("[checkout][handler] client token start")

	result, err := h.usecase.GenerateClientToken(c.Request.Context())
	if err != nil {
		log.Printf("[checkout][handler] client token failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("CLIENT_TOKEN_FAILED", "Failed to generate client token.", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relay(c, result)
}

// CreateOrder handles POST /api/orders.
//
// @Summary      Create a provider order with the fixed charge amount
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body body request.CreateOrderRequest true "cart (opaque, logged only)"
// @Success      201 {object} map[string]any
// @Failure      500 {object} pkg.HTTPError
// @Router       /api/orders [post]
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	cart := readCart(c)
	log.Printf("[checkout][handler] create order start cart_len=%d", len(cart))

	result, err := h.usecase.CreateOrder(c.Request.Context(), cart)
	if err != nil {
		log.Printf("[checkout][handler] create order failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("ORDER_CREATE_FAILED", "Failed to create order.", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relay(c, result)
}

// CaptureOrder handles POST /api/orders/:orderID/capture.
//
// @Summary      Capture payment for an order
// @Tags         checkout
// @Produce      json
// @Param        orderID path string true "provider order id"
// @Success      201 {object} map[string]any
// @Failure      500 {object} pkg.HTTPError
// @Router       /api/orders/{orderID}/capture [post]
func (h *CheckoutHandler) CaptureOrder(c *gin.Context) {
	orderID := c.Param("orderID")
	log.Printf("[checkout][handler] capture order start order_id=%s", orderID)

	result, err := h.usecase.CaptureOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] capture order failed order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("ORDER_CAPTURE_FAILED", "Failed to capture order.", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relay(c, result)
}

// AuthorizeOrder handles POST /api/orders/:orderID/authorize.
//
// @Summary      Authorize payment for an order
// @Tags         checkout
// @Produce      json
// @Param        orderID path string true "provider order id"
// @Success      201 {object} map[string]any
// @Failure      500 {object} pkg.HTTPError
// @Router       /api/orders/{orderID}/authorize [post]
func (h *CheckoutHandler) AuthorizeOrder(c *gin.Context) {
	orderID := c.Param("orderID")
	log.Printf("[checkout][handler] authorize order start order_id=%s", orderID)

	result, err := h.usecase.AuthorizeOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] authorize order failed order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("ORDER_AUTHORIZE_FAILED", "Failed to authorize order.", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relay(c, result)
}

// CaptureAuthorization handles POST /orders/:authorizationID/captureAuthorize.
//
// @Summary      Capture a previously authorized payment
// @Tags         checkout
// @Produce      json
// @Param        authorizationID path string true "provider authorization id"
// @Success      201 {object} map[string]any
// @Failure      500 {object} pkg.HTTPError
// @Router       /orders/{authorizationID}/captureAuthorize [post]
func (h *CheckoutHandler) CaptureAuthorization(c *gin.Context) {
	authorizationID := c.Param("authorizationID")
	log.Printf("[checkout][handler] capture authorization start authorization_id=%s", authorizationID)

	result, err := h.usecase.CaptureAuthorization(c.Request.Context(), authorizationID)
	if err != nil {
		log.Printf("[checkout][handler] capture authorization failed authorization_id=%s err=%v", authorizationID, err)
		appErr := pkg.NewDomainErrorSimple("AUTHORIZATION_CAPTURE_FAILED", "Failed to capture authorize.", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	relay(c, result)
}

// relay writes the provider's status and raw body bytes. c.Data (not c.JSON)
// keeps the relayed body byte-identical to what the provider sent.
func relay(c *gin.Context, result entities.ProviderResult) {
	c.Data(result.StatusCode, "application/json", result.Body)
}

// readCart extracts the opaque cart from the request body. The cart is never
// validated; an unreadable or non-JSON body degrades to an empty cart.
func readCart(c *gin.Context) json.RawMessage {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] cart payload unreadable; using empty cart err=%v", err)
		return json.RawMessage("{}")
	}
	if len(req.Cart) == 0 {
		return json.RawMessage("{}")
	}
	return req.Cart
}
