package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
)

var (
	ErrPaymentProviderNotConfigured = errors.New("payment provider not configured")
	ErrInvalidOrderID               = errors.New("invalid order id")
	ErrInvalidAuthorizationID       = errors.New("invalid authorization id")
)

// ICheckoutUseCase encapsulates the gateway's checkout operations.
//
// Every operation is the same linear sequence: obtain a fresh access token,
// perform one provider call, relay the provider's status and body. Tokens are
// never cached or reused across operations.

type ICheckoutUseCase interface {
	GenerateClientToken(ctx context.Context) (entities.ProviderResult, error)
	CreateOrder(ctx context.Context, cart json.RawMessage) (entities.ProviderResult, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResult, error)
	AuthorizeOrder(ctx context.Context, orderID string) (entities.ProviderResult, error)
	CaptureAuthorization(ctx context.Context, authorizationID string) (entities.ProviderResult, error)
}

type CheckoutUseCase struct {
	provider interfaces.IPaymentProvider
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(provider interfaces.IPaymentProvider) *CheckoutUseCase {
	return &CheckoutUseCase{provider: provider}
}

func (u *CheckoutUseCase) GenerateClientToken(ctx context.Context) (entities.ProviderResult, error) {
	log.Printf("[checkout][usecase] client token start")
	accessToken, err := u.authenticate(ctx)
	if err != nil {
		return entities.ProviderResult{}, err
	}

	result, err := u.provider.GenerateClientToken(ctx, accessToken)
	if err != nil {
		log.Printf("[checkout][usecase] client token failed err=%v", err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][usecase] client token success status=%d", result.StatusCode)
	return result, nil
}

// CreateOrder submits an order with the fixed amount and currency. The cart is
// logged for traceability but does not influence the charge.
func (u *CheckoutUseCase) CreateOrder(ctx context.Context, cart json.RawMessage) (entities.ProviderResult, error) {
	log.Printf("[checkout][usecase] create order start cart=%s", compactCart(cart))
	accessToken, err := u.authenticate(ctx)
	if err != nil {
		return entities.ProviderResult{}, err
	}

	result, err := u.provider.CreateOrder(ctx, accessToken, entities.NewFixedOrderRequest())
	if err != nil {
		log.Printf("[checkout][usecase] create order failed err=%v", err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][usecase] create order success status=%d", result.StatusCode)
	return result, nil
}

func (u *CheckoutUseCase) CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ProviderResult{}, ErrInvalidOrderID
	}
	log.Printf("[checkout][usecase] capture order start order_id=%s", orderID)
	accessToken, err := u.authenticate(ctx)
	if err != nil {
		return entities.ProviderResult{}, err
	}

	result, err := u.provider.CaptureOrder(ctx, accessToken, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] capture order failed order_id=%s err=%v", orderID, err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][usecase] capture order success order_id=%s status=%d", orderID, result.StatusCode)
	return result, nil
}

func (u *CheckoutUseCase) AuthorizeOrder(ctx context.Context, orderID string) (entities.ProviderResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ProviderResult{}, ErrInvalidOrderID
	}
	log.Printf("[checkout][usecase] authorize order start order_id=%s", orderID)
	accessToken, err := u.authenticate(ctx)
	if err != nil {
		return entities.ProviderResult{}, err
	}

	result, err := u.provider.AuthorizeOrder(ctx, accessToken, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] authorize order failed order_id=%s err=%v", orderID, err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][usecase] authorize order success order_id=%s status=%d", orderID, result.StatusCode)
	return result, nil
}

func (u *CheckoutUseCase) CaptureAuthorization(ctx context.Context, authorizationID string) (entities.ProviderResult, error) {
	authorizationID = strings.TrimSpace(authorizationID)
	if authorizationID == "" {
		return entities.ProviderResult{}, ErrInvalidAuthorizationID
	}
	log.Printf("[checkout][usecase] capture authorization start authorization_id=%s", authorizationID)
	accessToken, err := u.authenticate(ctx)
	if err != nil {
		return entities.ProviderResult{}, err
	}

	result, err := u.provider.CaptureAuthorization(ctx, accessToken, authorizationID)
	if err != nil {
		log.Printf("[checkout][usecase] capture authorization failed authorization_id=%s err=%v", authorizationID, err)
		return entities.ProviderResult{}, err
	}
	log.Printf("[checkout][usecase] capture authorization success authorization_id=%s status=%d", authorizationID, result.StatusCode)
	return result, nil
}

// authenticate fetches a fresh access token. Called unconditionally before
// every provider operation.
func (u *CheckoutUseCase) authenticate(ctx context.Context) (string, error) {
	if u.provider == nil {
		log.Printf("[checkout][usecase] payment provider not configured")
		return "", ErrPaymentProviderNotConfigured
	}
	accessToken, err := u.provider.GenerateAccessToken(ctx)
	if err != nil {
		log.Printf("[checkout][usecase] access token failed err=%v", err)
		return "", err
	}
	return accessToken, nil
}

func compactCart(cart json.RawMessage) string {
	if len(cart) == 0 {
		return "{}"
	}
	return string(cart)
}
