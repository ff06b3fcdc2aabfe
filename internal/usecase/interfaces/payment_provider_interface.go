package interfaces

import (
	"context"

	"checkout_gateway/internal/domain/entities"
)

// IPaymentProvider abstracts the upstream checkout provider's REST API.
//
// The gateway must be able to:
//   - obtain a fresh access token (client-credentials grant) before every call
//   - request a client-rendering token for the browser checkout UI
//   - create an order, then capture or authorize it
//   - capture a previously created authorization
//
// Every operation returns the provider's status code and raw JSON body so the
// caller can relay both verbatim.

type IPaymentProvider interface {
	GenerateAccessToken(ctx context.Context) (string, error)
	GenerateClientToken(ctx context.Context, accessToken string) (entities.ProviderResult, error)
	CreateOrder(ctx context.Context, accessToken string, order entities.OrderRequest) (entities.ProviderResult, error)
	CaptureOrder(ctx context.Context, accessToken, orderID string) (entities.ProviderResult, error)
	AuthorizeOrder(ctx context.Context, accessToken, orderID string) (entities.ProviderResult, error)
	CaptureAuthorization(ctx context.Context, accessToken, authorizationID string) (entities.ProviderResult, error)
}
