package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("ORDER_CREATE_FAILED", "Failed to create order.", http.StatusInternalServerError)
	if simple.Error() != "ORDER_CREATE_FAILED: Failed to create order." {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	cause := errors.New("dial tcp: timeout")
	wrapped := NewDomainError("ORDER_CREATE_FAILED", "Failed to create order.", cause, http.StatusInternalServerError)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to its cause")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("secret internal detail")
	appErr := NewDomainError("CLIENT_TOKEN_FAILED", "Failed to generate client token.", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.Error != "Failed to generate client token." || body.Code != "CLIENT_TOKEN_FAILED" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
