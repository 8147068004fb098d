package premiumerrors

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// ProductDetails identifies the product (and offer) a failure refers to.
type ProductDetails struct {
	ProductID string `json:"product_id"`
	OfferID   string `json:"offer_id,omitempty"`
}

// PurchaseDetails identifies the purchase a failure refers to.
type PurchaseDetails struct {
	PurchaseToken string `json:"purchase_token,omitempty"`
	BasePlanID    string `json:"base_plan_id,omitempty"`
}

// DeveloperError creates an integration misconfiguration error (400).
func DeveloperError(msg string) *Error {
	return New(CodeDeveloperError, http.StatusBadRequest, msg)
}

// ClientNotReady creates an error for calls made before the billing client
// finished connecting (503).
func ClientNotReady(msg string) *Error {
	return New(CodeClientNotReady, http.StatusServiceUnavailable, msg).
		WithRetryable(true)
}

// ProductNotExist creates an error for a product unknown to the store (404).
func ProductNotExist(productID string) *Error {
	return Newf(CodeProductNotExist, http.StatusNotFound, "product %q does not exist", productID).
		WithDetails(ProductDetails{ProductID: productID})
}

// OfferNotExist creates an error for an unknown subscription offer (404).
func OfferNotExist(productID, offerID string) *Error {
	return Newf(CodeOfferNotExist, http.StatusNotFound, "offer %q does not exist for product %q", offerID, productID).
		WithDetails(ProductDetails{ProductID: productID, OfferID: offerID})
}

// UserCanceled creates an error for a purchase flow the user aborted.
func UserCanceled() *Error {
	return New(CodeUserCanceled, 0, "").
		WithRetryable(false)
}

// ItemAlreadyOwned creates an error for a repeat purchase of an owned item (409).
func ItemAlreadyOwned(productID string) *Error {
	return Newf(CodeItemAlreadyOwned, http.StatusConflict, "product %q is already owned", productID).
		WithDetails(ProductDetails{ProductID: productID})
}

// ItemNotOwned creates an error for an operation on an item the user does
// not own (409).
func ItemNotOwned(productID string) *Error {
	return Newf(CodeItemNotOwned, http.StatusConflict, "product %q is not owned", productID).
		WithDetails(ProductDetails{ProductID: productID})
}

// AcknowledgeError creates an error for a failed acknowledgement (502).
func AcknowledgeError(purchaseToken string, cause error) *Error {
	return Wrap(CodeAcknowledgeError, http.StatusBadGateway, "", cause).
		WithOperation(OperationAcknowledge).
		WithDetails(PurchaseDetails{PurchaseToken: purchaseToken})
}

// AcknowledgeWarning creates a non-fatal acknowledgement error (202),
// typically for purchases still pending.
func AcknowledgeWarning(msg string) *Error {
	return New(CodeAcknowledgeWarning, http.StatusAccepted, msg).
		WithOperation(OperationAcknowledge)
}

// ConsumeError creates an error for a failed consume call (502).
func ConsumeError(purchaseToken string, cause error) *Error {
	return Wrap(CodeConsumeError, http.StatusBadGateway, "", cause).
		WithOperation(OperationConsume).
		WithDetails(PurchaseDetails{PurchaseToken: purchaseToken})
}

// OldPurchaseTokenNotFound creates an error for a plan change whose previous
// purchase could not be located (404).
func OldPurchaseTokenNotFound(basePlanID string) *Error {
	return Newf(CodeOldPurchaseTokenNotFound, http.StatusNotFound, "no purchase token for base plan %q", basePlanID).
		WithDetails(PurchaseDetails{BasePlanID: basePlanID})
}

// InvalidProductTypeSet creates an error for inconsistent product type
// configuration (400).
func InvalidProductTypeSet(msg string) *Error {
	return New(CodeInvalidProductTypeSet, http.StatusBadRequest, msg)
}

// From maps arbitrary errors into an *Error.
// Handles context errors, network timeouts, and wraps unknown errors.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) && e != nil {
		// Codes outside the closed set never leave the package.
		if !e.Code.Valid() {
			return Wrap(CodeError, http.StatusInternalServerError, "", err).
				WithRetryable(false)
		}
		if e.Status != 0 && e.Message != "" {
			return e
		}
		out := e.clone()
		if out.Status == 0 {
			out.Status = defaultStatus(out.Code)
		}
		if out.Message == "" {
			out.Message = defaultMessage(out.Code)
		}
		return out
	}

	// Context-driven
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(CodeServiceUnavailable, 0, "", err)
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(CodeServiceDisconnected, 0, "", err).WithRetryable(false)
	}

	// net.Error timeouts
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Wrap(CodeServiceUnavailable, 0, "", err)
	}

	// Default
	return Wrap(CodeError, http.StatusInternalServerError, "", err).
		WithRetryable(false)
}
