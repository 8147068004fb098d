package premiumerrors

import (
	"fmt"
	"strconv"
)

// ResponseCode is a result code reported by the platform billing client.
type ResponseCode int

const (
	ResponseServiceTimeout      ResponseCode = -3 // deprecated by the platform, still reported by old clients
	ResponseFeatureNotSupported ResponseCode = -2
	ResponseServiceDisconnected ResponseCode = -1
	ResponseOK                  ResponseCode = 0
	ResponseUserCanceled        ResponseCode = 1
	ResponseServiceUnavailable  ResponseCode = 2
	ResponseBillingUnavailable  ResponseCode = 3
	ResponseItemUnavailable     ResponseCode = 4
	ResponseDeveloperError      ResponseCode = 5
	ResponseError               ResponseCode = 6
	ResponseItemAlreadyOwned    ResponseCode = 7
	ResponseItemNotOwned        ResponseCode = 8
	ResponseNetworkError        ResponseCode = 12
)

var responseNames = map[ResponseCode]string{
	ResponseServiceTimeout:      "SERVICE_TIMEOUT",
	ResponseFeatureNotSupported: "FEATURE_NOT_SUPPORTED",
	ResponseServiceDisconnected: "SERVICE_DISCONNECTED",
	ResponseOK:                  "OK",
	ResponseUserCanceled:        "USER_CANCELED",
	ResponseServiceUnavailable:  "SERVICE_UNAVAILABLE",
	ResponseBillingUnavailable:  "BILLING_UNAVAILABLE",
	ResponseItemUnavailable:     "ITEM_UNAVAILABLE",
	ResponseDeveloperError:      "DEVELOPER_ERROR",
	ResponseError:               "ERROR",
	ResponseItemAlreadyOwned:    "ITEM_ALREADY_OWNED",
	ResponseItemNotOwned:        "ITEM_NOT_OWNED",
	ResponseNetworkError:        "NETWORK_ERROR",
}

func (rc ResponseCode) String() string {
	if name, ok := responseNames[rc]; ok {
		return name
	}
	return "RESPONSE_CODE(" + strconv.Itoa(int(rc)) + ")"
}

// ParseResponseCode accepts either a platform name such as "ITEM_NOT_OWNED"
// or its integer value.
func ParseResponseCode(s string) (ResponseCode, error) {
	for rc, name := range responseNames {
		if name == s {
			return rc, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown response code %q", s)
	}
	return ResponseCode(n), nil
}

// Operation names the billing client call that produced a response code.
type Operation string

const (
	OperationSetup       Operation = "setup"
	OperationPurchase    Operation = "purchase"
	OperationAcknowledge Operation = "acknowledge"
	OperationConsume     Operation = "consume"
)

// ParseOperation returns the operation with the given name.
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case OperationSetup, OperationPurchase, OperationAcknowledge, OperationConsume:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// Classify maps a store response code to a Code for the given operation.
// ok is false when rc is ResponseOK. Unknown operations are classified as
// purchases.
func Classify(op Operation, rc ResponseCode) (code Code, ok bool) {
	if rc == ResponseOK {
		return "", false
	}
	switch op {
	case OperationAcknowledge:
		return CodeAcknowledgeError, true
	case OperationConsume:
		return CodeConsumeError, true
	case OperationSetup:
		switch rc {
		case ResponseBillingUnavailable:
			return CodeBillingUnavailable, true
		case ResponseServiceDisconnected, ResponseServiceTimeout:
			return CodeClientDisconnected, true
		default:
			return CodeClientNotReady, true
		}
	}

	switch rc {
	case ResponseUserCanceled:
		return CodeUserCanceled, true
	case ResponseServiceUnavailable:
		return CodeServiceUnavailable, true
	case ResponseBillingUnavailable:
		return CodeBillingUnavailable, true
	case ResponseItemUnavailable:
		return CodeItemUnavailable, true
	case ResponseDeveloperError:
		return CodeDeveloperError, true
	case ResponseError:
		return CodeError, true
	case ResponseItemAlreadyOwned:
		return CodeItemAlreadyOwned, true
	case ResponseItemNotOwned:
		return CodeItemNotOwned, true
	case ResponseServiceDisconnected, ResponseServiceTimeout:
		return CodeServiceDisconnected, true
	default:
		return CodeError, true
	}
}

// FromResult converts a billing client result into an *Error.
// It returns nil when rc is ResponseOK. debugMessage, when set, becomes
// the error message.
func FromResult(op Operation, rc ResponseCode, debugMessage string) *Error {
	code, ok := Classify(op, rc)
	if !ok {
		return nil
	}
	e := New(code, 0, debugMessage)
	e.ResponseCode = rc
	e.Operation = op
	return e
}
