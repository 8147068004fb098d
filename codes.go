package premiumerrors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable premium purchase failure category.
//
// The set of codes is closed. Names are part of the wire contract and must
// not be renamed; declaration order defines Ordinal and must not change.
type Code string

const (
	// Integration
	CodeDeveloperError Code = "DEVELOPER_ERROR"

	// Client lifecycle
	CodeClientNotReady     Code = "CLIENT_NOT_READY"
	CodeClientDisconnected Code = "CLIENT_DISCONNECTED"

	// Catalog
	CodeProductNotExist Code = "PRODUCT_NOT_EXIST"
	CodeOfferNotExist   Code = "OFFER_NOT_EXIST"

	// Store results
	CodeBillingError        Code = "BILLING_ERROR"
	CodeUserCanceled        Code = "USER_CANCELED"
	CodeServiceUnavailable  Code = "SERVICE_UNAVAILABLE"
	CodeBillingUnavailable  Code = "BILLING_UNAVAILABLE"
	CodeItemUnavailable     Code = "ITEM_UNAVAILABLE"
	CodeError               Code = "ERROR"
	CodeItemAlreadyOwned    Code = "ITEM_ALREADY_OWNED"
	CodeItemNotOwned        Code = "ITEM_NOT_OWNED"
	CodeServiceDisconnected Code = "SERVICE_DISCONNECTED"

	// Post-purchase
	CodeAcknowledgeError         Code = "ACKNOWLEDGE_ERROR"
	CodeAcknowledgeWarning       Code = "ACKNOWLEDGE_WARNING"
	CodeOldPurchaseTokenNotFound Code = "OLD_PURCHASE_TOKEN_NOT_FOUND"
	CodeInvalidProductTypeSet    Code = "INVALID_PRODUCT_TYPE_SET"
	CodeConsumeError             Code = "CONSUME_ERROR"
)

// ErrUnknownCode is returned when a name is not part of the taxonomy.
var ErrUnknownCode = errors.New("unknown premium error code")

var allCodes = [...]Code{
	CodeDeveloperError,
	CodeClientNotReady,
	CodeClientDisconnected,
	CodeProductNotExist,
	CodeOfferNotExist,
	CodeBillingError,
	CodeUserCanceled,
	CodeServiceUnavailable,
	CodeBillingUnavailable,
	CodeItemUnavailable,
	CodeError,
	CodeItemAlreadyOwned,
	CodeItemNotOwned,
	CodeServiceDisconnected,
	CodeAcknowledgeError,
	CodeAcknowledgeWarning,
	CodeOldPurchaseTokenNotFound,
	CodeInvalidProductTypeSet,
	CodeConsumeError,
}

var ordinals = func() map[Code]int {
	m := make(map[Code]int, len(allCodes))
	for i, c := range allCodes {
		m[c] = i
	}
	return m
}()

// Codes returns every code in declaration order.
func Codes() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes[:])
	return out
}

// Parse returns the code with the given name. Matching is exact and
// case-sensitive.
func Parse(name string) (Code, error) {
	c := Code(name)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCode, name)
	}
	return c, nil
}

// MustParse is like Parse but panics on unknown names.
func MustParse(name string) Code {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Code) String() string { return string(c) }

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	_, ok := ordinals[c]
	return ok
}

// Ordinal returns the declaration index of c, or -1 if c is not valid.
func (c Code) Ordinal() int {
	if i, ok := ordinals[c]; ok {
		return i
	}
	return -1
}

// IsWarning reports whether c describes a non-fatal condition.
func (c Code) IsWarning() bool {
	return c == CodeAcknowledgeWarning
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, string(c))
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
