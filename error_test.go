package premiumerrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeBillingError, http.StatusBadGateway, "store rejected request")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != CodeBillingError {
		t.Errorf("expected code %s, got %s", CodeBillingError, err.Code)
	}
	if err.Status != http.StatusBadGateway {
		t.Errorf("expected status %d, got %d", http.StatusBadGateway, err.Status)
	}
	if err.Message != "store rejected request" {
		t.Errorf("expected message 'store rejected request', got %s", err.Message)
	}
	if err.Retryable {
		t.Error("BILLING_ERROR should not be retryable by default")
	}
}

func TestNewDefaults(t *testing.T) {
	for _, c := range Codes() {
		err := New(c, 0, "")
		if err.Status != defaultStatus(c) {
			t.Errorf("%s: expected default status %d, got %d", c, defaultStatus(c), err.Status)
		}
		if err.Message != defaultMessage(c) {
			t.Errorf("%s: expected default message, got %q", c, err.Message)
		}
		if err.Retryable != isRetryableDefault(c) {
			t.Errorf("%s: unexpected retryable default", c)
		}
	}
}

func TestDefaultStatusTable(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeDeveloperError, http.StatusBadRequest},
		{CodeClientNotReady, http.StatusServiceUnavailable},
		{CodeProductNotExist, http.StatusNotFound},
		{CodeUserCanceled, 499},
		{CodeBillingUnavailable, http.StatusForbidden},
		{CodeItemUnavailable, http.StatusUnprocessableEntity},
		{CodeError, http.StatusInternalServerError},
		{CodeItemAlreadyOwned, http.StatusConflict},
		{CodeAcknowledgeWarning, http.StatusAccepted},
		{CodeConsumeError, http.StatusBadGateway},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := defaultStatus(tt.code); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRetryableDefaults(t *testing.T) {
	retryable := map[Code]bool{
		CodeClientNotReady:      true,
		CodeClientDisconnected:  true,
		CodeServiceUnavailable:  true,
		CodeServiceDisconnected: true,
		CodeError:               true,
		CodeAcknowledgeError:    true,
		CodeConsumeError:        true,
	}
	for _, c := range Codes() {
		if isRetryableDefault(c) != retryable[c] {
			t.Errorf("%s: expected retryable %v", c, retryable[c])
		}
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("binder died")
	err := Wrap(CodeServiceDisconnected, 0, "connection lost", cause)

	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Message != "connection lost" {
		t.Errorf("expected message 'connection lost', got %s", err.Message)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError(t *testing.T) {
	err := New(CodeItemNotOwned, 0, "nothing to consume")
	if got := err.Error(); got != "ITEM_NOT_OWNED: nothing to consume" {
		t.Errorf("unexpected error string %q", got)
	}

	wrapped := Wrap(CodeConsumeError, 0, "consume failed", errors.New("timeout"))
	if got := wrapped.Error(); got != "CONSUME_ERROR: consume failed (timeout)" {
		t.Errorf("unexpected error string %q", got)
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Error("nil *Error should render <nil>")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeProductNotExist, 0, "product %s not found", "premium_monthly")

	if err.Message != "product premium_monthly not found" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Status != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.Status)
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrapf(CodeAcknowledgeError, 0, "acknowledge %s", cause, "token-1")

	if err.Message != "acknowledge token-1" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause in chain")
	}
}

func TestImmutability(t *testing.T) {
	original := New(CodeItemAlreadyOwned, 0, "already owned")

	modified := original.
		WithDetails(map[string]string{"product_id": "pro"}).
		WithTraceID("trace-456").
		WithRetryable(true).
		WithStatus(http.StatusGone).
		WithResponseCode(ResponseItemAlreadyOwned).
		WithOperation(OperationPurchase)

	if original.Details != nil {
		t.Error("WithDetails should not mutate original error")
	}
	if original.TraceID != "" {
		t.Error("WithTraceID should not mutate original error")
	}
	if original.Retryable {
		t.Error("WithRetryable should not mutate original error")
	}
	if original.Status != http.StatusConflict {
		t.Error("WithStatus should not mutate original error")
	}
	if original.ResponseCode != ResponseOK || original.Operation != "" {
		t.Error("WithResponseCode/WithOperation should not mutate original error")
	}

	if modified.TraceID != "trace-456" {
		t.Errorf("modified error should have trace ID, got %s", modified.TraceID)
	}
	if modified.Status != http.StatusGone {
		t.Errorf("modified error should have updated status, got %d", modified.Status)
	}
	if modified.ResponseCode != ResponseItemAlreadyOwned {
		t.Errorf("expected response code %s, got %s", ResponseItemAlreadyOwned, modified.ResponseCode)
	}
	if modified.Operation != OperationPurchase {
		t.Errorf("expected operation purchase, got %s", modified.Operation)
	}
}

func TestWithStatusZero(t *testing.T) {
	err := New(CodeError, 0, "").WithStatus(0)
	if err.Status != http.StatusInternalServerError {
		t.Errorf("zero status should be ignored, got %d", err.Status)
	}
}

func TestIs(t *testing.T) {
	err := New(CodeUserCanceled, 0, "")

	if !Is(err, CodeUserCanceled) {
		t.Error("Is() should return true for matching code")
	}
	if Is(err, CodeError) {
		t.Error("Is() should return false for non-matching code")
	}

	// Test with wrapped error
	wrapped := fmt.Errorf("purchase flow: %w", err)
	if !Is(wrapped, CodeUserCanceled) {
		t.Error("Is() should match through fmt wrapping")
	}

	if Is(errors.New("regular error"), CodeError) {
		t.Error("Is() should return false for non-Error type")
	}
	if Is(nil, CodeError) {
		t.Error("Is() should return false for nil")
	}
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("outer: %w", ConsumeError("tok", errors.New("x")))
	if CodeOf(err) != CodeConsumeError {
		t.Errorf("expected CONSUME_ERROR, got %q", CodeOf(err))
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("expected empty code for plain error")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := FromResult(OperationPurchase, ResponseItemAlreadyOwned, "").WithTraceID("t-1")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("failed to marshal: %v", mErr)
	}

	var result map[string]any
	if uErr := json.Unmarshal(data, &result); uErr != nil {
		t.Fatalf("failed to unmarshal: %v", uErr)
	}

	if result["code"] != "ITEM_ALREADY_OWNED" {
		t.Errorf("expected code ITEM_ALREADY_OWNED, got %v", result["code"])
	}
	if result["response_code"] != float64(7) {
		t.Errorf("expected response_code 7, got %v", result["response_code"])
	}
	if result["operation"] != "purchase" {
		t.Errorf("expected operation purchase, got %v", result["operation"])
	}
	if result["trace_id"] != "t-1" {
		t.Errorf("expected trace_id t-1, got %v", result["trace_id"])
	}
	if _, ok := result["status"]; ok {
		t.Error("status should not be serialized")
	}
	if _, ok := result["details"]; ok {
		t.Error("empty details should be omitted")
	}
}

func TestLogValue(t *testing.T) {
	err := AcknowledgeError("tok-1", errors.New("store timeout")).
		WithTraceID("trace-abc").
		WithResponseCode(ResponseServiceUnavailable)

	if err.LogValue().Kind() != slog.KindGroup {
		t.Error("LogValue should return a group")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("billing failure", "error", err)

	output := buf.String()
	for _, want := range []string{"ACKNOWLEDGE_ERROR", "acknowledge", "SERVICE_UNAVAILABLE", "trace-abc", "store timeout"} {
		if !bytes.Contains([]byte(output), []byte(want)) {
			t.Errorf("expected %q in log output: %s", want, output)
		}
	}
}

func TestLogValueNil(t *testing.T) {
	var err *Error
	if err.LogValue().Kind() != slog.KindGroup {
		t.Error("LogValue on nil should return empty group")
	}
}
