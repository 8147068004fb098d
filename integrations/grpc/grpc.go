// Package grpc carries premium errors across gRPC boundaries.
//
// The exact code name travels in an errdetails.ErrorInfo reason so clients
// recover the same Code the server produced, not just the coarser gRPC code.
package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	premiumerrors "github.com/blackwell-systems/premium-errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpcfw "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain used for premium errors.
const Domain = "premium.billing"

const (
	metaOperation    = "operation"
	metaResponseCode = "response_code"
	metaRetryable    = "retryable"
	metaTraceID      = "trace_id"
)

// Status converts err into a gRPC status. It returns nil for a nil error.
func Status(err error) *status.Status {
	e := premiumerrors.From(err)
	if e == nil {
		return nil
	}

	st := status.New(Code(e.Code), e.Message)
	md := map[string]string{
		metaRetryable: strconv.FormatBool(e.Retryable),
	}
	if e.Operation != "" {
		md[metaOperation] = string(e.Operation)
	}
	if e.ResponseCode != premiumerrors.ResponseOK {
		md[metaResponseCode] = strconv.Itoa(int(e.ResponseCode))
	}
	if e.TraceID != "" {
		md[metaTraceID] = e.TraceID
	}

	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: md,
	})
	if derr != nil {
		return st
	}
	return detailed
}

// FromStatus converts a gRPC status back into an *Error. It returns nil for
// a nil or OK status. Statuses without premium ErrorInfo are mapped by gRPC
// code.
func FromStatus(st *status.Status) *premiumerrors.Error {
	if st == nil || st.Code() == codes.OK {
		return nil
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		code, err := premiumerrors.Parse(info.GetReason())
		if err != nil {
			continue
		}
		e := premiumerrors.New(code, 0, st.Message())
		md := info.GetMetadata()
		if v, err := strconv.ParseBool(md[metaRetryable]); err == nil {
			e = e.WithRetryable(v)
		}
		if v, err := strconv.Atoi(md[metaResponseCode]); err == nil {
			e = e.WithResponseCode(premiumerrors.ResponseCode(v))
		}
		if op := md[metaOperation]; op != "" {
			e = e.WithOperation(premiumerrors.Operation(op))
		}
		if id := md[metaTraceID]; id != "" {
			e = e.WithTraceID(id)
		}
		return e
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return premiumerrors.Wrap(premiumerrors.CodeServiceUnavailable, 0, "", st.Err())
	case codes.Canceled:
		return premiumerrors.Wrap(premiumerrors.CodeServiceDisconnected, 0, "", st.Err()).
			WithRetryable(false)
	case codes.InvalidArgument:
		return premiumerrors.Wrap(premiumerrors.CodeDeveloperError, 0, st.Message(), st.Err())
	default:
		return premiumerrors.Wrap(premiumerrors.CodeError, 0, st.Message(), st.Err()).
			WithRetryable(false)
	}
}

// Code returns the gRPC code used for a premium error code.
func Code(c premiumerrors.Code) codes.Code {
	switch c {
	case premiumerrors.CodeDeveloperError, premiumerrors.CodeInvalidProductTypeSet:
		return codes.InvalidArgument
	case premiumerrors.CodeClientNotReady, premiumerrors.CodeClientDisconnected,
		premiumerrors.CodeServiceUnavailable, premiumerrors.CodeServiceDisconnected:
		return codes.Unavailable
	case premiumerrors.CodeProductNotExist, premiumerrors.CodeOfferNotExist,
		premiumerrors.CodeOldPurchaseTokenNotFound:
		return codes.NotFound
	case premiumerrors.CodeBillingError, premiumerrors.CodeError,
		premiumerrors.CodeAcknowledgeError, premiumerrors.CodeConsumeError:
		return codes.Internal
	case premiumerrors.CodeUserCanceled:
		return codes.Canceled
	case premiumerrors.CodeBillingUnavailable, premiumerrors.CodeItemUnavailable,
		premiumerrors.CodeItemNotOwned, premiumerrors.CodeAcknowledgeWarning:
		return codes.FailedPrecondition
	case premiumerrors.CodeItemAlreadyOwned:
		return codes.AlreadyExists
	}
	return codes.Unknown
}

// UnaryServerInterceptor converts handler errors into premium gRPC statuses.
// Errors that already carry a gRPC status pass through unchanged. If logger
// is non-nil, each converted error is logged.
func UnaryServerInterceptor(logger *slog.Logger) grpcfw.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpcfw.UnaryServerInfo, handler grpcfw.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := status.FromError(err); ok {
			var pe *premiumerrors.Error
			if !errors.As(err, &pe) {
				return resp, err
			}
		}

		e := premiumerrors.From(err)
		if e.TraceID == "" {
			if id := premiumerrors.TraceIDFromContext(ctx); id != "" {
				e = e.WithTraceID(id)
			}
		}
		if logger != nil {
			level := slog.LevelError
			if e.Code.IsWarning() {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "premium error", "method", info.FullMethod, "error", e)
		}
		return resp, Status(e).Err()
	}
}

// UnaryClientInterceptor converts premium gRPC statuses returned by a server
// back into *premiumerrors.Error values.
func UnaryClientInterceptor() grpcfw.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpcfw.ClientConn, invoker grpcfw.UnaryInvoker, opts ...grpcfw.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		st, ok := status.FromError(err)
		if !ok {
			return err
		}
		if e := FromStatus(st); e != nil {
			return e
		}
		return err
	}
}
