package listapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

// timeoutError is a mock error that implements timeout behavior
type timeoutError struct{}

func (e *timeoutError) Error() string   { return "i/o timeout" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError(t *testing.T) {
	const endpoint = "http://lists.test"

	tests := []struct {
		name          string
		err           error
		wantType      ErrorType
		wantRetryable bool
	}{
		{
			name: "timeout",
			err: &url.Error{Op: "Get", URL: endpoint, Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: &timeoutError{},
			}},
			wantType:      ErrTypeTimeout,
			wantRetryable: true,
		},
		{
			name:          "deadline exceeded",
			err:           &url.Error{Op: "Get", URL: endpoint, Err: context.DeadlineExceeded},
			wantType:      ErrTypeTimeout,
			wantRetryable: true,
		},
		{
			name: "connection refused",
			err: &url.Error{Op: "Get", URL: endpoint, Err: &net.OpError{
				Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED,
			}},
			wantType:      ErrTypeConnectionRefused,
			wantRetryable: true,
		},
		{
			name: "dns not found",
			err: &url.Error{Op: "Get", URL: endpoint, Err: &net.DNSError{
				Err: "no such host", Name: "lists.test", IsNotFound: true,
			}},
			wantType:      ErrTypeDNS,
			wantRetryable: false,
		},
		{
			name: "dns temporary",
			err: &net.DNSError{
				Err: "server misbehaving", Name: "lists.test", IsTemporary: true,
			},
			wantType:      ErrTypeDNS,
			wantRetryable: true,
		},
		{
			name:          "canceled",
			err:           &url.Error{Op: "Get", URL: endpoint, Err: context.Canceled},
			wantType:      ErrTypeCanceled,
			wantRetryable: false,
		},
		{
			name:          "generic",
			err:           errors.New("connection reset by peer"),
			wantType:      ErrTypeNetwork,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ClassifyNetworkError(tt.err, endpoint)
			if apiErr == nil {
				t.Fatal("Expected APIError, got nil")
			}
			if apiErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", apiErr.Type, tt.wantType)
			}
			if apiErr.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", apiErr.Retryable, tt.wantRetryable)
			}
			if apiErr.Endpoint != endpoint {
				t.Errorf("Endpoint = %q, want %q", apiErr.Endpoint, endpoint)
			}
		})
	}
}

func TestClassifyNetworkError_Nil(t *testing.T) {
	if ClassifyNetworkError(nil, "") != nil {
		t.Error("ClassifyNetworkError(nil) should return nil")
	}
}

func TestNewHTTPError_Retryable(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{404, false},
		{400, false},
		{429, true},
		{500, true},
		{503, true},
	}

	for _, tt := range tests {
		err := NewHTTPError(tt.status, "", "boom")
		if err.Retryable != tt.want {
			t.Errorf("NewHTTPError(%d).Retryable = %v, want %v", tt.status, err.Retryable, tt.want)
		}
		if err.Type != ErrTypeHTTP {
			t.Errorf("NewHTTPError(%d).Type = %v", tt.status, err.Type)
		}
	}
}

func TestAPIError_Chain(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := fmt.Errorf("load: %w", NewParseError("failed to parse JSON response", "", cause))

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the underlying cause")
	}
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatal("AsAPIError should find the wrapped APIError")
	}
	if apiErr.Type != ErrTypeParse {
		t.Errorf("Type = %v, want %v", apiErr.Type, ErrTypeParse)
	}
	if IsRetryable(err) {
		t.Error("parse errors should not be retryable")
	}
	if IsNetworkError(err) {
		t.Error("parse errors are not network errors")
	}
	if !strings.Contains(err.Error(), "caused by: unexpected EOF") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsRetryable_UnknownError(t *testing.T) {
	if IsRetryable(errors.New("plain")) {
		t.Error("unknown errors should not be retryable")
	}
}

func TestShortMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&APIError{Type: ErrTypeTimeout}, "did not respond in time"},
		{&APIError{Type: ErrTypeConnectionRefused}, "refused the connection"},
		{&APIError{Type: ErrTypeHTTP, StatusCode: 502}, "HTTP 502"},
		{&APIError{Type: ErrTypeParse}, "could not be read"},
		{errors.New("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		if got := ShortMessage(tt.err); !strings.Contains(got, tt.want) {
			t.Errorf("ShortMessage(%v) = %q, want containing %q", tt.err, got, tt.want)
		}
	}
}

func TestErrorType_String(t *testing.T) {
	if ErrTypeDNS.String() != "DNS Error" {
		t.Errorf("ErrTypeDNS.String() = %q", ErrTypeDNS.String())
	}
	if ErrorType(99).String() != "ErrorType(99)" {
		t.Errorf("unknown ErrorType.String() = %q", ErrorType(99).String())
	}
}
