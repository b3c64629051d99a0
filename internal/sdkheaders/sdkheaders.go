// Package sdkheaders builds the identification headers sent with every API call.
package sdkheaders

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/google/uuid"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const (
	// HeaderAnalytics carries the service, version and operation of a call.
	HeaderAnalytics = "X-IBMCloud-SDK-Analytics"
	// HeaderRequestID correlates a call with server-side logs.
	HeaderRequestID = "X-Request-ID"
)

// UserAgent returns the default User-Agent string for this SDK.
func UserAgent() string {
	return fmt.Sprintf("go-secadvisor/%s (lang=go; arch=%s; os=%s; go.version=%s)",
		Version, runtime.GOARCH, runtime.GOOS, runtime.Version())
}

// Operation identifies one API operation for the analytics header.
type Operation struct {
	Service string
	Version string
	ID      string
}

// String renders the operation in analytics header form.
func (o Operation) String() string {
	return fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s", o.Service, o.Version, o.ID)
}

// Build returns the identification headers for op. A fresh request id is
// generated for each call; callers can override it with their own header.
func Build(op Operation) http.Header {
	h := make(http.Header)
	h.Set(HeaderAnalytics, op.String())
	h.Set(HeaderRequestID, uuid.NewString())
	return h
}
