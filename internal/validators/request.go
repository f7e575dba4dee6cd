package validators

import (
	"context"
	"encoding/json"
	"time"

	"github.com/x1024/shkolo-cli/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUsername targets the login username.
	FieldUsername = "username"

	// FieldPassword targets the login password.
	FieldPassword = "password"

	// FieldIDToken targets the Google OAuth ID token.
	FieldIDToken = "id_token"

	// FieldMethod targets the HTTP method of a raw request.
	FieldMethod = "method"

	// FieldEndpoint targets the endpoint path of a raw request.
	FieldEndpoint = "endpoint"

	// FieldData targets the optional JSON body of a raw request.
	FieldData = "data"
)

// allowedMethods is the exhaustive set of HTTP methods accepted for raw
// requests. Any method not present in this slice is considered invalid.
var allowedMethods = []string{"GET", "POST", "PUT", "DELETE"}

// RequestValidator implements the Validator interface for the request
// models sent to the Shkolo API: LoginRequest, GoogleLoginRequest, and
// RawRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.LoginRequest / *models.LoginRequest
//   - models.GoogleLoginRequest / *models.GoogleLoginRequest
//   - models.RawRequest / *models.RawRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.GoogleLoginRequest:
		return v.validateGoogleLoginRequest(ctx, value, fields...)
	case *models.GoogleLoginRequest:
		return v.validateGoogleLoginRequest(ctx, *value, fields...)

	case models.RawRequest:
		return v.validateRawRequest(ctx, value, fields...)
	case *models.RawRequest:
		return v.validateRawRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isAllowedMethod reports whether m is one of the recognized HTTP methods
// defined in allowedMethods.
func isAllowedMethod(m string) bool {
	for _, allowed := range allowedMethods {
		if m == allowed {
			return true
		}
	}
	return false
}

// validateLoginRequest validates username/password credentials.
//
// Default validated fields: Username, Password.
func (v *RequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateGoogleLoginRequest validates a Google sign-in request.
//
// Default validated fields: IDToken.
func (v *RequestValidator) validateGoogleLoginRequest(ctx context.Context, request models.GoogleLoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDToken}
	}

	for _, f := range fields {
		switch f {
		case FieldIDToken:
			if request.IDToken == "" {
				return ErrEmptyIDToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRawRequest validates an arbitrary API call built from raw
// command arguments.
//
// Default validated fields: Method, Endpoint, Data.
//
// The Data field only triggers a check when non-empty: a raw request
// without a body is always acceptable, but a body that is not valid JSON
// must be rejected before anything is sent over the wire.
func (v *RequestValidator) validateRawRequest(ctx context.Context, request models.RawRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldEndpoint, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !isAllowedMethod(request.Method) {
				return ErrInvalidMethod
			}
		case FieldEndpoint:
			if request.Endpoint == "" {
				return ErrEmptyEndpoint
			}
		case FieldData:
			if request.Data != "" && !json.Valid([]byte(request.Data)) {
				return ErrInvalidJSON
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Date reports whether value is a calendar date in YYYY-MM-DD form.
func Date(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Page reports whether value is a usable 1-based page number.
func Page(value int) error {
	if value < 1 {
		return ErrInvalidPage
	}
	return nil
}
