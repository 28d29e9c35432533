package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-relay-chat/models"
)

const (
	FieldHost = "host"
	FieldPort = "port"
	FieldKey  = "key"
	FieldName = "name"
)

// ConnectRequestValidator checks the connect form before a session is built.
type ConnectRequestValidator struct {
}

func NewConnectRequestValidator() Validator {
	return &ConnectRequestValidator{}
}

// Validate accepts models.ConnectRequest or *models.ConnectRequest. Without
// fields it checks key, host, port and name in that order.
func (v *ConnectRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConnectRequest:
		return v.validateConnectRequest(ctx, value, fields...)
	case *models.ConnectRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConnectRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ConnectRequestValidator) validateConnectRequest(_ context.Context, req models.ConnectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldHost, FieldPort, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if strings.TrimSpace(req.Key) == "" {
				return ErrEmptyKey
			}
		case FieldHost:
			// empty host is allowed, the relay falls back to its default
			if strings.ContainsAny(req.Host, " \t\r\n/") {
				return ErrInvalidHost
			}
		case FieldPort:
			port, err := strconv.Atoi(strings.TrimSpace(req.Port))
			if err != nil || port < 1 || port > 65535 {
				return ErrInvalidPort
			}
		case FieldName:
			if strings.ContainsAny(req.Name, "\r\n") {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
