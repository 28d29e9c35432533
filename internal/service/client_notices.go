package service

import (
	"errors"

	"github.com/MKhiriev/go-relay-chat/internal/adapter"
	"github.com/MKhiriev/go-relay-chat/internal/app"
	"github.com/MKhiriev/go-relay-chat/internal/crypto"
	"github.com/MKhiriev/go-relay-chat/internal/validators"
)

// connectNotice translates a Connect failure into the notice shown to the user
func connectNotice(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyKey), errors.Is(err, crypto.ErrEmptyKeyMaterial):
		return app.MsgKeyRequired
	case errors.Is(err, crypto.ErrKeyDerivation):
		return app.MsgInvalidKey
	case errors.Is(err, validators.ErrInvalidPort):
		return app.MsgPortInvalid
	case errors.Is(err, validators.ErrInvalidHost):
		return app.MsgHostInvalid
	case errors.Is(err, validators.ErrInvalidName):
		return app.MsgNameInvalid
	case errors.Is(err, adapter.ErrDial), errors.Is(err, adapter.ErrTransportClosed):
		return app.MsgConnectFailed
	}
	return app.MsgInvalidForm
}
