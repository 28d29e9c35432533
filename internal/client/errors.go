package client

import "errors"

var ErrNoUI = errors.New("client: ui is required")
