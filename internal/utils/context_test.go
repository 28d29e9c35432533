// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc")

	sessionID, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if sessionID != "abc" {
		t.Errorf("expected sessionID=abc, got %q", sessionID)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	sessionID, ok := GetSessionIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if sessionID != "" {
		t.Errorf("expected empty sessionID, got %q", sessionID)
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, 42)

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSessionIDFromContext_Empty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")

	if _, ok := GetSessionIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}
