// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive chat client runtime.
//
// It runs the terminal UI under a signal-aware context and releases the
// history database when the UI exits.
package client
