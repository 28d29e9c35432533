// Package config provides configuration loading, merging, and validation
// for the relay and the chat client.
//
// Configuration is assembled from multiple sources; for each field the first
// non-zero value in this order wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetRelayConfig] and [GetClientConfig].
package config
