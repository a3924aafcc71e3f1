// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Settings left empty by every source receive defaults (see the Default*
// constants). The main entry points are [GetStructuredConfig] for the
// server and [GetClientConfig] for the command-line client.
package config
