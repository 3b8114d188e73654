// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package provider defines the uniform contract every model backend
// implements: one batch generate operation and one streaming operation
// driven by a handler set. Subpackages adapt the contract to specific
// remote APIs.
package provider
