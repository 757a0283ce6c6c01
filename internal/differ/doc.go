// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders semantic differences between two
// rendered templates.
package differ
