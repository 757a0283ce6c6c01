// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package ref defines the logical identifiers shared between template
// parameters, resources and the intrinsic functions that point at them.
package ref
