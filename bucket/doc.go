// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package bucket builds the secure S3 bucket composite: a versioned,
// encrypted, access-logged bucket with public access blocked, and a bucket
// policy that refuses requests made without TLS.
//
// The four bucket protections and the leading policy statement are fixed.
// Nothing a caller passes in can relax them.
package bucket
