// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws contains AWS-related helpers shared by the template builders and
// the linter: ARN checks and the S3 enumeration values that templates must
// agree with the service on.
package aws
