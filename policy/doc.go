// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package policy models IAM policy documents as they are embedded in
// CloudFormation resources, and provides the statements every ozone bucket
// carries.
package policy
