// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lint performs structural checks on rendered CloudFormation
// documents. It catches the mistakes template builders can make without
// talking to AWS: dangling references, misspelled or missing properties on the
// resource types ozone emits, malformed policy documents and ARNs, and unused
// parameters.
//
// Findings reuse cfn-lint rule identifiers where an equivalent rule exists.
// An empty result means the document passed.
package lint
