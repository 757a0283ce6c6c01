// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package template assembles goformation templates: it declares parameters,
// registers resources and outputs under ref.Name identifiers, and renders the
// result as a CloudFormation document.
package template
