// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package rvm builds the resource vending machine pipeline template: a secure
// artifact bucket and the role GitHub Actions assumes, through the account's
// GitHub OIDC provider, to deploy from the configured repository.
//
// Defaults are read from the ozone configuration:
//
//	rvm:
//	  description: Resource vending machine pipeline
//	  subjects:
//	    - ref:refs/heads/main
package rvm
