// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package log configures apex/log for ozone and exposes level-named helpers.
package log
