// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other ozone packages to avoid import cycles.

package version

import "runtime/debug"

const modulePath = "github.com/hyperscale-consulting/ozone"

// Version is the ozone module version recorded in the build, or "dev" when
// built from a working tree.
var Version = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return fromBuildInfo(info)
}()

// fromBuildInfo finds ozone either as the main module or as a dependency of
// the program that renders templates.
func fromBuildInfo(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath && dep.Version != "" {
			return dep.Version
		}
	}
	return "dev"
}
