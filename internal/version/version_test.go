// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name string
		info debug.BuildInfo
		want string
	}{
		{
			name: "main module release",
			info: debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v0.3.0"}},
			want: "v0.3.0",
		},
		{
			name: "main module devel",
			info: debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}},
			want: "dev",
		},
		{
			name: "dependency",
			info: debug.BuildInfo{
				Main: debug.Module{Path: "example.com/stacks", Version: "(devel)"},
				Deps: []*debug.Module{{Path: modulePath, Version: "v0.2.1"}},
			},
			want: "v0.2.1",
		},
		{
			name: "absent",
			info: debug.BuildInfo{Main: debug.Module{Path: "example.com/other"}},
			want: "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromBuildInfo(&tt.info))
		})
	}
}
