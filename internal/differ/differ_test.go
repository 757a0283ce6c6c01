// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		right    string
		ignore   []string
		modified bool
		contains string
	}{
		{
			name:  "identical",
			left:  `{"Resources":{"RvmBucket":{"Type":"AWS::S3::Bucket"}}}`,
			right: `{"Resources":{"RvmBucket":{"Type":"AWS::S3::Bucket"}}}`,
		},
		{
			name:  "key order ignored",
			left:  `{"A":1,"B":2}`,
			right: `{"B":2,"A":1}`,
		},
		{
			name:     "changed value",
			left:     `{"Resources":{"RvmBucket":{"Type":"AWS::S3::Bucket"}}}`,
			right:    `{"Resources":{"RvmBucket":{"Type":"AWS::S3::BucketPolicy"}}}`,
			modified: true,
			contains: "AWS::S3::BucketPolicy",
		},
		{
			name:     "added resource",
			left:     `{"Resources":{}}`,
			right:    `{"Resources":{"RvmBucket":{"Type":"AWS::S3::Bucket"}}}`,
			modified: true,
			contains: "RvmBucket",
		},
		{
			name:   "ignored key",
			left:   `{"Metadata":{"Ozone":{"Version":"v1"}},"A":1}`,
			right:  `{"Metadata":{"Ozone":{"Version":"v2"}},"A":1}`,
			ignore: []string{"Metadata"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			modified, err := Diff([]byte(tt.left), []byte(tt.right), &buf, tt.ignore...)
			require.NoError(t, err)
			assert.Equal(t, tt.modified, modified)
			if tt.modified {
				assert.Contains(t, buf.String(), tt.contains)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestDiff_InvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	_, err := Diff([]byte(`{`), []byte(`{}`), &buf)
	assert.Error(t, err)

	_, err = Diff([]byte(`{}`), []byte(`[`), &buf)
	assert.Error(t, err)
}
