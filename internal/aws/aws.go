// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Bucket property values taken from the S3 API so templates and the linter
// use the exact strings the service accepts.
var (
	VersioningEnabled   = string(s3types.BucketVersioningStatusEnabled)
	VersioningSuspended = string(s3types.BucketVersioningStatusSuspended)
	SSEAlgorithmAES256  = string(s3types.ServerSideEncryptionAes256)
)

// VersioningStatuses returns every value accepted for
// VersioningConfiguration.Status.
func VersioningStatuses() []string {
	var out []string
	for _, v := range s3types.BucketVersioningStatus("").Values() {
		out = append(out, string(v))
	}
	return out
}

// SSEAlgorithms returns every value accepted for
// ServerSideEncryptionByDefault.SSEAlgorithm.
func SSEAlgorithms() []string {
	var out []string
	for _, v := range s3types.ServerSideEncryption("").Values() {
		out = append(out, string(v))
	}
	return out
}

// LooksLikeARN reports whether s is meant to be an ARN. Strings that embed
// Fn::Sub variables are not literal ARNs and are left to the Sub checks.
func LooksLikeARN(s string) bool {
	return strings.HasPrefix(s, "arn:") && !strings.Contains(s, "${")
}

// ValidateARN parses s and returns an error describing why it is not a usable
// ARN. Wildcard ARNs such as "arn:aws:s3:::bucket/*" are valid.
func ValidateARN(s string) error {
	a, err := arn.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid ARN %q: %w", s, err)
	}
	if a.Partition == "" || a.Service == "" || a.Resource == "" {
		return fmt.Errorf("invalid ARN %q: partition, service and resource are required", s)
	}
	return nil
}
