// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"github.com/awslabs/goformation/v7/cloudformation"
	"github.com/awslabs/goformation/v7/cloudformation/s3"

	"github.com/hyperscale-consulting/ozone/internal/aws"
	"github.com/hyperscale-consulting/ozone/internal/log"
	"github.com/hyperscale-consulting/ozone/policy"
	"github.com/hyperscale-consulting/ozone/ref"
	"github.com/hyperscale-consulting/ozone/template"
)

// Logical ID suffixes appended to the scope.
const (
	BucketSuffix = "Bucket"
	PolicySuffix = "BucketPolicy"
)

// Secure describes one secure bucket composite.
type Secure struct {
	// Scope prefixes the logical IDs of both resources. Required.
	Scope string
	// AccessLogs is the parameter naming the bucket that receives access
	// logs. Required.
	AccessLogs ref.Name
	// LogFilePrefix is prepended to access log object keys. Omitted when
	// empty.
	LogFilePrefix string
	// PolicyStatements follow the secure transport statement in the bucket
	// policy, in order. Defaults to none.
	PolicyStatements []policy.Statement
	// NotificationConfig is attached to the bucket as is. Omitted when nil.
	NotificationConfig *s3.Bucket_NotificationConfiguration

	// Bucket and Policy are the logical IDs registered by AddResources.
	Bucket ref.Name
	Policy ref.Name
}

// Names returns the bucket and bucket policy logical IDs for scope.
func Names(scope string) (ref.Name, ref.Name) {
	return ref.Join(scope, BucketSuffix), ref.Join(scope, PolicySuffix)
}

// AddResources registers the bucket and its policy in t. Inputs are not
// validated; a malformed scope or statement is left for the linter.
func (s *Secure) AddResources(t *cloudformation.Template) {
	s.Bucket, s.Policy = Names(s.Scope)
	log.Debugf("adding secure bucket: scope=%s bucket=%s policy=%s statements=%d",
		s.Scope, s.Bucket, s.Policy, len(s.PolicyStatements))

	b := &s3.Bucket{NotificationConfiguration: s.NotificationConfig}
	harden(b, s.AccessLogs, s.LogFilePrefix)
	template.AddResource(t, s.Bucket, b)

	statements := append([]policy.Statement{policy.EnforceSecureTransport(s.Bucket)}, s.PolicyStatements...)
	template.AddResource(t, s.Policy, &s3.BucketPolicy{
		Bucket:         s.Bucket.Ref(),
		PolicyDocument: policy.NewDocument(statements...),
	})
}

// harden sets the protections every ozone bucket carries, overwriting
// whatever b already holds in those fields.
func harden(b *s3.Bucket, accessLogs ref.Name, logFilePrefix string) {
	b.VersioningConfiguration = &s3.Bucket_VersioningConfiguration{
		Status: aws.VersioningEnabled,
	}
	b.PublicAccessBlockConfiguration = &s3.Bucket_PublicAccessBlockConfiguration{
		BlockPublicAcls:       cloudformation.Bool(true),
		BlockPublicPolicy:     cloudformation.Bool(true),
		IgnorePublicAcls:      cloudformation.Bool(true),
		RestrictPublicBuckets: cloudformation.Bool(true),
	}
	b.BucketEncryption = &s3.Bucket_BucketEncryption{
		ServerSideEncryptionConfiguration: []s3.Bucket_ServerSideEncryptionRule{
			{
				ServerSideEncryptionByDefault: &s3.Bucket_ServerSideEncryptionByDefault{
					SSEAlgorithm: aws.SSEAlgorithmAES256,
				},
			},
		},
	}
	b.LoggingConfiguration = &s3.Bucket_LoggingConfiguration{
		DestinationBucketName: cloudformation.String(accessLogs.Ref()),
	}
	if logFilePrefix != "" {
		b.LoggingConfiguration.LogFilePrefix = cloudformation.String(logFilePrefix)
	}
}
