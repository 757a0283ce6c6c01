// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package lint

import (
	"slices"
	"strconv"

	"github.com/hyperscale-consulting/ozone/internal/aws"
)

// spec describes the parts of a resource type the linter knows about.
type spec struct {
	properties map[string]bool
	required   []string
	attributes map[string]bool
	check      func(l *linter, props map[string]any, path []string)
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var specs = map[string]spec{
	"AWS::S3::Bucket": {
		properties: set(
			"AbacStatus", "AccelerateConfiguration", "AccessControl",
			"AnalyticsConfigurations", "BucketEncryption", "BucketName",
			"CorsConfiguration", "IntelligentTieringConfigurations",
			"InventoryConfigurations", "LifecycleConfiguration",
			"LoggingConfiguration", "MetadataConfiguration",
			"MetadataTableConfiguration", "MetricsConfigurations",
			"NotificationConfiguration", "ObjectLockConfiguration",
			"ObjectLockEnabled", "OwnershipControls",
			"PublicAccessBlockConfiguration", "ReplicationConfiguration", "Tags",
			"VersioningConfiguration", "WebsiteConfiguration",
		),
		attributes: set("Arn", "DomainName", "DualStackDomainName", "RegionalDomainName", "WebsiteURL"),
		check:      checkBucket,
	},
	"AWS::S3::BucketPolicy": {
		properties: set("Bucket", "PolicyDocument"),
		required:   []string{"Bucket", "PolicyDocument"},
		attributes: set(),
		check: func(l *linter, props map[string]any, path []string) {
			if doc, ok := props["PolicyDocument"]; ok {
				l.checkPolicy(doc, append(path, "PolicyDocument"), resourcePolicy)
			}
		},
	},
	"AWS::IAM::Role": {
		properties: set(
			"AssumeRolePolicyDocument", "Description", "ManagedPolicyArns",
			"MaxSessionDuration", "Path", "PermissionsBoundary", "Policies",
			"RoleName", "Tags",
		),
		required:   []string{"AssumeRolePolicyDocument"},
		attributes: set("Arn", "RoleId"),
		check:      checkRole,
	},
}

func checkBucket(l *linter, props map[string]any, path []string) {
	if v, ok := props["VersioningConfiguration"].(map[string]any); ok {
		p := append(path, "VersioningConfiguration", "Status")
		switch status := v["Status"].(type) {
		case nil:
			l.report("E3003", p[:len(p)-1], "Status is a required property of VersioningConfiguration")
		case string:
			if !slices.Contains(aws.VersioningStatuses(), status) {
				l.report("E3012", p, "%s is not one of %v", status, aws.VersioningStatuses())
			}
		}
	}

	if v, ok := props["PublicAccessBlockConfiguration"].(map[string]any); ok {
		for _, flag := range sortedKeys(v) {
			p := append(path, "PublicAccessBlockConfiguration", flag)
			if !isIntrinsic(v[flag]) && !isBool(v[flag]) {
				l.report("E3012", p, "%s must be a boolean", flag)
			}
		}
	}

	if v, ok := props["BucketEncryption"].(map[string]any); ok {
		rules, _ := v["ServerSideEncryptionConfiguration"].([]any)
		for i, r := range rules {
			rule, _ := r.(map[string]any)
			def, _ := rule["ServerSideEncryptionByDefault"].(map[string]any)
			alg, ok := def["SSEAlgorithm"].(string)
			if !ok {
				continue
			}
			if !slices.Contains(aws.SSEAlgorithms(), alg) {
				p := append(path, "BucketEncryption", "ServerSideEncryptionConfiguration",
					strconv.Itoa(i), "ServerSideEncryptionByDefault", "SSEAlgorithm")
				l.report("E3012", p, "%s is not one of %v", alg, aws.SSEAlgorithms())
			}
		}
	}
}

func checkRole(l *linter, props map[string]any, path []string) {
	if doc, ok := props["AssumeRolePolicyDocument"]; ok {
		l.checkPolicy(doc, append(path, "AssumeRolePolicyDocument"), trustPolicy)
	}

	if d, ok := props["MaxSessionDuration"]; ok && !isIntrinsic(d) {
		n, ok := asInt(d)
		if !ok || n < 3600 || n > 43200 {
			l.report("E3034", append(path, "MaxSessionDuration"), "MaxSessionDuration must be between 3600 and 43200")
		}
	}

	policies, ok := props["Policies"].([]any)
	if !ok {
		return
	}
	for i, p := range policies {
		pp := append(path, "Policies", strconv.Itoa(i))
		inline, ok := p.(map[string]any)
		if !ok {
			l.report("E3012", pp, "policy must be a mapping")
			continue
		}
		if _, ok := inline["PolicyName"]; !ok {
			l.report("E3003", pp, "PolicyName is a required property of Policy")
		}
		doc, ok := inline["PolicyDocument"]
		if !ok {
			l.report("E3003", pp, "PolicyDocument is a required property of Policy")
			continue
		}
		l.checkPolicy(doc, append(pp, "PolicyDocument"), identityPolicy)
	}
}

// isBool accepts the string forms CloudFormation coerces to booleans.
func isBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return true
	case string:
		return b == "true" || b == "false"
	}
	return false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), n == float64(int(n))
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}
