// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"github.com/hyperscale-consulting/ozone/ref"
)

// Version is the current IAM policy language version.
const Version = "2012-10-17"

// SecureTransportSid identifies the statement that denies plain HTTP access.
const SecureTransportSid = "EnforceSecureTransport"

// Effect is the outcome of a matching statement.
type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

// Condition maps a condition operator (e.g. "Bool", "StringLike") to its
// key/value pairs.
type Condition map[string]map[string]any

// Statement is a single policy clause. Principal, Action and Resource accept
// either a single value or a list, mirroring the policy grammar; intrinsic
// function strings are allowed anywhere a value is. Zero-valued fields are
// left out of the rendered document.
type Statement struct {
	Sid          string    `json:"Sid,omitempty"`
	Effect       Effect    `json:"Effect"`
	Principal    any       `json:"Principal,omitempty"`
	NotPrincipal any       `json:"NotPrincipal,omitempty"`
	Action       any       `json:"Action,omitempty"`
	NotAction    any       `json:"NotAction,omitempty"`
	Resource     any       `json:"Resource,omitempty"`
	NotResource  any       `json:"NotResource,omitempty"`
	Condition    Condition `json:"Condition,omitempty"`
}

// Document is a complete policy document.
type Document struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// NewDocument returns a document at the current policy version holding
// copies of the given statements in order.
func NewDocument(statements ...Statement) Document {
	d := Document{Version: Version, Statement: make([]Statement, 0, len(statements))}
	for _, s := range statements {
		d.Statement = append(d.Statement, s.Clone())
	}
	return d
}

// Clone returns a copy of s that shares no lists or maps with it.
func (s Statement) Clone() Statement {
	c := s
	c.Principal = cloneValue(s.Principal)
	c.NotPrincipal = cloneValue(s.NotPrincipal)
	c.Action = cloneValue(s.Action)
	c.NotAction = cloneValue(s.NotAction)
	c.Resource = cloneValue(s.Resource)
	c.NotResource = cloneValue(s.NotResource)
	if s.Condition != nil {
		c.Condition = make(Condition, len(s.Condition))
		for op, kv := range s.Condition {
			c.Condition[op] = cloneMap(kv)
		}
	}
	return c
}

// cloneValue copies the list and map shapes a policy value can take. Other
// values are returned as is.
func cloneValue(v any) any {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		return cloneMap(x)
	case map[string]string:
		out := make(map[string]string, len(x))
		for k, e := range x {
			out[k] = e
		}
		return out
	case map[string][]string:
		out := make(map[string][]string, len(x))
		for k, e := range x {
			out[k] = append([]string(nil), e...)
		}
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = cloneValue(e)
	}
	return out
}

// EnforceSecureTransport denies every S3 action on the objects of bucket when
// the request was not made over TLS.
func EnforceSecureTransport(bucket ref.Name) Statement {
	return Statement{
		Sid:       SecureTransportSid,
		Effect:    Deny,
		Action:    "s3:*",
		Principal: "*",
		Resource:  bucket.ArnSub("/*"),
		Condition: Condition{
			"Bool": {"aws:SecureTransport": false},
		},
	}
}

// AWSPrincipal returns a principal naming one or more AWS identities.
func AWSPrincipal(arns ...string) map[string]any {
	if len(arns) == 1 {
		return map[string]any{"AWS": arns[0]}
	}
	return map[string]any{"AWS": arns}
}

// FederatedPrincipal returns a principal naming a web identity provider.
func FederatedPrincipal(provider string) map[string]any {
	return map[string]any{"Federated": provider}
}

// ServicePrincipal returns a principal naming an AWS service.
func ServicePrincipal(service string) map[string]any {
	return map[string]any{"Service": service}
}
