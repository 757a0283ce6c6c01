// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"github.com/awslabs/goformation/v7/cloudformation"
)

// Pseudo parameters available in every template.
const (
	AccountID Name = "AWS::AccountId"
	Partition Name = "AWS::Partition"
	Region    Name = "AWS::Region"
	StackName Name = "AWS::StackName"
)

// Name is the logical identifier of a parameter or resource. Every intrinsic
// that points at a logical ID is produced from a Name so the resource that
// owns the ID and the resources that reference it cannot drift apart.
type Name string

// Join returns the Name formed by appending suffix to prefix.
func Join(prefix string, suffix string) Name {
	return Name(prefix + suffix)
}

func (n Name) String() string {
	return string(n)
}

// Ref returns { "Ref": n }.
func (n Name) Ref() string {
	return cloudformation.Ref(string(n))
}

// GetAtt returns { "Fn::GetAtt": [n, attr] }.
func (n Name) GetAtt(attr string) string {
	return cloudformation.GetAtt(string(n), attr)
}

// Arn returns { "Fn::GetAtt": [n, "Arn"] }.
func (n Name) Arn() string {
	return n.GetAtt("Arn")
}

// ArnSub returns { "Fn::Sub": "${n.Arn}<suffix>" }, e.g. "/*" for every
// object in a bucket.
func (n Name) ArnSub(suffix string) string {
	return cloudformation.Sub(n.SubVar("Arn") + suffix)
}

// SubVar returns the Fn::Sub variable for n, or for one of its attributes
// when attr is given: "${n}" or "${n.attr}".
func (n Name) SubVar(attr ...string) string {
	if len(attr) == 1 && attr[0] != "" {
		return "${" + string(n) + "." + attr[0] + "}"
	}
	return "${" + string(n) + "}"
}
