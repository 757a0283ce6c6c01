// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package rvm

import (
	"github.com/awslabs/goformation/v7/cloudformation"
	"github.com/awslabs/goformation/v7/cloudformation/iam"

	"github.com/hyperscale-consulting/ozone/bucket"
	"github.com/hyperscale-consulting/ozone/internal/config"
	"github.com/hyperscale-consulting/ozone/internal/log"
	"github.com/hyperscale-consulting/ozone/policy"
	"github.com/hyperscale-consulting/ozone/ref"
	"github.com/hyperscale-consulting/ozone/template"
)

// Parameter names.
const (
	GitHubRepo            = "GitHubRepo"
	GitHubOidcProviderArn = "GitHubOidcProviderArn"
	AccessLogBucket       = "RvmPipelineBucketAccessLogBucket"
)

// Scope prefixes the pipeline bucket resources.
const Scope = "Rvm"

// PipelineRole is the role assumed by the GitHub Actions workflow.
const PipelineRole ref.Name = "RvmPipelineRole"

const (
	defaultDescription = "Resource vending machine pipeline"
	githubTokenHost    = "token.actions.githubusercontent.com"
	stsAudience        = "sts.amazonaws.com"
)

type options struct {
	description string
	subjects    []string
}

// Option customizes the pipeline template.
type Option func(*options)

// WithDescription sets the template description. Defaults to
// rvm.description.
func WithDescription(description string) Option {
	return func(o *options) { o.description = description }
}

// WithSubjects sets the OIDC subject suffixes allowed to assume the pipeline
// role, e.g. "ref:refs/heads/main" or "environment:production". Each is
// matched as repo:<GitHubRepo>:<subject>. Defaults to rvm.subjects, or "*"
// for any workflow in the repository.
func WithSubjects(subjects ...string) Option {
	return func(o *options) { o.subjects = subjects }
}

func defaults() options {
	description, err := config.GetString("rvm.description", defaultDescription)
	if err != nil {
		log.Warnf("ignoring rvm.description: %v", err)
		description = defaultDescription
	}
	subjects, err := config.GetStringSlice("rvm.subjects", []string{"*"})
	if err != nil {
		log.Warnf("ignoring rvm.subjects: %v", err)
		subjects = []string{"*"}
	} else if len(subjects) == 0 {
		log.Warnf("rvm.subjects is empty, allowing every workflow in the repository")
		subjects = []string{"*"}
	}
	return options{description: description, subjects: subjects}
}

// CreateTemplate returns the pipeline template.
func CreateTemplate(opts ...Option) *cloudformation.Template {
	o := defaults()
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("creating rvm template: subjects=%v", o.subjects)

	t := template.New(o.description)
	repo := template.StringParameter(t, GitHubRepo)
	provider := template.StringParameter(t, GitHubOidcProviderArn)
	accessLogs := template.StringParameter(t, AccessLogBucket)

	bucketName, _ := bucket.Names(Scope)
	artifacts := &bucket.Secure{
		Scope:      Scope,
		AccessLogs: accessLogs,
		PolicyStatements: []policy.Statement{
			{
				Sid:       "AllowPipelineRole",
				Effect:    policy.Allow,
				Principal: policy.AWSPrincipal(PipelineRole.Arn()),
				Action:    objectActions(),
				Resource:  bucketName.ArnSub("/*"),
			},
		},
	}
	artifacts.AddResources(t)

	template.AddResource(t, PipelineRole, &iam.Role{
		Description:              cloudformation.String("Assumed by GitHub Actions to run the resource vending machine pipeline"),
		AssumeRolePolicyDocument: trustPolicy(provider, repo, o.subjects),
		Policies: []iam.Role_Policy{
			{
				PolicyName:     "PipelineBucketAccess",
				PolicyDocument: bucketAccess(artifacts.Bucket),
			},
		},
	})

	template.AddOutput(t, "RvmBucketName", artifacts.Bucket.Ref())
	template.AddOutput(t, "RvmPipelineRoleArn", PipelineRole.Arn())
	return t
}

func objectActions() []string {
	return []string{"s3:GetObject", "s3:GetObjectVersion", "s3:PutObject", "s3:DeleteObject"}
}

// trustPolicy lets workflows in repo whose token subject matches one of
// subjects assume the role through the OIDC provider.
func trustPolicy(provider, repo ref.Name, subjects []string) policy.Document {
	subs := make([]string, 0, len(subjects))
	for _, s := range subjects {
		subs = append(subs, cloudformation.Sub("repo:"+repo.SubVar()+":"+s))
	}
	var sub any = subs
	if len(subs) == 1 {
		sub = subs[0]
	}

	return policy.NewDocument(policy.Statement{
		Sid:       "AllowGitHubActions",
		Effect:    policy.Allow,
		Principal: policy.FederatedPrincipal(provider.Ref()),
		Action:    "sts:AssumeRoleWithWebIdentity",
		Condition: policy.Condition{
			"StringEquals": {githubTokenHost + ":aud": stsAudience},
			"StringLike":   {githubTokenHost + ":sub": sub},
		},
	})
}

func bucketAccess(b ref.Name) policy.Document {
	return policy.NewDocument(
		policy.Statement{
			Sid:      "ListBucket",
			Effect:   policy.Allow,
			Action:   []string{"s3:ListBucket", "s3:GetBucketLocation", "s3:ListBucketVersions"},
			Resource: b.Arn(),
		},
		policy.Statement{
			Sid:      "ReadWriteObjects",
			Effect:   policy.Allow,
			Action:   objectActions(),
			Resource: b.ArnSub("/*"),
		},
	)
}
