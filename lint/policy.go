// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package lint

import (
	"strconv"
)

// policyKind selects which statement elements are mandatory.
type policyKind int

const (
	// resourcePolicy is attached to a resource and names principals and
	// resources.
	resourcePolicy policyKind = iota
	// trustPolicy is a role's assume-role document.
	trustPolicy
	// identityPolicy is attached to a principal and never names one.
	identityPolicy
)

var policyVersions = set("2012-10-17", "2008-10-17")

func (l *linter) checkPolicy(v any, path []string, kind policyKind) {
	if isIntrinsic(v) {
		return
	}
	doc, ok := v.(map[string]any)
	if !ok {
		if _, isString := v.(string); !isString {
			l.report("E3500", path, "policy document must be a mapping")
		}
		return
	}

	if version, ok := doc["Version"]; ok {
		s, _ := version.(string)
		if !policyVersions[s] {
			l.report("E3500", append(path, "Version"), "policy version %v is not valid", version)
		}
	}

	var statements []any
	switch s := doc["Statement"].(type) {
	case []any:
		statements = s
	case map[string]any:
		statements = []any{s}
	}
	if len(statements) == 0 {
		l.report("E3500", path, "policy document has no statements")
		return
	}

	sids := map[string]bool{}
	for i, s := range statements {
		sp := append(path, "Statement", strconv.Itoa(i))
		stmt, ok := s.(map[string]any)
		if !ok {
			l.report("E3500", sp, "statement must be a mapping")
			continue
		}
		l.checkStatement(stmt, sp, kind)

		if sid, ok := stmt["Sid"].(string); ok {
			if sids[sid] {
				l.report("E3500", append(sp, "Sid"), "duplicate Sid %s", sid)
			}
			sids[sid] = true
		}
	}
}

func (l *linter) checkStatement(stmt map[string]any, path []string, kind policyKind) {
	switch stmt["Effect"] {
	case "Allow", "Deny":
	default:
		l.report("E3500", append(path, "Effect"), "Effect must be Allow or Deny")
	}

	if !hasEither(stmt, "Action", "NotAction") {
		l.report("E3500", path, "statement must have Action or NotAction")
	}

	hasPrincipal := hasEither(stmt, "Principal", "NotPrincipal")
	switch kind {
	case resourcePolicy:
		if !hasPrincipal {
			l.report("E3500", path, "statement must have Principal or NotPrincipal")
		}
		if !hasEither(stmt, "Resource", "NotResource") {
			l.report("E3500", path, "statement must have Resource or NotResource")
		}
	case trustPolicy:
		if !hasPrincipal {
			l.report("E3500", path, "statement must have Principal or NotPrincipal")
		}
	case identityPolicy:
		if hasPrincipal {
			l.report("E3500", path, "identity policy statements cannot name a Principal")
		}
		if !hasEither(stmt, "Resource", "NotResource") {
			l.report("E3500", path, "statement must have Resource or NotResource")
		}
	}

	if c, ok := stmt["Condition"]; ok {
		cond, ok := c.(map[string]any)
		if !ok {
			l.report("E3500", append(path, "Condition"), "Condition must be a mapping")
			return
		}
		for _, op := range sortedKeys(cond) {
			if _, ok := cond[op].(map[string]any); !ok {
				l.report("E3500", append(path, "Condition", op), "condition %s must be a mapping", op)
			}
		}
	}
}

func hasEither(stmt map[string]any, a, b string) bool {
	_, okA := stmt[a]
	_, okB := stmt[b]
	return okA || okB
}
