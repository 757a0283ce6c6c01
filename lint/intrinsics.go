// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperscale-consulting/ozone/internal/aws"
)

var subVariable = regexp.MustCompile(`\$\{([^}]*)\}`)

// isIntrinsic reports whether v is a single-key mapping naming an intrinsic
// function or Ref.
func isIntrinsic(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return false
	}
	for k := range m {
		return k == "Ref" || k == "Condition" || strings.HasPrefix(k, "Fn::")
	}
	return false
}

// walk visits every node under v, checking references and literal ARNs.
func (l *linter) walk(v any, path []string) {
	switch n := v.(type) {
	case map[string]any:
		if len(n) == 1 {
			for k, arg := range n {
				switch k {
				case "Ref":
					l.checkRef(arg, append(path, k))
				case "Fn::GetAtt":
					l.checkGetAtt(arg, append(path, k))
				case "Fn::Sub":
					l.checkSub(arg, append(path, k))
					return
				}
			}
		}
		for _, k := range sortedKeys(n) {
			l.walk(n[k], append(path, k))
		}
	case []any:
		for i, item := range n {
			l.walk(item, append(path, strconv.Itoa(i)))
		}
	case string:
		if aws.LooksLikeARN(n) {
			if err := aws.ValidateARN(n); err != nil {
				l.report("E3031", path, "%v", err)
			}
		}
	}
}

// resolves reports whether name can be referenced with Ref or ${name}.
func (l *linter) resolves(name string) bool {
	if l.params[name] {
		l.used[name] = true
		return true
	}
	return l.resources[name] != "" || pseudoParameters[name]
}

func (l *linter) checkRef(arg any, path []string) {
	name, ok := arg.(string)
	if !ok {
		l.report("E1012", path, "Ref must be a string")
		return
	}
	if !l.resolves(name) {
		l.report("E1012", path, "Ref %s not found as a resource or parameter", name)
	}
}

func (l *linter) checkGetAtt(arg any, path []string) {
	var resource, attr string
	switch a := arg.(type) {
	case string:
		resource, attr, _ = strings.Cut(a, ".")
	case []any:
		if len(a) != 2 {
			l.report("E1010", path, "GetAtt must list a resource and an attribute")
			return
		}
		resource, _ = a[0].(string)
		// A computed attribute name is checked by walk.
		attr, _ = a[1].(string)
	default:
		l.report("E1010", path, "GetAtt must be a string or a list")
		return
	}
	l.checkAttribute(resource, attr, path)
}

// checkAttribute verifies resource exists and, for known types, exposes attr.
// An empty attr is not checked.
func (l *linter) checkAttribute(resource, attr string, path []string) {
	t := l.resources[resource]
	if t == "" {
		l.report("E1010", path, "GetAtt to undefined resource %s", resource)
		return
	}
	if attr == "" {
		return
	}
	if s, ok := specs[t]; ok && !s.attributes[attr] {
		l.report("E1010", path, "%s is not an attribute of %s", attr, t)
	}
}

func (l *linter) checkSub(arg any, path []string) {
	var (
		str  string
		vars map[string]any
	)
	switch a := arg.(type) {
	case string:
		str = a
	case []any:
		if len(a) != 2 {
			l.report("E1019", path, "Sub list must hold a string and a mapping")
			return
		}
		s, ok := a[0].(string)
		if !ok {
			l.report("E1019", append(path, "0"), "Sub template must be a string")
			return
		}
		str = s
		vars, ok = a[1].(map[string]any)
		if !ok {
			l.report("E1019", append(path, "1"), "Sub variables must be a mapping")
			return
		}
		for _, k := range sortedKeys(vars) {
			l.walk(vars[k], append(path, "1", k))
		}
	default:
		l.report("E1019", path, "Sub must be a string or a list")
		return
	}

	for _, m := range subVariable.FindAllStringSubmatch(str, -1) {
		name := strings.TrimSpace(m[1])
		if strings.HasPrefix(name, "!") {
			continue
		}
		if _, ok := vars[name]; ok {
			continue
		}
		if resource, attr, ok := strings.Cut(name, "."); ok {
			if l.resources[resource] == "" {
				l.report("E1019", path, "Sub variable %s refers to undefined resource %s", name, resource)
				continue
			}
			l.checkAttribute(resource, attr, path)
			continue
		}
		if !l.resolves(name) {
			l.report("E1019", path, "Sub variable %s not found as a resource or parameter", name)
		}
	}
}
