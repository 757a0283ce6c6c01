// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/awslabs/goformation/v7/intrinsics"
	"gopkg.in/yaml.v3"

	"github.com/hyperscale-consulting/ozone/internal/aws"
	"github.com/hyperscale-consulting/ozone/internal/log"
)

// Finding is a single diagnostic.
type Finding struct {
	Rule    string
	Message string
	Path    []string
}

// Location returns the slash separated path of the offending node.
func (f Finding) Location() string {
	return strings.Join(f.Path, "/")
}

func (f Finding) String() string {
	if len(f.Path) == 0 {
		return fmt.Sprintf("%s %s", f.Rule, f.Message)
	}
	return fmt.Sprintf("%s %s (%s)", f.Rule, f.Message, f.Location())
}

var (
	sections = map[string]bool{
		"AWSTemplateFormatVersion": true,
		"Conditions":               true,
		"Description":              true,
		"Globals":                  true,
		"Mappings":                 true,
		"Metadata":                 true,
		"Outputs":                  true,
		"Parameters":               true,
		"Resources":                true,
		"Rules":                    true,
		"Transform":                true,
	}

	pseudoParameters = map[string]bool{
		"AWS::AccountId":        true,
		"AWS::NotificationARNs": true,
		"AWS::NoValue":          true,
		"AWS::Partition":        true,
		"AWS::Region":           true,
		"AWS::StackId":          true,
		"AWS::StackName":        true,
		"AWS::URLSuffix":        true,
	}

	parameterTypes = map[string]bool{
		"String":             true,
		"Number":             true,
		"List<Number>":       true,
		"CommaDelimitedList": true,
	}

	resourceType = regexp.MustCompile(`^([A-Za-z0-9]+::[A-Za-z0-9]+::[A-Za-z0-9]+|Custom::[A-Za-z0-9_@-]+)$`)
)

type linter struct {
	params    map[string]bool
	used      map[string]bool
	resources map[string]string
	findings  []Finding
}

// Lint checks a JSON or YAML CloudFormation document. Short-form YAML
// intrinsics such as !Ref and !Sub are rewritten to their long form first.
func Lint(doc []byte) []Finding {
	expanded, err := intrinsics.ProcessYAML(doc, &intrinsics.ProcessorOptions{NoProcess: true})
	if err != nil {
		return []Finding{{Rule: "E0000", Message: fmt.Sprintf("template does not parse: %v", err)}}
	}
	var root any
	if err := yaml.Unmarshal(expanded, &root); err != nil {
		return []Finding{{Rule: "E0000", Message: fmt.Sprintf("template does not parse: %v", err)}}
	}
	top, ok := root.(map[string]any)
	if !ok {
		return []Finding{{Rule: "E0000", Message: "template is not a mapping"}}
	}

	l := &linter{
		params:    map[string]bool{},
		used:      map[string]bool{},
		resources: map[string]string{},
	}
	l.run(top)
	log.Debugf("lint finished: findings=%d", len(l.findings))
	return l.findings
}

func (l *linter) report(rule string, path []string, format string, args ...any) {
	f := Finding{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
		Path:    append([]string{}, path...),
	}
	log.Tracef("finding: %s", f)
	l.findings = append(l.findings, f)
}

func (l *linter) run(top map[string]any) {
	for _, key := range sortedKeys(top) {
		if !sections[key] {
			l.report("E1001", []string{key}, "top level section %s is not valid", key)
		}
	}
	if v, ok := top["AWSTemplateFormatVersion"]; ok && v != "2010-09-09" {
		l.report("E1001", []string{"AWSTemplateFormatVersion"}, "format version %v is not valid, use 2010-09-09", v)
	}

	l.collectParameters(top["Parameters"])

	resources, ok := top["Resources"].(map[string]any)
	if !ok || len(resources) == 0 {
		l.report("E1001", []string{"Resources"}, "missing or empty Resources section")
		resources = nil
	}
	for _, name := range sortedKeys(resources) {
		if r, ok := resources[name].(map[string]any); ok {
			if t, ok := r["Type"].(string); ok {
				l.resources[name] = t
			}
		}
	}

	for _, name := range sortedKeys(resources) {
		l.checkResource(name, resources[name])
	}

	if conditions, ok := top["Conditions"].(map[string]any); ok {
		l.walk(conditions, []string{"Conditions"})
	}
	if outputs, ok := top["Outputs"].(map[string]any); ok {
		for _, name := range sortedKeys(outputs) {
			path := []string{"Outputs", name}
			output, ok := outputs[name].(map[string]any)
			if !ok {
				l.report("E6001", path, "output %s must be a mapping", name)
				continue
			}
			if _, ok := output["Value"]; !ok {
				l.report("E6002", path, "output %s is missing Value", name)
			}
			l.walk(output, path)
		}
	}

	for _, name := range sortedKeys(l.params) {
		if !l.used[name] {
			l.report("W2001", []string{"Parameters", name}, "parameter %s not used", name)
		}
	}
}

func (l *linter) collectParameters(v any) {
	params, ok := v.(map[string]any)
	if !ok {
		return
	}
	for _, name := range sortedKeys(params) {
		path := []string{"Parameters", name}
		l.params[name] = true

		p, ok := params[name].(map[string]any)
		if !ok {
			l.report("E2001", path, "parameter %s must be a mapping", name)
			continue
		}
		t, ok := p["Type"].(string)
		switch {
		case !ok:
			l.report("E2001", path, "parameter %s is missing Type", name)
		case !validParameterType(t):
			l.report("E2001", append(path, "Type"), "parameter %s has invalid Type %s", name, t)
		}
		if d, ok := p["Default"].(string); ok && aws.LooksLikeARN(d) {
			if err := aws.ValidateARN(d); err != nil {
				l.report("E3031", append(path, "Default"), "%v", err)
			}
		}
	}
}

func validParameterType(t string) bool {
	return parameterTypes[t] || strings.HasPrefix(t, "AWS::") || strings.HasPrefix(t, "List<AWS::")
}

func (l *linter) checkResource(name string, v any) {
	path := []string{"Resources", name}
	r, ok := v.(map[string]any)
	if !ok {
		l.report("E3001", path, "resource %s must be a mapping", name)
		return
	}

	t, ok := r["Type"].(string)
	if !ok {
		l.report("E3001", path, "resource %s is missing Type", name)
		return
	}
	if !resourceType.MatchString(t) {
		l.report("E3001", append(path, "Type"), "resource %s has invalid Type %s", name, t)
	}

	l.checkDependsOn(r["DependsOn"], append(path, "DependsOn"))

	props, hasProps := r["Properties"]
	propsPath := append(path, "Properties")
	propMap, _ := props.(map[string]any)
	if hasProps && propMap == nil {
		l.report("E3002", propsPath, "properties of %s must be a mapping", name)
	}

	if s, known := specs[t]; known {
		for _, p := range sortedKeys(propMap) {
			if !s.properties[p] {
				l.report("E3002", append(propsPath, p), "%s is not a property of %s", p, t)
			}
		}
		for _, p := range s.required {
			if _, ok := propMap[p]; !ok {
				l.report("E3003", propsPath, "%s is a required property of %s", p, t)
			}
		}
		if s.check != nil && propMap != nil {
			s.check(l, propMap, propsPath)
		}
	}

	l.walk(r, path)
}

func (l *linter) checkDependsOn(v any, path []string) {
	var deps []any
	switch d := v.(type) {
	case nil:
		return
	case string:
		deps = []any{d}
	case []any:
		deps = d
	default:
		l.report("E3005", path, "DependsOn must be a string or a list")
		return
	}
	for i, d := range deps {
		s, ok := d.(string)
		if !ok || l.resources[s] == "" {
			l.report("E3005", append(path, strconv.Itoa(i)), "DependsOn %v is not a resource", d)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
