// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"encoding/json"
	"fmt"

	"github.com/awslabs/goformation/v7/cloudformation"

	"github.com/hyperscale-consulting/ozone/internal/log"
	"github.com/hyperscale-consulting/ozone/internal/version"
	"github.com/hyperscale-consulting/ozone/ref"
)

// Format selects the rendering of a template.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// New returns an empty template carrying description and the ozone version in
// its metadata.
func New(description string) *cloudformation.Template {
	t := cloudformation.NewTemplate()
	t.Description = description
	if t.Metadata == nil {
		t.Metadata = map[string]interface{}{}
	}
	t.Metadata["Ozone"] = map[string]interface{}{"Version": version.Version}
	return t
}

// StringParameter declares a String parameter and returns its name.
func StringParameter(t *cloudformation.Template, name string) ref.Name {
	if t.Parameters == nil {
		t.Parameters = cloudformation.Parameters{}
	}
	t.Parameters[name] = cloudformation.Parameter{Type: "String"}
	log.Debugf("parameter declared: %s", name)
	return ref.Name(name)
}

// AddResource registers r under name and returns name. Registering a name
// twice replaces the earlier resource; the replacement is logged since it
// almost always means two builders were given the same scope.
func AddResource(t *cloudformation.Template, name ref.Name, r cloudformation.Resource) ref.Name {
	if t.Resources == nil {
		t.Resources = cloudformation.Resources{}
	}
	if prev, ok := t.Resources[name.String()]; ok {
		log.Warnf("replacing resource %s (%s) with %s", name, prev.AWSCloudFormationType(), r.AWSCloudFormationType())
	}
	t.Resources[name.String()] = r
	log.Debugf("resource added: %s %s", name, r.AWSCloudFormationType())
	return name
}

// AddOutput registers an output whose value may be a literal or an intrinsic.
func AddOutput(t *cloudformation.Template, name string, value interface{}) {
	if t.Outputs == nil {
		t.Outputs = cloudformation.Outputs{}
	}
	t.Outputs[name] = cloudformation.Output{Value: value}
}

// Render returns the template as a CloudFormation document in format f.
func Render(t *cloudformation.Template, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch f {
	case JSON:
		out, err = t.JSON()
	case YAML:
		out, err = t.YAML()
	default:
		return nil, fmt.Errorf("unsupported template format: %s", f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render template as %s: %w", f, err)
	}
	log.Tracef("rendered %d bytes of %s", len(out), f)
	return out, nil
}

// ToMap renders t and decodes the document into a generic map.
func ToMap(t *cloudformation.Template) (map[string]interface{}, error) {
	j, err := Render(t, JSON)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(j, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rendered template: %w", err)
	}
	return doc, nil
}
