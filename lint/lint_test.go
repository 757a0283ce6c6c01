// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package lint

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// lintTestCase is a template and the rules it is expected to trip.
type lintTestCase struct {
	Name     string   `yaml:"name"`
	Rules    []string `yaml:"rules"`
	Template string   `yaml:"template"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func rules(findings []Finding) []string {
	out := []string{}
	for _, f := range findings {
		out = append(out, f.Rule)
	}
	return out
}

func TestLint(t *testing.T) {
	var tests []lintTestCase
	require.NoError(t, loadTestData("lint_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			findings := Lint([]byte(tt.Template))
			want := tt.Rules
			if want == nil {
				want = []string{}
			}
			assert.ElementsMatch(t, want, rules(findings), "findings: %v", findings)
		})
	}
}

func TestLint_JSON(t *testing.T) {
	doc := `{
  "Parameters": {"Logs": {"Type": "String"}},
  "Resources": {
    "DataBucket": {
      "Type": "AWS::S3::Bucket",
      "Properties": {"LoggingConfiguration": {"DestinationBucketName": {"Ref": "Logs"}}}
    }
  }
}`
	assert.Empty(t, Lint([]byte(doc)))
}

func TestLint_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "syntax", doc: "Resources: [unclosed"},
		{name: "not a mapping", doc: "- a\n- b\n"},
		{name: "scalar", doc: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Lint([]byte(tt.doc))
			require.Len(t, findings, 1)
			assert.Equal(t, "E0000", findings[0].Rule)
		})
	}
}

func TestLint_Locations(t *testing.T) {
	doc := `
Resources:
  DataBucket:
    Type: AWS::S3::Bucket
    Properties:
      LoggingConfiguration:
        DestinationBucketName:
          Ref: Missing
`
	findings := Lint([]byte(doc))
	require.Len(t, findings, 1)
	assert.Equal(t, "Resources/DataBucket/Properties/LoggingConfiguration/DestinationBucketName/Ref", findings[0].Location())
	assert.Contains(t, findings[0].String(), "E1012 Ref Missing not found")
}

func TestLint_Deterministic(t *testing.T) {
	doc := `
Parameters:
  A: {Type: String}
  B: {Type: String}
  C: {Type: String}
Resources:
  DataBucket:
    Type: AWS::S3::Bucket
`
	first := Lint([]byte(doc))
	require.Len(t, first, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Lint([]byte(doc)))
	}
	assert.Equal(t, "Parameters/A", first[0].Location())
}

func TestFindingString(t *testing.T) {
	assert.Equal(t, "E0000 broken", Finding{Rule: "E0000", Message: "broken"}.String())
	assert.Equal(t, "W2001 unused (Parameters/A)",
		Finding{Rule: "W2001", Message: "unused", Path: []string{"Parameters", "A"}}.String())
}
