// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/hyperscale-consulting/ozone/internal/log"
)

// Diff compares two JSON documents, ignoring the named top-level keys. When
// they differ an ASCII delta is written to w. Key order never counts as a
// difference.
func Diff(left, right []byte, w io.Writer, ignore ...string) (bool, error) {
	log.Debugf("len(docs): %d %d", len(left), len(right))

	left, ljdoc, err := strip(left, ignore)
	if err != nil {
		return false, fmt.Errorf("failed to decode left document: %w", err)
	}
	right, _, err = strip(right, ignore)
	if err != nil {
		return false, fmt.Errorf("failed to decode right document: %w", err)
	}

	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return false, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       false,
	}
	diffString, err := formatter.NewAsciiFormatter(ljdoc, config).Format(delta)
	if err != nil {
		return true, err
	}

	_, err = fmt.Fprintln(w, diffString)
	return true, err
}

// strip removes the ignored top-level keys and returns the re-encoded
// document along with its decoded form.
func strip(doc []byte, ignore []string) ([]byte, map[string]interface{}, error) {
	var jdoc map[string]interface{}
	if err := json.Unmarshal(doc, &jdoc); err != nil {
		return nil, nil, err
	}
	if len(ignore) == 0 {
		return doc, jdoc, nil
	}
	for _, key := range ignore {
		delete(jdoc, key)
	}
	out, err := json.Marshal(jdoc)
	return out, jdoc, err
}
