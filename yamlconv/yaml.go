// Package yamlconv imports YAML documents into jsonvalue trees. Mapping keys
// end up in ascending key order like every other Object, so converting YAML
// and dumping it yields deterministic JSON.
package yamlconv

import (
	"bytes"
	"errors"
	"io"

	jsonvalue "github.com/reoring/jsonvalue"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a single YAML document into a Value tree.
func FromYAML(data []byte) (*jsonvalue.Value, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, jsonvalue.AppendIssues(nil, jsonvalue.Issue{
			Path: "/", Code: jsonvalue.CodeParseError, Message: "invalid yaml: " + err.Error(), Cause: err, Offset: -1,
		})
	}
	return jsonvalue.FromGo(node)
}

// FromYAMLAll decodes a multi-document YAML stream into one Value per
// document.
func FromYAMLAll(data []byte) ([]*jsonvalue.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*jsonvalue.Value
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, jsonvalue.AppendIssues(nil, jsonvalue.Issue{
				Path: "/", Code: jsonvalue.CodeParseError, Message: "invalid yaml: " + err.Error(), Cause: err, Offset: -1,
			})
		}
		v, err := jsonvalue.FromGo(node)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
