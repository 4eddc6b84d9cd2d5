package render

import (
	"bytes"
	"encoding/json"
	"io"

	yaml "gopkg.in/yaml.v3"

	"sprop/style"
)

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// writeYAML writes properties as ordered mapping followed by diagnostics, if
// any.
func writeYAML(w io.Writer, res *style.Result) error {
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range Entries(res) {
		props.Content = append(props.Content, scalar(e.Key), scalar(e.Value))
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content, scalar("properties"), props)
	if problems := Problems(res); len(problems) > 0 {
		list := &yaml.Node{}
		if err := list.Encode(problems); err != nil {
			return err
		}
		doc.Content = append(doc.Content, scalar("diagnostics"), list)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// writeJSON writes the same document as writeYAML. Properties object keeps
// binding order, which json.Marshal of a map would lose.
func writeJSON(w io.Writer, res *style.Result) error {
	var buf bytes.Buffer
	buf.WriteString(`{"properties":{`)
	for i, e := range Entries(res) {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	if problems := Problems(res); len(problems) > 0 {
		data, err := json.Marshal(problems)
		if err != nil {
			return err
		}
		buf.WriteString(`,"diagnostics":`)
		buf.Write(data)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}
