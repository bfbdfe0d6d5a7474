package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

const commandsTable = "commands"

func decodeTOML(data []byte) (rawDocument, []string, error) {
	var raw rawDocument
	if err := toml.Unmarshal(data, &raw); err != nil {
		if de, ok := err.(*toml.DecodeError); ok {
			row, col := de.Position()
			return raw, nil, fmt.Errorf("line %d, column %d: %w\n%s", row, col, err, de.String())
		}
		return raw, nil, err
	}

	order, err := tomlCommandOrder(data)
	if err != nil {
		return raw, nil, err
	}

	return raw, order, nil
}

// tomlCommandOrder walks the document's top-level expressions and returns
// the keys of the commands table in the order they appear. Both the
// [commands] table form and the inline commands = { ... } form are handled.
func tomlCommandOrder(data []byte) ([]string, error) {
	var (
		p     unstable.Parser
		table []string
		order []string
	)

	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyParts(expr.Key())

		case unstable.KeyValue:
			path := append(append([]string(nil), table...), keyParts(expr.Key())...)

			switch {
			case len(path) == 2 && path[0] == commandsTable:
				order = append(order, path[1])

			case len(path) == 1 && path[0] == commandsTable && expr.Value().Kind == unstable.InlineTable:
				it := expr.Value().Children()
				for it.Next() {
					kv := it.Node()
					if kv.Kind != unstable.KeyValue {
						continue
					}
					if parts := keyParts(kv.Key()); len(parts) == 1 {
						order = append(order, parts[0])
					}
				}
			}
		}
	}

	return order, p.Error()
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}
