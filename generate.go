package protogen

import "fmt"

// Generate maps every column in order and renders the proto2 definition.
//
// Mapping is all-or-nothing: the first unsupported column aborts the run
// with an error naming the column, and no output is produced.
func Generate(messageName string, columns []Column) (string, error) {
	fields := make([]MessageField, 0, len(columns))

	for _, col := range columns {
		field, err := MapType(col.TypeText, col.Nullable)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", col.Name, err)
		}

		fields = append(fields, MessageField{Name: col.Name, Field: field})
	}

	return Emit(messageName, fields), nil
}
