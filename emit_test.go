package protogen_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protogen-dev/protogen"
)

func TestEmit_AllModifiers(t *testing.T) {
	t.Parallel()

	fields := []protogen.MessageField{
		{Name: "id", Field: protogen.Field{Modifier: protogen.ModifierRequired, Type: "int32"}},
		{Name: "name", Field: protogen.Field{Modifier: protogen.ModifierOptional, Type: "string"}},
		{Name: "tags", Field: protogen.Field{Modifier: protogen.ModifierRepeated, Type: "string"}},
		{Name: "meta", Field: protogen.Field{Modifier: protogen.ModifierNone, Type: "map<string, string>"}},
	}

	want := `syntax = "proto2";

message Event {
    required int32 id = 1;
    optional string name = 2;
    repeated string tags = 3;
    map<string, string> meta = 4;
}
`

	assert.Equal(t, want, protogen.Emit("Event", fields))
}

func TestEmit_Idempotent(t *testing.T) {
	t.Parallel()

	fields := []protogen.MessageField{
		{Name: "a", Field: protogen.Field{Modifier: protogen.ModifierRequired, Type: "int64"}},
		{Name: "b", Field: protogen.Field{Modifier: protogen.ModifierOptional, Type: "bytes"}},
	}

	first := protogen.Emit("Row", fields)
	second := protogen.Emit("Row", fields)

	assert.Equal(t, first, second)
}

func TestEmit_TagsFollowInputOrder(t *testing.T) {
	t.Parallel()

	const n = 10

	fields := make([]protogen.MessageField, 0, n)
	for i := 0; i < n; i++ {
		fields = append(fields, protogen.MessageField{
			Name:  fmt.Sprintf("field_%d", i),
			Field: protogen.Field{Modifier: protogen.ModifierOptional, Type: "string"},
		})
	}

	out := protogen.Emit("Wide", fields)

	for i := 0; i < n; i++ {
		line := fmt.Sprintf("    optional string field_%d = %d;", i, i+1)
		assert.Contains(t, out, line)
	}
}

func TestEmit_EmptyMessage(t *testing.T) {
	t.Parallel()

	out := protogen.Emit("Empty", nil)

	assert.Equal(t, "syntax = \"proto2\";\n\nmessage Empty {\n}\n", out)
}

func TestEmit_TrailingNewline(t *testing.T) {
	t.Parallel()

	out := protogen.Emit("Row", []protogen.MessageField{
		{Name: "x", Field: protogen.Field{Modifier: protogen.ModifierRequired, Type: "int32"}},
	})

	require.True(t, strings.HasSuffix(out, "}\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}
