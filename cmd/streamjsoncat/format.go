package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gibsn/streamjson"
)

// formatValue renders a streamjson.Value as debug text. It is not meant
// to be valid JSON output (object keys are sorted for reproducibility,
// which JSON does not require); it exists so the CLI has something
// legible to print for a materialized subtree.
func formatValue(v streamjson.Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v streamjson.Value) {
	switch v.Kind {
	case streamjson.ValueNull:
		b.WriteString("null")
	case streamjson.ValueBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case streamjson.ValueNumber:
		b.WriteString(v.Number.String())
	case streamjson.ValueString:
		b.WriteString(strconv.Quote(v.Str))
	case streamjson.ValueArray:
		b.WriteByte('[')
		if v.Array != nil {
			for i, elem := range *v.Array {
				if i > 0 {
					b.WriteString(", ")
				}
				writeValue(b, elem)
			}
		}
		b.WriteByte(']')
	case streamjson.ValueMap:
		b.WriteByte('{')
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s: ", strconv.Quote(k))
			writeValue(b, v.Map[k])
		}
		b.WriteByte('}')
	default:
		b.WriteString("<none>")
	}
}
