package vdf

import (
	"io"
	"strings"
)

// Dump writes m to w in canonical VDF text form: tab-indented, quoted
// key/value pairs with brace-delimited nested blocks, mirroring
// original_source/src/scvdf.py's _toLOS/dump.
func Dump(w io.Writer, m *OrderedMultiMap) error {
	return dumpBlock(w, m, 0)
}

// Dumps renders m to a string.
func Dumps(m *OrderedMultiMap) string {
	var b strings.Builder
	_ = Dump(&b, m)
	return b.String()
}

func dumpBlock(w io.Writer, m *OrderedMultiMap, depth int) error {
	var err error
	m.Each(func(key string, value interface{}) {
		if err != nil {
			return
		}
		indent := strings.Repeat("\t", depth)
		switch v := value.(type) {
		case string:
			_, err = io.WriteString(w, indent+quote(key)+"\t\t"+quote(v)+"\n")
		case *OrderedMultiMap:
			_, err = io.WriteString(w, indent+quote(key)+"\n"+indent+"{\n")
			if err != nil {
				return
			}
			err = dumpBlock(w, v, depth+1)
			if err != nil {
				return
			}
			_, err = io.WriteString(w, indent+"}\n")
		}
	})
	return err
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
