package theme

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// HashToken derives a short deterministic key from a token set, salted with
// salt. Nested Token and map[string]any values are flattened depth-first
// with sorted keys, so the result is independent of map iteration order.
func HashToken(salt string, tok Token) string {
	d := xxhash.New()
	_, _ = d.WriteString(salt)
	flattenInto(d, map[string]any(tok))
	return strconv.FormatUint(d.Sum64(), 36)
}

func flattenInto(d *xxhash.Digest, v any) {
	switch val := v.(type) {
	case nil:
		_, _ = d.WriteString("<nil>")
	case Token:
		flattenInto(d, map[string]any(val))
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_, _ = d.WriteString(k)
			_, _ = d.WriteString(":")
			flattenInto(d, val[k])
			_, _ = d.WriteString(";")
		}
	case []any:
		for _, e := range val {
			flattenInto(d, e)
			_, _ = d.WriteString(",")
		}
	case string:
		_, _ = d.WriteString(val)
	default:
		_, _ = fmt.Fprintf(d, "%v", val)
	}
}
