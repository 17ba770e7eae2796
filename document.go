package extdata

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// DocumentID returns the value of a document's "id" attribute, or "" when
// the attribute is absent. Non-string ids are returned in string form, the
// same way the service renders them into the resource path.
func DocumentID(doc json.RawMessage) string {
	return gjson.GetBytes(doc, "id").String()
}

// RenderJSON pretty-prints a raw JSON payload with two-space indentation,
// preserving the field order the service returned.
func RenderJSON(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
