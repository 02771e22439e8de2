package gen

import (
	"encoding/json"

	"github.com/ardnew/hcomp/schema"
)

// generateJSON renders the flattened interchange form with two-space
// indentation. The output round-trips through [schema.Decode].
func generateJSON(cmd schema.Command) (string, error) {
	data, err := json.MarshalIndent(cmd, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
