package centrifuge

import gojson "github.com/goccy/go-json"

// tagged renders a sum-type variant as a single-key JSON object named after
// the variant, e.g. {"TCP": {...}}, matching the renderer's JSON layout
// contract in spec §6 ("variants tagged by their name").
func tagged(name string, payload interface{}) ([]byte, error) {
	return gojson.Marshal(map[string]interface{}{name: payload})
}
