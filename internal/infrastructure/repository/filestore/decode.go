package filestore

import "encoding/json"

func decode(raw []byte, out interface{}) error {
	return json.Unmarshal(raw, out)
}
