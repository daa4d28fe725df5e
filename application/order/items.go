package order

import (
	"bytes"
	"encoding/json"

	"github.com/hoangtm/restaurant-ordering/constant"
	"github.com/hoangtm/restaurant-ordering/model"
	"github.com/hoangtm/restaurant-ordering/utils/errors"
)

// parseItems accepts the items payload as a JSON array, a single object, or a
// JSON-encoded string wrapping either, and returns a flat list. An empty or
// undecodable payload is an ErrItemParse.
func parseItems(raw json.RawMessage) ([]model.RawLineItem, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "items payload is empty")
	}

	switch data[0] {
	case '"':
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "items string is not valid JSON")
		}
		return parseItems(json.RawMessage(inner))
	case '[':
		var items []model.RawLineItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "items array is malformed")
		}
		if len(items) == 0 {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "items array is empty")
		}
		return items, nil
	case '{':
		var item model.RawLineItem
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "item object is malformed")
		}
		return []model.RawLineItem{item}, nil
	default:
		return nil, errors.SetCustomErrorWithDetail(constant.ErrItemParse, "items payload is not an array, object, or string")
	}
}
