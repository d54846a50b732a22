package servicerecord

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// Hours is a service duration submitted by a client. Form-based clients send
// it as a numeric string ("7.5"), API clients as a JSON number; both are
// accepted. Unmarshalling never fails on bad input so the service can report
// a validation error instead of a generic decode failure.
type Hours struct {
	value   float64
	present bool
	valid   bool
}

// NewHours builds a parsed value, mainly for tests and the CLI client.
func NewHours(v float64) Hours {
	return Hours{value: v, present: true, valid: true}
}

// IsSet reports whether the field carried a value. JSON null and the empty
// string both count as absent, matching the update semantics of the API.
func (h Hours) IsSet() bool { return h.present }

// IsValid reports whether the carried value parsed as a number.
func (h Hours) IsValid() bool { return h.valid }

func (h Hours) Value() float64 { return h.value }

// IsZero makes an absent Hours eligible for the omitzero tag.
func (h Hours) IsZero() bool { return !h.present }

func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = Hours{}

	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		h.present = true
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil
		}
		h.value = v
		h.valid = true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		h.present = true
		return nil
	}
	h.value = v
	h.present = true
	h.valid = true
	return nil
}

func (h Hours) MarshalJSON() ([]byte, error) {
	if !h.valid {
		return []byte("null"), nil
	}
	return json.Marshal(h.value)
}

// Schema allows either representation through huma's request validation.
func (h Hours) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeNumber, Nullable: true},
			{Type: huma.TypeString},
		},
		Description: "Service duration in hours, as a number or numeric string",
	}
}
