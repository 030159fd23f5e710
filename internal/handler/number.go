package handler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric JSON strings, because the
// site's forms submit numbers both ways depending on the input widget.
// An unparseable string decodes to zero and counts as present; only a blank
// string is remembered as missing, so required-field checks can tell an
// empty input apart from a submitted zero.
type Number struct {
	value float64
	blank bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
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
			n.blank = true
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			n.value = 0
			return nil
		}
		n.value = f
		return nil
	}

	return json.Unmarshal(data, &n.value)
}

// Missing reports whether the value was absent, null, or a blank string.
func (n *Number) Missing() bool {
	return n == nil || n.blank
}

// Float returns the numeric value, or 0 when the value is missing.
func (n *Number) Float() float64 {
	if n == nil {
		return 0
	}
	return n.value
}

// FloatPtr returns a *float64 copy, or nil when the value is missing.
func (n *Number) FloatPtr() *float64 {
	if n.Missing() {
		return nil
	}
	f := n.value
	return &f
}
