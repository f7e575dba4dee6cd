package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON value that the API encodes inconsistently
// as either a string or a number. Numbers keep their source formatting
// ("5.50" stays "5.50"), null and absent values decode to "".
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())

	return nil
}

// String returns the decoded value.
func (s FlexString) String() string {
	return string(s)
}

// FlexInt decodes a JSON value that the API encodes as either a number
// or a numeric string. Null, absent and unparsable values decode to 0.
type FlexInt int64

// UnmarshalJSON implements [json.Unmarshaler].
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			*i = 0
			return nil
		}
		*i = FlexInt(parsed)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	parsed, err := n.Int64()
	if err != nil {
		// fractional values are truncated rather than rejected
		f, ferr := n.Float64()
		if ferr != nil {
			*i = 0
			return nil
		}
		*i = FlexInt(int64(f))
		return nil
	}
	*i = FlexInt(parsed)

	return nil
}

// Int64 returns the decoded value.
func (i FlexInt) Int64() int64 {
	return int64(i)
}
