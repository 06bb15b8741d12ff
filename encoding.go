package fixmath

import "encoding/binary"
import "errors"
import "strconv"

import "gopkg.in/yaml.v3"

// Encoding support. A Fixed is always persisted as its raw int32,
// which is the only state it has. The human readable String() form
// is never used for interchange.

var errBinaryLength = errors.New("fixmath: binary encoding must be 4 bytes long")

// Implements [encoding.BinaryMarshaler]. The raw value is
// written as 4 big endian bytes.
func (self Fixed) MarshalBinary() ([]byte, error) {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), uint32(self.raw)), nil
}

// Implements [encoding.BinaryUnmarshaler].
func (self *Fixed) UnmarshalBinary(data []byte) error {
	if len(data) != 4 { return errBinaryLength }
	self.raw = int32(binary.BigEndian.Uint32(data))
	return nil
}

// Implements [encoding.TextMarshaler]. The text is the raw
// value in base 10 (e.g. "3142" for Pi).
func (self Fixed) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(self.raw), 10), nil
}

// Implements [encoding.TextUnmarshaler].
func (self *Fixed) UnmarshalText(text []byte) error {
	raw, err := parseRaw("UnmarshalText", string(text))
	if err != nil { return err }
	self.raw = raw
	return nil
}

// Implements [json.Marshaler]. The raw value is written as
// a JSON number.
func (self Fixed) MarshalJSON() ([]byte, error) {
	return self.MarshalText()
}

// Implements [json.Unmarshaler]. The literal null is a no-op,
// following the encoding/json conventions.
func (self *Fixed) UnmarshalJSON(data []byte) error {
	if string(data) == "null" { return nil }
	raw, err := parseRaw("UnmarshalJSON", string(data))
	if err != nil { return err }
	self.raw = raw
	return nil
}

// Implements [yaml.Marshaler].
func (self Fixed) MarshalYAML() (interface{}, error) {
	return self.raw, nil
}

// Implements [yaml.Unmarshaler]. Only integer scalars are
// accepted.
func (self *Fixed) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.New("fixmath: yaml line " + strconv.Itoa(node.Line) + ": expected a raw integer scalar")
	}
	raw, err := parseRaw("UnmarshalYAML", node.Value)
	if err != nil { return err }
	self.raw = raw
	return nil
}

func parseRaw(op, text string) (int32, error) {
	raw, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, &Error{Op: op, Raw: raw, Err: ErrOverflow}
		}
		return 0, err
	}
	if raw > int64(MaxRaw) || raw < int64(MinRaw) {
		return 0, overflow(op, raw)
	}
	return int32(raw), nil
}
