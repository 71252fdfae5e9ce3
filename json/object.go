package json

import "bytes"

// Member is one key/value pair of an ordered object.
type Member struct {
	Key   string
	Value string
}

// MarshalObject encodes members as a JSON object, keeping their order.
// Go maps cannot express member order, so the object is assembled here and
// only the individual strings go through Marshal.
func MarshalObject(members []Member) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		v, err := Marshal(m.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
