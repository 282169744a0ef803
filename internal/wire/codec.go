package wire

import (
	"encoding/json"
	"io"
)

// Codec frames JSON values over a connection, one per Decode/Encode
// call. The wire protocol is newline-or-concatenation-framed, which is
// exactly what encoding/json's streaming Decoder already does against a
// raw byte stream; no separate tokenizer is needed.
type Codec struct {
	dec *json.Decoder
	enc *json.Encoder
}

func NewCodec(rw io.ReadWriter) *Codec {
	return &Codec{dec: json.NewDecoder(rw), enc: json.NewEncoder(rw)}
}

func (c *Codec) Decode(v interface{}) error {
	return c.dec.Decode(v)
}

func (c *Codec) Encode(v interface{}) error {
	return c.enc.Encode(v)
}
