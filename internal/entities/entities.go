package entities

import (
	"bytes"
	"encoding/gob"
)

// Результаты кэшируются в сервисе в виде байтов.

func (r *OrderResult) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *OrderResult) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(r)
}

func init() {
	gob.Register(OrderResult{})
	gob.Register(MarketplaceError{})
}
