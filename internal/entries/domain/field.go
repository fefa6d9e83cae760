package domain

import (
	"bytes"
	"encoding/json"
)

// FieldValue is a discriminated union over the two valid wire shapes for an
// encryptable entry field: a raw string (plaintext) or a tagged object
// {"encrypted": true, "payload": "<ciphertext>"}. Any other shape fails to
// unmarshal with ErrInvalidFieldShape.
type FieldValue struct {
	// Value is the plaintext when Encrypted is false, or the opaque
	// ciphertext payload when Encrypted is true.
	Value string
	// Encrypted reports which variant this value holds.
	Encrypted bool
}

// PlainField returns the plaintext variant.
func PlainField(value string) FieldValue {
	return FieldValue{Value: value}
}

// EncryptedField returns the ciphertext variant.
func EncryptedField(payload string) FieldValue {
	return FieldValue{Value: payload, Encrypted: true}
}

// encryptedFieldJSON is the wire shape for the encrypted variant.
type encryptedFieldJSON struct {
	Encrypted bool   `json:"encrypted"`
	Payload   string `json:"payload"`
}

// MarshalJSON writes the plaintext variant as a bare JSON string and the
// encrypted variant as the tagged object.
func (f FieldValue) MarshalJSON() ([]byte, error) {
	if f.Encrypted {
		return json.Marshal(encryptedFieldJSON{Encrypted: true, Payload: f.Value})
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON accepts exactly the two valid wire shapes and rejects
// everything else.
func (f *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidFieldShape
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ErrInvalidFieldShape
		}
		*f = FieldValue{Value: s}
		return nil
	}

	if trimmed[0] == '{' {
		var tagged encryptedFieldJSON
		decoder := json.NewDecoder(bytes.NewReader(trimmed))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&tagged); err != nil || !tagged.Encrypted {
			return ErrInvalidFieldShape
		}
		*f = FieldValue{Value: tagged.Payload, Encrypted: true}
		return nil
	}

	return ErrInvalidFieldShape
}
