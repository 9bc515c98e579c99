package sitebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SpecMap holds a material's specification fields ("grade", "diameter", ...).
// The backend records spec values loosely as strings or numbers; decoding
// canonicalizes every value to its string form so that {"grade": 53} and
// {"grade": "53"} build the same identity key.
type SpecMap map[string]string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *SpecMap) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("invalid spec map: %w", err)
	}
	m := make(SpecMap, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			m[k] = val
		case json.Number:
			m[k] = val.String()
		case bool:
			if val {
				m[k] = "true"
			} else {
				m[k] = "false"
			}
		case nil:
			// A null spec value carries no information.
		default:
			return fmt.Errorf("invalid spec value for %q: %v", k, v)
		}
	}
	*s = m
	return nil
}

// DecodeMaterials decodes one material fetch payload: a JSON array of raw
// material records.
func DecodeMaterials(r io.Reader) ([]RawMaterial, error) {
	var records []RawMaterial
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode material records: %w", err)
	}
	return records, nil
}

// DecodeLabor decodes one labor fetch payload: a JSON array of raw labor
// records.
func DecodeLabor(r io.Reader) ([]RawLabor, error) {
	var records []RawLabor
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode labor records: %w", err)
	}
	return records, nil
}

// DecodeAssignments decodes one staff assignment payload: a JSON array of
// assignment records.
func DecodeAssignments(r io.Reader) ([]Assignment, error) {
	var records []Assignment
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("could not decode assignment records: %w", err)
	}
	return records, nil
}
