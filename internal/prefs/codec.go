package prefs

import "encoding/json"

// emptySet is the canonical encoding of an empty selection.
const emptySet = "[]"

// Codec converts a set of enum ids to and from the portable storage encoding:
// a JSON array of stable ids in canonical variant order. Decoding is total —
// malformed payloads and ids that no longer map to a known variant produce an
// empty or reduced set instead of an error, so schema evolution never breaks
// existing installations.
type Codec struct {
	order []string
	rank  map[string]int
}

func NewCodec(variants []string) *Codec {
	order := make([]string, 0, len(variants))
	rank := make(map[string]int, len(variants))
	for _, id := range variants {
		if _, dup := rank[id]; dup {
			continue
		}
		rank[id] = len(order)
		order = append(order, id)
	}
	return &Codec{order: order, rank: rank}
}

// Encode serializes the selection. Unknown ids and duplicates are dropped and
// the result is ordered canonically, so equal sets always encode identically.
// Encode never fails the caller: if serialization is impossible it returns the
// empty-array encoding.
func (c *Codec) Encode(ids []string) string {
	selected := make([]bool, len(c.order))
	for _, id := range ids {
		if idx, ok := c.rank[id]; ok {
			selected[idx] = true
		}
	}

	canonical := make([]string, 0, len(ids))
	for idx, on := range selected {
		if on {
			canonical = append(canonical, c.order[idx])
		}
	}

	encoded, err := json.Marshal(canonical)
	if err != nil {
		return emptySet
	}
	return string(encoded)
}

// Decode parses a stored encoding back into the set of known ids, in canonical
// order. Missing input, malformed JSON and unknown ids all degrade silently.
func (c *Codec) Decode(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return []string{}
	}

	selected := make([]bool, len(c.order))
	for _, id := range stored {
		if idx, ok := c.rank[id]; ok {
			selected[idx] = true
		}
	}

	decoded := make([]string, 0, len(stored))
	for idx, on := range selected {
		if on {
			decoded = append(decoded, c.order[idx])
		}
	}
	return decoded
}

// Contains reports whether the id is one of the codec's known variants.
func (c *Codec) Contains(id string) bool {
	_, ok := c.rank[id]
	return ok
}

// Variants returns the known ids in canonical order.
func (c *Codec) Variants() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
