// Package contract merges a finalized data snapshot into the fixed legal
// template of the rental-purchase contract. Rendering is a pure function:
// same snapshot in, same document out, and a template token that does not
// resolve is a defect, never an acceptable output.
package contract

// Style carries the visual emphasis a block had on the printed contract.
type Style struct {
	Bold   bool `json:"bold,omitempty"`
	Red    bool `json:"red,omitempty"`
	Small  bool `json:"small,omitempty"`
	Center bool `json:"center,omitempty"`
}

// Kind groups blocks for consumers that care about structure, such as the
// PDF exporter deciding spacing around signatures.
type Kind string

const (
	KindTitle     Kind = "title"
	KindClause    Kind = "clause"
	KindSignature Kind = "signature"
)

// Block is one paragraph of the rendered contract.
type Block struct {
	Kind  Kind   `json:"kind"`
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// Document is the fully merged contract: an ordered visual tree the export
// boundary consumes opaquely.
type Document struct {
	Blocks []Block `json:"blocks"`
}
