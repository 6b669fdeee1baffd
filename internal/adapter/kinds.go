package adapter

import "fmt"

// InputKind selects how a solution's input is acquired.
type InputKind int

// Input kinds, in the priority order used to classify a declared parameter.
const (
	InputByteSegments InputKind = iota
	InputLines
	InputText
	InputBytes
	InputParsed
	InputNone
)

var inputKindNames = [...]string{
	InputByteSegments: "byte-segments",
	InputLines:        "lines",
	InputText:         "text",
	InputBytes:        "bytes",
	InputParsed:       "parsed",
	InputNone:         "none",
}

var inputKindIdents = [...]string{
	InputByteSegments: "InputByteSegments",
	InputLines:        "InputLines",
	InputText:         "InputText",
	InputBytes:        "InputBytes",
	InputParsed:       "InputParsed",
	InputNone:         "InputNone",
}

func (k InputKind) valid() bool {
	return k >= 0 && int(k) < len(inputKindNames)
}

func (k InputKind) String() string {
	if !k.valid() {
		return "InputKind(?)"
	}
	return inputKindNames[k]
}

// Ident returns the Go identifier of the kind, as used in generated code.
func (k InputKind) Ident() string {
	if !k.valid() {
		return ""
	}
	return inputKindIdents[k]
}

// MarshalText encodes the kind by name, e.g. in JSON listings.
func (k InputKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid input kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// OutputKind selects how a solution's results are normalized.
type OutputKind int

const (
	OutputValue OutputKind = iota
	OutputResult
	OutputOptional
	OutputUnit
)

var outputKindNames = [...]string{
	OutputValue:    "value",
	OutputResult:   "result",
	OutputOptional: "optional",
	OutputUnit:     "unit",
}

var outputKindIdents = [...]string{
	OutputValue:    "OutputValue",
	OutputResult:   "OutputResult",
	OutputOptional: "OutputOptional",
	OutputUnit:     "OutputUnit",
}

func (k OutputKind) valid() bool {
	return k >= 0 && int(k) < len(outputKindNames)
}

func (k OutputKind) String() string {
	if !k.valid() {
		return "OutputKind(?)"
	}
	return outputKindNames[k]
}

// Ident returns the Go identifier of the kind, as used in generated code.
func (k OutputKind) Ident() string {
	if !k.valid() {
		return ""
	}
	return outputKindIdents[k]
}

// MarshalText encodes the kind by name.
func (k OutputKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("invalid output kind %d", int(k))
	}
	return []byte(k.String()), nil
}
