// Package adapter turns an annotated solution function into a registry entry
// point of shape func() (string, error).
//
// Each solution declares what it consumes and what it returns through two
// explicit tags rather than through its type alone:
//
//	InputKind   how the day's input is loaded and split
//	OutputKind  how the function's results become an answer or an error
//
// The tags are normally emitted by the aocgen generator, which classifies the
// declared Go signature, but they can be written by hand as well. Synthesize
// checks the tags against the function's reflected type before anything runs,
// so a mismatch is reported at registration time together with the
// annotation that caused it.
//
// # Input kinds
//
//	InputByteSegments  [][]byte  raw bytes split on the separator byte ('\n' by default)
//	InputLines         []string  text split into lines
//	InputText          string    the whole text
//	InputBytes         []byte    the raw bytes
//	InputParsed        []T       text split by separator (or lines), each token parsed into T
//	InputNone          -         no argument
//
// T is parsed with encoding.TextUnmarshaler when *T (or T, for pointer
// types) implements it; otherwise strings, booleans, integers and floats are
// parsed with strconv.
//
// # Output kinds
//
//	OutputValue     T          always an answer
//	OutputResult    (T, error) a non-nil error is returned as is
//	OutputOptional  (T, bool)  false becomes a NoOutputError
//	OutputUnit      -          rejected: an entry must produce a value
package adapter
