// Package extractor recovers a build's Mappings and Parameters from the
// published client executable: it parses the movie (pkg/swf), locates
// and parses the embedded AVM2 bytecode (pkg/avm2), then applies
// domain heuristics to pull the wire-ID table, RC4 key, and client
// parameters out of specific classes.
package extractor

import "fmt"

// NoBytecodeFoundError reports a movie with no DoABC tag.
type NoBytecodeFoundError struct{}

func (e *NoBytecodeFoundError) Error() string {
	return "extractor: no embedded bytecode found in movie"
}

// NameNotFoundError reports a required class absent from the
// disassembly.
type NameNotFoundError struct {
	ClassName string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("extractor: class not found: %s", e.ClassName)
}

// ParameterNotFoundError reports a required named constant slot absent
// from the Parameters class.
type ParameterNotFoundError struct {
	ParamName string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("extractor: parameter not found: %s", e.ParamName)
}

// NoRc4FoundError reports a constant-pool string table with no "rc4"
// literal.
type NoRc4FoundError struct{}

func (e *NoRc4FoundError) Error() string {
	return "extractor: no rc4 key literal found in disassembly"
}

// InvalidRc4Error reports an rc4 key candidate that is not 52 hex
// characters.
type InvalidRc4Error struct {
	Reason string
}

func (e *InvalidRc4Error) Error() string {
	return "extractor: invalid rc4 key: " + e.Reason
}

// InvalidPortError reports a PORT parameter slot outside u16 range.
type InvalidPortError struct {
	Value int32
}

func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("extractor: PORT value %d out of u16 range", e.Value)
}
