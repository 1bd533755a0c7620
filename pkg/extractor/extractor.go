package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/oryxlabs/realmcore/internal/logger"
	"github.com/oryxlabs/realmcore/pkg/avm2"
	"github.com/oryxlabs/realmcore/pkg/protocol"
	"github.com/oryxlabs/realmcore/pkg/swf"
)

// gameServerConnectionClass is the class whose integer constant slots
// assign each internal packet kind a per-build wire byte tag.
const gameServerConnectionClass = "GameServerConnection"

// parametersClass is the class whose constant slots carry the client's
// build version, port, and game-ID parameters.
const parametersClass = "Parameters"

// ParsedClient is a movie that has been parsed down to its AVM2
// bytecode. Mappings and Parameters are not extracted until requested;
// constructing a ParsedClient does no heuristic work beyond locating
// and parsing the bytecode container.
type ParsedClient struct {
	abc *avm2.AbcFile
}

// Parse reads a movie (the published client executable container,
// "the movie") from r, selects its first embedded
// bytecode tag, and parses that bytecode's constant pool and class
// table.
func Parse(r io.Reader) (*ParsedClient, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("extractor: read movie: %w", err)
	}

	tags, err := swf.ParseTags(data)
	if err != nil {
		return nil, fmt.Errorf("extractor: parse movie: %w", err)
	}

	bytecode, ok := swf.FindDoABC(tags)
	if !ok {
		return nil, &NoBytecodeFoundError{}
	}

	abc, err := avm2.ParseAbcFile(bytecode)
	if err != nil {
		return nil, fmt.Errorf("extractor: parse bytecode: %w", err)
	}

	return &ParsedClient{abc: abc}, nil
}

// normalizeSlotName lowercases and strips underscores from a constant
// slot's name, matching it against the packet registry's catalogue
// name normalized the same way.
func normalizeSlotName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// normalizedKindIndex builds a normalized-name -> Kind index over the
// full packet registry, built once per extraction since the registry
// itself is process-wide static data.
func normalizedKindIndex() map[string]protocol.Kind {
	kinds := protocol.AllKinds()
	idx := make(map[string]protocol.Kind, len(kinds))
	for _, k := range kinds {
		idx[normalizeSlotName(k.Name())] = k
	}
	return idx
}

// ExtractMappings builds the per-build Mappings by combining the RC4
// key material (4.4.5) with the wire-ID table recovered from the
// GameServerConnection class's integer constant slots (4.4.4).
func (p *ParsedClient) ExtractMappings() (*protocol.Mappings, error) {
	rc4Hex, err := p.extractRc4Hex()
	if err != nil {
		return nil, err
	}

	class, ok := p.abc.FindClass(gameServerConnectionClass)
	if !ok {
		return nil, &NameNotFoundError{ClassName: gameServerConnectionClass}
	}

	idx := normalizedKindIndex()
	wireToName := make(map[uint8]string)
	for _, slot := range class.ConstSlots {
		if slot.Value.Kind != avm2.SlotValueInt {
			continue
		}
		normalized := normalizeSlotName(slot.Name)
		kind, ok := idx[normalized]
		if !ok {
			logger.Debug("extractor: unmatched const slot", "slot_name", slot.Name)
			continue
		}
		wireID := uint8(slot.Value.Int)
		wireToName[wireID] = kind.Name()
	}

	mappings, err := protocol.NewMappings(rc4Hex, wireToName)
	if err != nil {
		return nil, err
	}
	logger.Info("extractor: mappings extracted", "mapped_count", mappings.Len(), "unmapped_count", len(mappings.FindUnmapped()))
	return mappings, nil
}

// extractRc4Hex scans the constant pool's string table for the literal
// "rc4" and returns the string immediately following it: index i of
// the match, index i+1 is the key.
func (p *ParsedClient) extractRc4Hex() (string, error) {
	strs := p.abc.Constants.Strings
	for i, s := range strs {
		if s == "rc4" && i+1 < len(strs) {
			return strs[i+1], nil
		}
	}
	return "", &NoRc4FoundError{}
}

// ExtractParameters builds Parameters from the build's Parameters
// class. Every required slot must be present and of the expected value
// kind; absence of any is an error naming the slot.
func (p *ParsedClient) ExtractParameters() (*Parameters, error) {
	class, ok := p.abc.FindClass(parametersClass)
	if !ok {
		return nil, &NameNotFoundError{ClassName: parametersClass}
	}

	slots := make(map[string]avm2.LinkedSlot, len(class.ConstSlots))
	for _, s := range class.ConstSlots {
		slots[s.Name] = s
	}

	strParam := func(name string) (string, error) {
		s, ok := slots[name]
		if !ok || s.Value.Kind != avm2.SlotValueString {
			return "", &ParameterNotFoundError{ParamName: name}
		}
		return s.Value.String, nil
	}
	intParam := func(name string) (int32, error) {
		s, ok := slots[name]
		if !ok || s.Value.Kind != avm2.SlotValueInt {
			return 0, &ParameterNotFoundError{ParamName: name}
		}
		return s.Value.Int, nil
	}

	buildVersion, err := strParam("BUILD_VERSION")
	if err != nil {
		return nil, err
	}
	minorVersion, err := strParam("MINOR_VERSION")
	if err != nil {
		return nil, err
	}

	portRaw, err := intParam("PORT")
	if err != nil {
		return nil, err
	}
	if portRaw < 0 || portRaw > 65535 {
		return nil, &InvalidPortError{Value: portRaw}
	}

	tutorialGameID, err := intParam("TUTORIAL_GAMEID")
	if err != nil {
		return nil, err
	}
	nexusGameID, err := intParam("NEXUS_GAMEID")
	if err != nil {
		return nil, err
	}
	randomGameID, err := intParam("RANDOM_REALM_GAMEID")
	if err != nil {
		return nil, err
	}

	return &Parameters{
		Version:        buildVersion + "." + minorVersion,
		Port:           uint16(portRaw),
		TutorialGameID: tutorialGameID,
		NexusGameID:    nexusGameID,
		RandomGameID:   randomGameID,
	}, nil
}
