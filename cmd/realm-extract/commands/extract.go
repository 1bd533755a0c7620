package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oryxlabs/realmcore/internal/cli/output"
	"github.com/oryxlabs/realmcore/internal/cli/prompt"
	"github.com/oryxlabs/realmcore/pkg/extractor"
	"github.com/oryxlabs/realmcore/pkg/mappingstore/badger"
	"github.com/oryxlabs/realmcore/pkg/protocol"
)

var (
	flagMappings     bool
	flagParameters   bool
	flagFormat       string
	flagCachePath    string
	flagBuildVersion string
	flagForce        bool
)

// Extraction runs on the root command itself: the CLI's whole job is
// "read one client binary, print one document", so there is no
// "extract" subcommand to spell out.
func init() {
	rootCmd.Args = cobra.ExactArgs(1)
	rootCmd.RunE = runExtract

	rootCmd.Flags().BoolVar(&flagMappings, "mappings", false, "extract packet wire-ID mappings (default if neither flag is set)")
	rootCmd.Flags().BoolVar(&flagParameters, "parameters", false, "extract client parameters")
	rootCmd.Flags().StringVar(&flagFormat, "format", "json", "output format: json or table")
	rootCmd.Flags().StringVar(&flagCachePath, "cache", "", "badger mapping cache directory to persist the result in")
	rootCmd.Flags().StringVar(&flagBuildVersion, "build-version", "", "cache key to use when --parameters did not also run (required with --cache in that case)")
	rootCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite an existing cache entry without prompting")
}

func parseExtractFormat(s string) (output.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return output.FormatJSON, nil
	case "table":
		return output.FormatTable, nil
	default:
		return "", fmt.Errorf("invalid --format %q (valid: json, table)", s)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	if !flagMappings && !flagParameters {
		flagMappings = true
	}

	format, err := parseExtractFormat(flagFormat)
	if err != nil {
		return err
	}

	path := args[0]
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open client binary: %w", err)
		}
		defer f.Close()
		r = f
	}

	client, err := extractor.Parse(r)
	if err != nil {
		return fmt.Errorf("parse client binary: %w", err)
	}

	doc := &outputDoc{}
	var mappings *protocol.Mappings
	var parameters *extractor.Parameters

	if flagParameters {
		parameters, err = client.ExtractParameters()
		if err != nil {
			return fmt.Errorf("extract parameters: %w", err)
		}
		doc.Parameters = parameters
	}
	if flagMappings {
		mappings, err = client.ExtractMappings()
		if err != nil {
			return fmt.Errorf("extract mappings: %w", err)
		}
		doc.Mappings = newMappingsDoc(mappings)
	}

	if flagCachePath != "" {
		if mappings == nil {
			return fmt.Errorf("--cache requires --mappings")
		}
		if err := cacheMappings(cmd, mappings, parameters); err != nil {
			return err
		}
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format, false)
	return printer.Print(doc)
}

// cacheMappings stores a freshly extracted build's mappings (and, if
// available, parameters) in the badger cache at flagCachePath, keyed by
// build version. An existing entry is only overwritten after an
// interactive confirmation, unless --force was given.
func cacheMappings(cmd *cobra.Command, mappings *protocol.Mappings, parameters *extractor.Parameters) error {
	buildVersion := flagBuildVersion
	if buildVersion == "" && parameters != nil {
		buildVersion = parameters.Version
	}
	if buildVersion == "" {
		return errors.New("--cache requires --parameters or --build-version to key the cache entry")
	}

	store, err := badger.Open(flagCachePath)
	if err != nil {
		return fmt.Errorf("open mapping cache: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	_, _, exists, err := store.Get(ctx, buildVersion)
	if err != nil {
		return fmt.Errorf("check existing cache entry: %w", err)
	}
	if exists && !flagForce {
		ok, err := prompt.Confirm(fmt.Sprintf("overwrite cached mapping for build %s", buildVersion), false)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return errors.New("aborted")
			}
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "cache entry left unchanged")
			return nil
		}
	}

	var cacheParams extractor.Parameters
	if parameters != nil {
		cacheParams = *parameters
	}
	if err := store.Put(ctx, buildVersion, mappings, &cacheParams); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cached mapping for build %s\n", buildVersion)
	return nil
}

// mappingsDoc is the JSON/table view of an extracted Mappings, distinct
// from protocol.Mappings itself since that type keeps its tables
// unexported.
type mappingsDoc struct {
	Rc4Key    string           `json:"rc4_key"`
	WireTable map[uint8]string `json:"wire_table"`
	Mapped    int              `json:"mapped_count"`
	Unmapped  []string         `json:"unmapped_kinds,omitempty"`
}

func newMappingsDoc(m *protocol.Mappings) *mappingsDoc {
	key := m.Key()
	unmappedKinds := m.FindUnmapped()
	unmapped := make([]string, len(unmappedKinds))
	for i, k := range unmappedKinds {
		unmapped[i] = k.Name()
	}
	return &mappingsDoc{
		Rc4Key:    hex.EncodeToString(key[:]),
		WireTable: m.WireTable(),
		Mapped:    m.Len(),
		Unmapped:  unmapped,
	}
}

// outputDoc is the extractor CLI's single JSON output document
// `{ "mappings": {...} | null, "parameters": {...} | null }`.
type outputDoc struct {
	Mappings   *mappingsDoc          `json:"mappings"`
	Parameters *extractor.Parameters `json:"parameters"`
}

// Headers implements output.TableRenderer.
func (d *outputDoc) Headers() []string {
	return []string{"field", "value"}
}

// Rows implements output.TableRenderer.
func (d *outputDoc) Rows() [][]string {
	var rows [][]string

	if d.Mappings != nil {
		rows = append(rows,
			[]string{"rc4_key", d.Mappings.Rc4Key},
			[]string{"mapped_count", strconv.Itoa(d.Mappings.Mapped)},
			[]string{"unmapped_kinds", strings.Join(d.Mappings.Unmapped, ", ")},
		)

		ids := make([]int, 0, len(d.Mappings.WireTable))
		for id := range d.Mappings.WireTable {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		for _, id := range ids {
			rows = append(rows, []string{fmt.Sprintf("wire 0x%02x", id), d.Mappings.WireTable[uint8(id)]})
		}
	}

	if p := d.Parameters; p != nil {
		rows = append(rows,
			[]string{"version", p.Version},
			[]string{"port", strconv.Itoa(int(p.Port))},
			[]string{"tutorial_game_id", strconv.Itoa(int(p.TutorialGameID))},
			[]string{"nexus_game_id", strconv.Itoa(int(p.NexusGameID))},
			[]string{"random_game_id", strconv.Itoa(int(p.RandomGameID))},
		)
	}

	return rows
}
