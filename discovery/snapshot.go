package discovery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// snapshotFile is the on-disk shape of a discovery snapshot. ABIs may be
// given either as human-readable signature lists (abis) or as raw JSON ABI
// blobs (abi_json), which are converted to signature lists on load.
type snapshotFile struct {
	Entries []Entry             `json:"entries"            yaml:"entries"`
	ABIs    map[string][]string `json:"abis,omitempty"     yaml:"abis,omitempty"`
	ABIJSON map[string]string   `json:"abi_json,omitempty" yaml:"abi_json,omitempty"`
}

// Load reads a discovery snapshot from path. The format is sniffed from the
// file extension: .yaml/.yml is parsed as YAML, everything else as JSON.
func Load(path string) (*Output, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var file snapshotFile
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(content, &file)
	} else {
		err = json.Unmarshal(content, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}

	out := &Output{
		Entries: file.Entries,
		ABIs:    file.ABIs,
	}
	if out.ABIs == nil && len(file.ABIJSON) > 0 {
		out.ABIs = map[string][]string{}
	}
	for addr, raw := range file.ABIJSON {
		sigs, err := SignaturesFromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing JSON ABI of %s: %w", addr, err)
		}
		out.ABIs[addr] = sigs
	}
	return out, nil
}
