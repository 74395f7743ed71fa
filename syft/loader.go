package syft

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joshyorko/sbomlic/common"
)

// Load reads a Syft JSON document from given reader. A document
// without artifacts is refused, since nothing downstream could work
// with it.
func Load(source io.Reader) (*Document, error) {
	content, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read Syft output: %w", err)
	}
	var document Document
	err = json.Unmarshal(content, &document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Syft JSON: %w", err)
	}
	if document.Artifacts == nil {
		return nil, fmt.Errorf("no artifacts found in Syft output")
	}
	common.Debug("Loaded %d artifacts from %q v%s output.", len(document.Artifacts), document.Descriptor.Name, document.Descriptor.Version)
	return &document, nil
}

// LoadFile reads a Syft JSON document from given file, or from
// stdin when filename is "-".
func LoadFile(filename string) (*Document, error) {
	if filename == "-" {
		return Load(os.Stdin)
	}
	handle, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	defer handle.Close()
	return Load(handle)
}
