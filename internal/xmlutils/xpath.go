package xmlutils

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

// Parse reads an XML document into an xmlpath node. Non UTF-8 encodings
// declared in the prolog are honoured.
func Parse(r io.Reader) (*xmlpath.Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	root, err := xmlpath.ParseDecoder(d)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath) // #nosec G304 -- path supplied by the CLI user
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Parse(file)
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// Exists reports whether xpath selects at least one node below root.
func Exists(root *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(root), nil
}

// GetOrEmpty returns the value at the specified index in a slice, or an empty string if the index is out of bounds
func GetOrEmpty(slice []string, index int) string {
	if index >= 0 && index < len(slice) {
		return slice[index]
	}
	return ""
}
