package bio

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes which columns of a table take part in growing a tree:
the label column the tree predicts and the attribute columns it may ask
about. No attributes means every column but the label.
*/
type Metadata struct {
	Label      string   `yaml:"label"`
	Attributes []string `yaml:"attributes,omitempty"`
}

/*
ReadYMLMetadata takes a slice of bytes with metadata in YML and returns the
Metadata parsed from it or an error.
The YML is expected to be an object with a label property holding the name
of the label column and an optional attributes property with the list of
names of attribute columns.
*/
func ReadYMLMetadata(md []byte) (*Metadata, error) {
	metadata := &Metadata{}
	err := yaml.Unmarshal(md, metadata)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yml metadata")
	}
	if metadata.Label == "" {
		return nil, errors.New("metadata has no label")
	}
	return metadata, nil
}

/*
ReadYMLMetadataFromFile takes a filepath string, reads its contents and
uses ReadYMLMetadata to parse it.
*/
func ReadYMLMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading metadata yml file %s", filepath)
	}
	metadata, err := ReadYMLMetadata(md)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing metadata yml file %s", filepath)
	}
	return metadata, nil
}

/*
Columns returns the columns the metadata refers to, attributes first and
the label last, or nil when it does not list attributes.
*/
func (md *Metadata) Columns() []string {
	if len(md.Attributes) == 0 {
		return nil
	}
	return append(append([]string(nil), md.Attributes...), md.Label)
}
