package bio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/pkg/errors"
)

type jsonTree struct {
	Label     *string      `json:"label,omitempty"`
	Attribute string       `json:"attribute,omitempty"`
	Branches  []jsonBranch `json:"branches,omitempty"`
}

type jsonBranch struct {
	Value   string    `json:"value"`
	Subtree *jsonTree `json:"subtree"`
}

/*
MarshalTree returns a slice of bytes with the tree serialized to JSON. A
tree is serialized recursively:
  - a leaf as an object with a "label" property
  - an internal node as an object with an "attribute" property and a
    "branches" array of objects with the "value" of the attribute and the
    "subtree" for it, in the order of the tree branches
*/
func MarshalTree(t id3.Tree) ([]byte, error) {
	jt, err := toJSONTree(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jt)
}

/*
UnmarshalTree takes a slice of bytes with a tree serialized by MarshalTree
and returns the tree.
*/
func UnmarshalTree(b []byte) (id3.Tree, error) {
	jt := &jsonTree{}
	if err := json.Unmarshal(b, jt); err != nil {
		return nil, errors.Wrap(err, "decoding json tree")
	}
	return jt.tree()
}

/*
WriteJSONTree takes an io.Writer and a tree and prints a JSON
representation of the tree onto the writer.
*/
func WriteJSONTree(w io.Writer, t id3.Tree) error {
	jt, err := toJSONTree(t)
	if err != nil {
		return err
	}
	err = json.NewEncoder(w).Encode(jt)
	if err != nil {
		return errors.Wrap(err, "serializing tree as JSON")
	}
	return nil
}

/*
WriteJSONTreeToFile creates a file on the given filepath (STDOUT when
empty) and writes the JSON representation of the tree onto it.
*/
func WriteJSONTreeToFile(filepath string, t id3.Tree) error {
	if filepath == "" {
		return WriteJSONTree(os.Stdout, t)
	}
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrap(err, "creating tree file")
	}
	defer f.Close()
	return WriteJSONTree(f, t)
}

/*
ReadJSONTree takes an io.Reader and attempts to JSON-decode a tree from it.
*/
func ReadJSONTree(r io.Reader) (id3.Tree, error) {
	jt := &jsonTree{}
	if err := json.NewDecoder(r).Decode(jt); err != nil {
		return nil, errors.Wrap(err, "decoding json tree")
	}
	return jt.tree()
}

// ReadJSONTreeFromFile opens the file on the given filepath and reads a tree from it.
func ReadJSONTreeFromFile(filepath string) (id3.Tree, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "opening tree file")
	}
	defer f.Close()
	t, err := ReadJSONTree(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading tree file %s", filepath)
	}
	return t, nil
}

func toJSONTree(t id3.Tree) (*jsonTree, error) {
	switch t := t.(type) {
	case *id3.Leaf:
		label := t.Label
		return &jsonTree{Label: &label}, nil
	case *id3.Internal:
		jt := &jsonTree{Attribute: t.Attribute, Branches: make([]jsonBranch, 0, len(t.Branches))}
		for _, b := range t.Branches {
			st, err := toJSONTree(b.Subtree)
			if err != nil {
				return nil, err
			}
			jt.Branches = append(jt.Branches, jsonBranch{Value: b.Value, Subtree: st})
		}
		return jt, nil
	}
	return nil, errors.Errorf("cannot serialize tree of type %T", t)
}

func (jt *jsonTree) tree() (id3.Tree, error) {
	if jt == nil {
		return nil, errors.New("decoding json tree: missing subtree")
	}
	if jt.Label != nil {
		if jt.Attribute != "" || len(jt.Branches) > 0 {
			return nil, errors.New("decoding json tree: node has both a label and branches")
		}
		return &id3.Leaf{Label: *jt.Label}, nil
	}
	if jt.Attribute == "" {
		return nil, errors.New("decoding json tree: node has neither label nor attribute")
	}
	n := &id3.Internal{Attribute: jt.Attribute, Branches: make([]id3.Branch, 0, len(jt.Branches))}
	for _, b := range jt.Branches {
		st, err := b.Subtree.tree()
		if err != nil {
			return nil, err
		}
		n.Branches = append(n.Branches, id3.Branch{Value: b.Value, Subtree: st})
	}
	return n, nil
}
