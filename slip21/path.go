package slip21

import (
	"strconv"
	"strings"
)

const (
	pathRoot      = "m"
	pathSeparator = "/"
)

// Path is a sequence of labels below a master node, written as
// "m/SLIP-0021/Master encryption key".
type Path []string

// ParsePath parses the textual form of a derivation path. The path must start
// with "m". Labels are taken verbatim, so they may contain spaces but not "/".
func ParsePath(path string) (Path, error) {
	parts := strings.Split(path, pathSeparator)
	if parts[0] != pathRoot {
		return nil, &PathError{Path: path, Reason: "must start with " + pathRoot}
	}
	labels := parts[1:]
	for i, label := range labels {
		if label == "" {
			return nil, &PathError{Path: path, Reason: "empty label at position " + strconv.Itoa(i+1)}
		}
	}
	return Path(labels), nil
}

// Labels returns the path as byte labels suitable for Node.Derive.
func (p Path) Labels() [][]byte {
	labels := make([][]byte, len(p))
	for i, label := range p {
		labels[i] = []byte(label)
	}
	return labels
}

func (p Path) String() string {
	return strings.Join(append([]string{pathRoot}, p...), pathSeparator)
}

// DerivePath derives the descendant of n at p.
func (n Node) DerivePath(p Path) Node {
	for _, label := range p {
		n = n.DeriveChild([]byte(label))
	}
	return n
}

// DeriveForPath derives the node at path from seed.
func DeriveForPath(path string, seed []byte) (Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return Node{}, err
	}
	return NewMaster(seed).DerivePath(p), nil
}
