package geotrack

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	gpxNamespace    = "http://www.topografix.com/GPX/1/1"
	gpxtpxNamespace = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"

	// Space reported by encoding/xml for an undeclared gpxtpx prefix.
	gpxtpxPrefix = "gpxtpx"
)

// element is a node of the parsed document tree. Only the element's own character data is
// kept in text, character data of children is not included.
type element struct {
	name     xml.Name
	attrs    []xml.Attr
	text     strings.Builder
	children []*element
}

func (e *element) attr(local string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child with the given name.
func (e *element) child(match func(xml.Name) bool) *element {
	for _, c := range e.children {
		if match(c.name) {
			return c
		}
	}
	return nil
}

// path follows a chain of direct children, returning nil as soon as one step is missing.
func (e *element) path(steps ...func(xml.Name) bool) *element {
	curr := e
	for _, step := range steps {
		curr = curr.child(step)
		if curr == nil {
			return nil
		}
	}
	return curr
}

// descendants collects every element below e matching the name, in document order.
func (e *element) descendants(match func(xml.Name) bool) []*element {
	var found []*element

	var walk func(*element)
	walk = func(n *element) {
		for _, c := range n.children {
			if match(c.name) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(e)

	return found
}

func (e *element) textContent() string {
	return strings.TrimSpace(e.text.String())
}

// gpxName matches elements of the GPX 1.1 namespace. Documents without a namespace
// declaration are accepted too.
func gpxName(local string) func(xml.Name) bool {
	return func(n xml.Name) bool {
		return n.Local == local && (n.Space == gpxNamespace || n.Space == "")
	}
}

func gpxtpxName(local string) func(xml.Name) bool {
	return func(n xml.Name) bool {
		return n.Local == local && (n.Space == gpxtpxNamespace || n.Space == gpxtpxPrefix)
	}
}

// parseDocument reads a well-formed XML document and returns its root element.
func parseDocument(r io.Reader) (*element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *element
		stack []*element
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("%w: junk after document element <%s>", ErrParse, t.Name.Local)
			}

			e := &element{name: t.Name, attrs: t.Copy().Attr}
			if len(stack) == 0 {
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside document element", ErrParse)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrParse)
	}

	return root, nil
}
