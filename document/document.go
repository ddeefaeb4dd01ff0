// Package document defines the interchange envelope for renderable content:
// a titled, attributed tree of block nodes, with a JSON codec that preserves
// the declared order of inline style annotations across round trips.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/inline"
	"github.com/goliatone/go-richtext/internal/identity"
)

// ErrNilDocument indicates an operation on a nil document.
var ErrNilDocument = errors.New("document: document is nil")

// Document is one renderable unit: a title, free-form metadata destined for
// front matter, and the block tree. Construct once, treat as immutable.
type Document struct {
	ID       uuid.UUID
	Title    string
	Metadata map[string]any
	Blocks   []*blocks.Node
}

// New builds a document with a deterministic identifier derived from the
// title.
func New(title string, nodes ...*blocks.Node) *Document {
	return &Document{
		ID:     identity.DocumentUUID(title),
		Title:  title,
		Blocks: nodes,
	}
}

type envelope struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title"`
	Metadata map[string]any  `json:"metadata,omitempty"`
	Blocks   []*nodeEnvelope `json:"blocks"`
}

type nodeEnvelope struct {
	ID       string          `json:"id,omitempty"`
	Type     string          `json:"type"`
	Text     []runEnvelope   `json:"text,omitempty"`
	Attrs    map[string]any  `json:"attrs,omitempty"`
	Children []*nodeEnvelope `json:"children,omitempty"`
}

type runEnvelope struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
	// Styles stay an ordered array on the wire: the renderer's tie-break
	// between equally long spans follows declaration order, which a JSON
	// object could not preserve.
	Styles []styleEnvelope `json:"styles,omitempty"`
}

type styleEnvelope struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Decode validates raw JSON against the document schema and builds the
// document tree. Nodes without explicit identifiers get deterministic ones
// derived from the document ID and their position path.
func Decode(data []byte) (*Document, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}

	docID, err := parseID(env.ID)
	if err != nil {
		return nil, err
	}
	if docID == uuid.Nil {
		docID = identity.DocumentUUID(env.Title)
	}

	nodes, err := decodeNodes(env.Blocks, docID, nil)
	if err != nil {
		return nil, err
	}

	return &Document{
		ID:       docID,
		Title:    env.Title,
		Metadata: env.Metadata,
		Blocks:   nodes,
	}, nil
}

// Encode serialises the document back into its JSON envelope.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	env := envelope{
		Title:    doc.Title,
		Metadata: doc.Metadata,
		Blocks:   encodeNodes(doc.Blocks),
	}
	if doc.ID != uuid.Nil {
		env.ID = doc.ID.String()
	}
	if env.Blocks == nil {
		env.Blocks = []*nodeEnvelope{}
	}

	return json.MarshalIndent(env, "", "  ")
}

func decodeNodes(envs []*nodeEnvelope, docID uuid.UUID, path []int) ([]*blocks.Node, error) {
	nodes := make([]*blocks.Node, 0, len(envs))
	for i, env := range envs {
		if env == nil {
			continue
		}
		childPath := append(append([]int(nil), path...), i)

		id, err := parseID(env.ID)
		if err != nil {
			return nil, err
		}
		if id == uuid.Nil {
			id = identity.NodeUUID(docID, childPath)
		}

		children, err := decodeNodes(env.Children, docID, childPath)
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, &blocks.Node{
			ID:       id,
			Type:     env.Type,
			Text:     decodeRuns(env.Text),
			Attrs:    env.Attrs,
			Children: children,
		})
	}
	return nodes, nil
}

func decodeRuns(envs []runEnvelope) []inline.Run {
	if len(envs) == 0 {
		return nil
	}
	runs := make([]inline.Run, 0, len(envs))
	for _, env := range envs {
		runType := env.Type
		if runType == "" {
			runType = inline.RunTypeText
		}
		styles := make([]inline.Style, 0, len(env.Styles))
		for _, style := range env.Styles {
			styles = append(styles, inline.Style{Kind: style.Kind, Value: style.Value})
		}
		runs = append(runs, inline.Run{Type: runType, Text: env.Text, Styles: styles})
	}
	return runs
}

func encodeNodes(nodes []*blocks.Node) []*nodeEnvelope {
	if len(nodes) == 0 {
		return nil
	}
	envs := make([]*nodeEnvelope, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		env := &nodeEnvelope{
			Type:     node.Type,
			Attrs:    node.Attrs,
			Children: encodeNodes(node.Children),
		}
		if node.ID != uuid.Nil {
			env.ID = node.ID.String()
		}
		for _, run := range node.Text {
			runEnv := runEnvelope{Type: run.Type, Text: run.Text}
			if runEnv.Type == inline.RunTypeText {
				runEnv.Type = ""
			}
			for _, style := range run.Styles {
				runEnv.Styles = append(runEnv.Styles, styleEnvelope{Kind: style.Kind, Value: style.Value})
			}
			env.Text = append(env.Text, runEnv)
		}
		envs = append(envs, env)
	}
	return envs
}

func parseID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("document: invalid id %q: %w", value, err)
	}
	return id, nil
}
