package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout modes.
const (
	ModeRandom     = "random"
	ModeGrid       = "grid"
	ModeCircular   = "circular"
	ModeForce      = "force"
	ModeParameters = "parameters"
)

// Modes lists every layout mode in display order.
var Modes = []string{ModeRandom, ModeGrid, ModeCircular, ModeForce, ModeParameters}

// ValidMode reports whether m names a layout mode.
func ValidMode(m string) bool {
	for _, mode := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// =============================================================================
// Graph - Node-Link Serialization
// =============================================================================

// Graph is the canonical node-link format read by every command.
//
//	{
//	  "nodes": [{"id": 1, "cluster": 0, "parameters": {"perf": {"latency": 12.5}}}],
//	  "edges": [{"from": 1, "to": 2}]
//	}
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// =============================================================================
// Node
// =============================================================================

// Node is a graph vertex with its data parameters.
//
// X and Y carry an optional starting position. A node at exactly (0, 0) is
// treated as unplaced by the force layout.
type Node struct {
	ID         NodeID      `json:"id"`
	Label      string      `json:"label,omitempty"`
	Cluster    int         `json:"cluster"`
	Type       string      `json:"type,omitempty"`
	X          float64     `json:"x,omitempty"`
	Y          float64     `json:"y,omitempty"`
	Parameters *Parameters `json:"parameters,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return string(n.ID)
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a link between two nodes by external ID. Use [Graph.Resolve] to
// turn edges into array indices.
type Edge struct {
	From   NodeID  `json:"from"`
	To     NodeID  `json:"to"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// =============================================================================
// NodeID - Integer or String Identifier
// =============================================================================

// NodeID identifies a node. Data sources use integers or strings; both are
// normalized to their decimal/string form, so the JSON values 7 and "7"
// name the same node.
type NodeID string

// IntID returns the NodeID for an integer identifier.
func IntID(i int) NodeID { return NodeID(strconv.Itoa(i)) }

// UnmarshalJSON accepts a JSON string or number.
func (id *NodeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("node id: null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("node id: %w", err)
		}
		*id = NodeID(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("node id: %w", err)
	}
	*id = NodeID(num.String())
	return nil
}

// =============================================================================
// Parameters - Categorized Node Data
// =============================================================================

// Category holds the parameters of one category, in input order.
type Category = orderedmap.OrderedMap[string, Value]

// Parameters maps category names to their parameters. Categories keep the
// order they appear in the input, which decides which category wins when a
// parameter name occurs in more than one.
type Parameters = orderedmap.OrderedMap[string, *Category]

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return orderedmap.New[string, *Category]()
}

// =============================================================================
// Value - Numeric, Boolean, or Nominal Parameter
// =============================================================================

// ValueKind discriminates [Value].
type ValueKind uint8

const (
	KindMissing ValueKind = iota
	KindNumber
	KindBool
	KindNominal
)

// Value is one parameter value. Numbers and booleans are numeric for
// positioning purposes; nominal strings are not.
type Value struct {
	Kind ValueKind
	Num  float64
	Bool bool
	Str  string
}

// Number returns a numeric value.
func Number(v float64) Value { return Value{Kind: KindNumber, Num: v} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Nominal returns a categorical string value.
func Nominal(s string) Value { return Value{Kind: KindNominal, Str: s} }

// Float returns the numeric reading of v: the number itself, or 1/0 for
// booleans. Nominal and missing values report false.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindBool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// MarshalJSON writes the bare JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNominal:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reads a JSON number, boolean, string, or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case float64:
		*v = Number(x)
	case bool:
		*v = Bool(x)
	case string:
		*v = Nominal(x)
	default:
		return fmt.Errorf("parameter value: unsupported JSON type %T", raw)
	}
	return nil
}
