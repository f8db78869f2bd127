// Package xmlnode builds small XML documents from nested declarations.
//
//	doc := xmlnode.Build("TrackRequest", func(n *xmlnode.Node) {
//		n.Add(xmlnode.New("Value", "123456789012"))
//		n.Add(xmlnode.New("IncludeDetailedScans", 1))
//	}, xmlnode.Attr{Key: "xmlns", Value: "http://fedex.com/ws/track/v3"})
//
// The tree and the escaping are handled by etree; this package only fixes
// how scalar values are rendered.
package xmlnode

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// TimeLayout is the textual form of time.Time content.
const TimeLayout = time.RFC3339

// Attr is a single attribute. Attributes are written in the order given,
// which keeps namespace declarations where carriers expect them.
type Attr struct {
	Key   string
	Value string
}

// Node is an element under construction.
type Node struct {
	el *etree.Element
}

// New returns an element whose text content is value rendered by Format.
// A nil value produces an empty element.
func New(name string, value any, attrs ...Attr) *Node {
	n := newNode(name, attrs)
	if value != nil {
		n.el.SetText(Format(value))
	}
	return n
}

// Build returns an element whose children are appended by fn, in call order.
func Build(name string, fn func(*Node), attrs ...Attr) *Node {
	n := newNode(name, attrs)
	if fn != nil {
		fn(n)
	}
	return n
}

func newNode(name string, attrs []Attr) *Node {
	el := etree.NewElement(name)
	for _, a := range attrs {
		el.CreateAttr(a.Key, a.Value)
	}
	return &Node{el: el}
}

// Add appends children to n and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.el.AddChild(c.el)
	}
	return n
}

// Name returns the element's tag, including any prefix.
func (n *Node) Name() string { return n.el.FullTag() }

// String serializes n and its subtree without an XML declaration.
func (n *Node) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(n.el.Copy())

	var sb strings.Builder
	// strings.Builder writes never fail
	_, _ = doc.WriteTo(&sb)
	return sb.String()
}

// Format renders a scalar the way carrier schemas expect it.
func Format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(TimeLayout)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
