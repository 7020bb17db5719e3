package patricia

import (
	"fmt"
	"strconv"
	"strings"
)

func debugKeyString[K any](key K) string {
	return strconv.Quote(toStringOrDefault(key))
}

func toStringOrDefault[K any](key K) string {
	if s, ok := any(key).(interface{ String() string }); ok {
		return s.String()
	}
	if s, ok := any(key).(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// String lists every entry in ascending key order, one "key=value" pair per
// line.
func (t *Trie[K, V]) String() string {
	var b strings.Builder
	for n := t.firstEntry(); n != nil; n = t.nextEntry(n) {
		b.WriteString(debugKeyString(n.key))
		b.WriteByte('=')
		b.WriteString(toStringOrDefault(n.value))
		b.WriteByte('\n')
	}
	return b.String()
}

// TreeString renders the node graph itself: one line per node, indented by
// two spaces per level of downlink depth. A node that holds
// a key/value pair ("added") is marked with '*'; a pure branch point
// ("junction") is marked with 'o'. When withJunctions is false, junction
// nodes are skipped in the rendering — their added descendants are still
// printed, just without their own line — matching the distinction the
// original node lifecycle draws between "added" and "junction" nodes.
func (t *Trie[K, V]) TreeString(withJunctions bool) string {
	var b strings.Builder
	if !t.root.isEmpty() || withJunctions {
		writeTreeNode(&b, t.root, 0, withJunctions)
	}
	writeTreeChildren(&b, t.root, 0, withJunctions)
	return b.String()
}

func writeTreeNode[K any, V any](b *strings.Builder, n *node[K, V], depth int, withJunctions bool) {
	if n.isEmpty() && !withJunctions {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	if n.isEmpty() {
		b.WriteString("o ")
	} else {
		b.WriteString("* ")
	}
	b.WriteString(debugKeyString(n.key))
	if !n.isEmpty() {
		b.WriteString("=")
		b.WriteString(toStringOrDefault(n.value))
	}
	b.WriteByte('\n')
}

func writeTreeChildren[K any, V any](b *strings.Builder, n *node[K, V], depth int, withJunctions bool) {
	if n.left.bitIndex > n.bitIndex {
		writeTreeNode(b, n.left, depth+1, withJunctions)
		writeTreeChildren(b, n.left, depth+1, withJunctions)
	}
	if n.right != nil && n.right.bitIndex > n.bitIndex {
		writeTreeNode(b, n.right, depth+1, withJunctions)
		writeTreeChildren(b, n.right, depth+1, withJunctions)
	}
}
