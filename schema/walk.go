package schema

// Walk visits n and every schema nested inside it in pre-order: object
// properties in sorted order, then additionalProperties, array items,
// combinator members in order and the operand of not. If visit returns false
// the children of that node are skipped. References are not followed.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, child := range children(n) {
		Walk(child, visit)
	}
}

func children(n Node) []Node {
	switch n := n.(type) {
	case ObjectNode:
		var out []Node
		for _, name := range n.object.PropertyNames() {
			out = append(out, n.object.properties[name])
		}
		if ap := n.object.additionalProperties; ap != nil && ap.schema != nil {
			out = append(out, ap.schema)
		}
		return out
	case ArrayNode:
		if n.array.items != nil {
			return []Node{n.array.items}
		}
	case AllOfNode:
		return n.schemas
	case OneOfNode:
		return n.schemas
	case AnyOfNode:
		return n.schemas
	case NotNode:
		return []Node{n.schema}
	case BooleanNode, NumberNode, IntegerNode, StringNode, ReferenceNode:
	}
	return nil
}

// References returns every reference reachable from n without following
// references, in walk order. Duplicates are kept.
func References(n Node) []SchemaRef {
	var refs []SchemaRef
	Walk(n, func(n Node) bool {
		if ref, ok := n.(ReferenceNode); ok {
			refs = append(refs, ref.ref)
		}
		return true
	})
	return refs
}
