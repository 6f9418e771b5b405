package glow

// Restore puts the hoisted string literals back into a finished tree. String
// nodes get their literal body; Block nodes, which keep raw source text, get
// the quoted literals as they were written. Placeholders that meta does not
// know are left alone.
func Restore(node Node, meta *SourceMeta) {
	if node == nil || meta == nil || meta.Len() == 0 {
		return
	}
	raw := meta.rawReplacer()
	walk(node, func(n Node) {
		switch n := n.(type) {
		case *String:
			if body, ok := meta.Lookup(n.Value); ok {
				n.Value = body
			}
		case *Block:
			n.Source = raw.Replace(n.Source)
		}
	})
}

// walk visits node and everything below it, parents first.
func walk(node Node, visit func(Node)) {
	visit(node)
	for _, child := range node.Children() {
		walk(child, visit)
	}
}
