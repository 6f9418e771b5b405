package glow

// FlattenCommas turns a chain of comma productions into one group holding the
// non-comma nodes from left to right. Any other node becomes a group of one.
func FlattenCommas(node Node) *NodeGroup {
	group := NewNodeGroup(nil)
	flattenCommas(node, group)
	return group
}

func flattenCommas(node Node, group *NodeGroup) {
	if comma, ok := node.(*CommaOp); ok {
		flattenCommas(comma.A, group)
		flattenCommas(comma.B, group)
		return
	}
	group.Nodes = append(group.Nodes, node)
}
