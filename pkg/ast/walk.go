package ast

// Inspect traverses the tree rooted at node in depth-first order, calling fn
// for each node. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Body {
			Inspect(stmt, fn)
		}
	case *VarDeclaration:
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *BinaryExpr:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *AssignmentExpr:
		Inspect(n.Assignee, fn)
		Inspect(n.Value, fn)
	case *ObjectLiteral:
		for _, prop := range n.Properties {
			Inspect(prop, fn)
		}
	case *Property:
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *ListLiteral:
		for _, item := range n.Items {
			Inspect(item, fn)
		}
	case *MemberExpr:
		Inspect(n.Object, fn)
		Inspect(n.Property, fn)
	case *CallExpr:
		Inspect(n.Caller, fn)
		for _, arg := range n.Args {
			Inspect(arg, fn)
		}
	}
}

// ClearSpans resets the span of every node in the tree.
func ClearSpans(node Node) {
	Inspect(node, func(n Node) bool {
		SetSpan(n, ZeroSpan())
		return true
	})
}
