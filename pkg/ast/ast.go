package ast

import "quill/interpreter-go/pkg/source"

type NodeType string

const (
	NodeProgram        NodeType = "Program"
	NodeVarDeclaration NodeType = "VarDeclaration"
	NodeIdentifier     NodeType = "Identifier"
	NodeNumericLiteral NodeType = "NumericLiteral"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeBinaryExpr     NodeType = "BinaryExpr"
	NodeAssignmentExpr NodeType = "AssignmentExpr"
	NodeObjectLiteral  NodeType = "ObjectLiteral"
	NodeProperty       NodeType = "Property"
	NodeListLiteral    NodeType = "ListLiteral"
	NodeMemberExpr     NodeType = "MemberExpr"
	NodeCallExpr       NodeType = "CallExpr"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

// Span covers the source text a node was parsed from.
type Span struct {
	Start source.Position `json:"start"`
	End   source.Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"kind"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Program is the root of every parse.

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Statements

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Constant   bool       `json:"constant"`
	Identifier string     `json:"identifier"`
	Value      Expression `json:"value,omitempty"`
}

func NewVarDeclaration(constant bool, identifier string, value Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Constant: constant, Identifier: identifier, Value: value}
}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Symbol string `json:"symbol"`
}

func NewIdentifier(symbol string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Symbol: symbol}
}

type NumericLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewNumericLiteral(value float64) *NumericLiteral {
	return &NumericLiteral{nodeImpl: newNodeImpl(NodeNumericLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BinaryExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
	Operator string     `json:"operator"`
}

func NewBinaryExpr(left, right Expression, operator string) *BinaryExpr {
	return &BinaryExpr{nodeImpl: newNodeImpl(NodeBinaryExpr), Left: left, Right: right, Operator: operator}
}

// AssignmentExpr accepts any expression as its assignee; whether it names an
// assignable place is decided during evaluation.
type AssignmentExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Assignee Expression `json:"assignee"`
	Value    Expression `json:"value"`
}

func NewAssignmentExpr(assignee, value Expression) *AssignmentExpr {
	return &AssignmentExpr{nodeImpl: newNodeImpl(NodeAssignmentExpr), Assignee: assignee, Value: value}
}

// Property is one object literal entry. A nil Value marks shorthand: the key
// doubles as the name of the variable holding the value.
type Property struct {
	nodeImpl

	Key   string     `json:"key"`
	Value Expression `json:"value,omitempty"`
}

func NewProperty(key string, value Expression) *Property {
	return &Property{nodeImpl: newNodeImpl(NodeProperty), Key: key, Value: value}
}

// IsShorthand reports whether the property was written as a bare key.
func (p *Property) IsShorthand() bool {
	return p.Value == nil
}

type ObjectLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Properties []*Property `json:"properties"`
}

func NewObjectLiteral(properties []*Property) *ObjectLiteral {
	if properties == nil {
		properties = []*Property{}
	}
	return &ObjectLiteral{nodeImpl: newNodeImpl(NodeObjectLiteral), Properties: properties}
}

type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Items []Expression `json:"items"`
}

func NewListLiteral(items []Expression) *ListLiteral {
	if items == nil {
		items = []Expression{}
	}
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Items: items}
}

// MemberExpr is `object.property` (Computed false, Property is an
// Identifier) or `object[property]` (Computed true).
type MemberExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object   Expression `json:"object"`
	Property Expression `json:"property"`
	Computed bool       `json:"computed"`
}

func NewMemberExpr(object, property Expression, computed bool) *MemberExpr {
	return &MemberExpr{nodeImpl: newNodeImpl(NodeMemberExpr), Object: object, Property: property, Computed: computed}
}

type CallExpr struct {
	nodeImpl
	expressionMarker
	statementMarker

	Caller Expression   `json:"caller"`
	Args   []Expression `json:"args"`
}

func NewCallExpr(caller Expression, args []Expression) *CallExpr {
	if args == nil {
		args = []Expression{}
	}
	return &CallExpr{nodeImpl: newNodeImpl(NodeCallExpr), Caller: caller, Args: args}
}
