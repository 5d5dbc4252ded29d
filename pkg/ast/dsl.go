package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value float64) *NumericLiteral {
	return NewNumericLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func List(items ...Expression) *ListLiteral {
	return NewListLiteral(items)
}

func Obj(properties ...*Property) *ObjectLiteral {
	return NewObjectLiteral(properties)
}

func Prop(key string, value Expression) *Property {
	return NewProperty(key, value)
}

// Short builds a shorthand property.
func Short(key string) *Property {
	return NewProperty(key, nil)
}

// Expression helpers.

func Bin(op string, left, right Expression) *BinaryExpr {
	return NewBinaryExpr(left, right, op)
}

func Assign(target, value Expression) *AssignmentExpr {
	return NewAssignmentExpr(target, value)
}

func Member(object Expression, name string) *MemberExpr {
	return NewMemberExpr(object, ID(name), false)
}

func Index(object, index Expression) *MemberExpr {
	return NewMemberExpr(object, index, true)
}

func Call(caller Expression, args ...Expression) *CallExpr {
	return NewCallExpr(caller, args)
}

func CallName(name string, args ...Expression) *CallExpr {
	return NewCallExpr(ID(name), args)
}

// Statement helpers.

func Let(name string, value Expression) *VarDeclaration {
	return NewVarDeclaration(false, name, value)
}

func Const(name string, value Expression) *VarDeclaration {
	return NewVarDeclaration(true, name, value)
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}
