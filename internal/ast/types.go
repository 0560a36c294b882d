package ast

import (
	"fmt"
	"strings"

	"github.com/hyper-lang/hyper/internal/lexer"
)

// DataType is the closed family of type annotations.
type DataType interface {
	fmt.Stringer
	dataType()
}

// InferredType marks a missing annotation; the type is left to later stages.
type InferredType struct{}

func (InferredType) String() string { return "_" }

func (InferredType) dataType() {}

// PrimitiveType is a built-in type such as i32 or str.
type PrimitiveType struct {
	Kind lexer.Primitive
}

func (t PrimitiveType) String() string { return t.Kind.String() }

func (PrimitiveType) dataType() {}

// RangeType is written T.. and is only valid over signed integers or char.
type RangeType struct {
	Elem DataType
}

func (t RangeType) String() string { return t.Elem.String() + ".." }

func (RangeType) dataType() {}

// Unsized is the size of an array type written without a length.
const Unsized = -1

// ArrayType is an array of Elem. Size is an expression; the value Unsized
// means no length was written. For multi-dimensional arrays the outermost
// dimension is the first one written.
type ArrayType struct {
	Elem DataType
	Size Expr
}

// Sized reports whether a length was written.
func (t ArrayType) Sized() bool {
	v, ok := t.Size.(*ValueExpr)
	return !ok || v.Value != Unsized
}

// String prints the dimensions in source order, outermost first.
func (t ArrayType) String() string {
	var dims strings.Builder
	var elem DataType = t
	for {
		arr, ok := elem.(ArrayType)
		if !ok {
			break
		}
		dims.WriteString("[" + arr.sizeString() + "]")
		elem = arr.Elem
	}
	return elem.String() + dims.String()
}

func (t ArrayType) sizeString() string {
	if !t.Sized() {
		return ""
	}
	if v, ok := t.Size.(*ValueExpr); ok {
		return fmt.Sprint(v.Value)
	}
	return "?"
}

func (ArrayType) dataType() {}

// StructType refers to a user-declared type by name.
type StructType struct {
	Name *NameExpr
}

func (t StructType) String() string { return t.Name.Value }

func (StructType) dataType() {}

// FunType is the type of a function value.
type FunType struct {
	Params []DataType
	Return DataType
}

func (t FunType) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("(%s -> %s)", strings.Join(params, ", "), t.Return)
}

func (FunType) dataType() {}

// VarargType is a trailing variadic parameter type, written T*.
type VarargType struct {
	Elem DataType
}

func (t VarargType) String() string { return t.Elem.String() + "*" }

func (VarargType) dataType() {}

// Void is the return type of a function declared without one.
var Void DataType = PrimitiveType{Kind: lexer.None}
