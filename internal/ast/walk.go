package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	// Expressions
	case *EmptyExpr, *ValueExpr, *NameExpr, *ReferenceExpr, *VarargExpr:
		// leaves

	case *TypeExpr:
		walkType(n.Type, fn)

	case *TemplateExpr:
		walkExprs(n.Parts, fn)

	case *PrefixExpr:
		Walk(n.Operand, fn)

	case *PostfixExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *AssignExpr:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *GetIndexExpr:
		Walk(n.Target, fn)
		Walk(n.Index, fn)

	case *SetIndexExpr:
		Walk(n.Target, fn)
		Walk(n.Index, fn)
		Walk(n.Value, fn)

	case *GetMemberExpr:
		Walk(n.Target, fn)
		Walk(n.Member, fn)

	case *SetMemberExpr:
		Walk(n.Target, fn)
		Walk(n.Member, fn)
		Walk(n.Value, fn)

	case *InvokeExpr:
		Walk(n.Target, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Argument:
		if n.Named() {
			Walk(n.Name, fn)
		}
		Walk(n.Value, fn)

	case *SpreadExpr:
		Walk(n.Expr, fn)

	case *ListLiteralExpr:
		walkExprs(n.Elements, fn)

	case *ListLoopExpr:
		Walk(n.Element, fn)
		Walk(n.Count, fn)

	case *ListForExpr:
		Walk(n.Element, fn)
		for _, binding := range n.Bindings {
			Walk(binding, fn)
		}
		Walk(n.Iterable, fn)
		Walk(n.Filter, fn)

	case *LambdaExpr:
		Walk(n.Fun, fn)

	case *IfExpr:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)

	case *MatchExpr:
		Walk(n.Subject, fn)

	case *BlockExpr:
		walkExprs(n.Exprs, fn)

	case *StatementExpr:
		Walk(n.Stmt, fn)

	// Statements
	case *EmptyStmt:
		// leaf

	case *DeclareStmt:
		Walk(n.Name, fn)
		Walk(n.Type, fn)
		Walk(n.Init, fn)

	case *BlockStmt:
		walkStmts(n.Stmts, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)

	case *MatchStmt:
		Walk(n.Subject, fn)
		walkStmts(n.Branches, fn)

	case *WhileStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *UntilStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *LoopStmt:
		Walk(n.Body, fn)

	case *ForStmt:
		Walk(n.Name, fn)
		Walk(n.Iterable, fn)
		Walk(n.Body, fn)

	case *DefStmt:
		if n.ForTrait {
			Walk(n.Trait, fn)
		}
		Walk(n.Target, fn)
		for _, fun := range n.Funs {
			Walk(fun, fn)
		}

	case *FunStmt:
		if !n.Name.IsNone() {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Return, fn)
		Walk(n.Body, fn)

	case *Param:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	case *StructStmt:
		Walk(n.Name, fn)
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *EnumStmt:
		Walk(n.Name, fn)
		for _, variant := range n.Variants {
			Walk(variant, fn)
		}

	case *SingleVariant:
		Walk(n.Name, fn)

	case *TypedVariant:
		Walk(n.Name, fn)
		for _, typ := range n.Types {
			Walk(typ, fn)
		}

	case *BreakStmt:
		if !n.Label.IsNone() {
			Walk(n.Label, fn)
		}
		Walk(n.Value, fn)

	case *ContinueStmt:
		if !n.Label.IsNone() {
			Walk(n.Label, fn)
		}

	case *ReturnStmt:
		Walk(n.Value, fn)

	case *ExpressionStmt:
		Walk(n.Expr, fn)
	}
}

// walkType visits the expressions embedded in a data type: array sizes and
// struct names.
func walkType(t DataType, fn func(Node) bool) {
	switch t := t.(type) {
	case RangeType:
		walkType(t.Elem, fn)
	case ArrayType:
		walkType(t.Elem, fn)
		Walk(t.Size, fn)
	case StructType:
		Walk(t.Name, fn)
	case FunType:
		for _, p := range t.Params {
			walkType(p, fn)
		}
		walkType(t.Return, fn)
	case VarargType:
		walkType(t.Elem, fn)
	}
}

func walkExprs(exprs []Expr, fn func(Node) bool) {
	for _, e := range exprs {
		Walk(e, fn)
	}
}

func walkStmts(stmts []Stmt, fn func(Node) bool) {
	for _, s := range stmts {
		Walk(s, fn)
	}
}
