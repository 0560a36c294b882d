package ast

// CloneExpr returns a deep copy of e. The copy shares no node with e, so it
// can be placed elsewhere in the same tree.
func CloneExpr(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil

	case *EmptyExpr:
		c := *n
		return &c

	case *ValueExpr:
		c := *n
		return &c

	case *NameExpr:
		return cloneName(n)

	case *ReferenceExpr:
		c := *n
		return &c

	case *VarargExpr:
		c := *n
		return &c

	case *TypeExpr:
		return cloneTypeExpr(n)

	case *TemplateExpr:
		c := *n
		c.Parts = cloneExprs(n.Parts)
		return &c

	case *PrefixExpr:
		c := *n
		c.Operand = CloneExpr(n.Operand)
		return &c

	case *PostfixExpr:
		c := *n
		c.Operand = CloneExpr(n.Operand)
		return &c

	case *BinaryExpr:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c

	case *AssignExpr:
		c := *n
		c.Target = cloneName(n.Target)
		c.Value = CloneExpr(n.Value)
		return &c

	case *GetIndexExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Index = CloneExpr(n.Index)
		return &c

	case *SetIndexExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Index = CloneExpr(n.Index)
		c.Value = CloneExpr(n.Value)
		return &c

	case *GetMemberExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Member = cloneName(n.Member)
		return &c

	case *SetMemberExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Member = cloneName(n.Member)
		c.Value = CloneExpr(n.Value)
		return &c

	case *InvokeExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		if n.Args != nil {
			c.Args = make([]*Argument, len(n.Args))
			for i, arg := range n.Args {
				a := *arg
				a.Name = cloneName(arg.Name)
				a.Value = CloneExpr(arg.Value)
				c.Args[i] = &a
			}
		}
		return &c

	case *SpreadExpr:
		c := *n
		c.Expr = CloneExpr(n.Expr)
		return &c

	case *ListLiteralExpr:
		c := *n
		c.Elements = cloneExprs(n.Elements)
		return &c

	case *ListLoopExpr:
		c := *n
		c.Element = CloneExpr(n.Element)
		c.Count = CloneExpr(n.Count)
		return &c

	case *ListForExpr:
		c := *n
		c.Element = CloneExpr(n.Element)
		c.Bindings = cloneNames(n.Bindings)
		c.Iterable = CloneExpr(n.Iterable)
		c.Filter = CloneExpr(n.Filter)
		return &c

	case *LambdaExpr:
		c := *n
		c.Fun = cloneFun(n.Fun)
		return &c

	case *IfExpr:
		c := *n
		c.Cond = CloneExpr(n.Cond)
		if n.Then != nil {
			c.Then = CloneExpr(n.Then).(*BlockExpr)
		}
		c.Else = CloneExpr(n.Else)
		return &c

	case *MatchExpr:
		c := *n
		c.Subject = CloneExpr(n.Subject)
		return &c

	case *BlockExpr:
		c := *n
		c.Exprs = cloneExprs(n.Exprs)
		return &c

	case *StatementExpr:
		c := *n
		c.Stmt = CloneStmt(n.Stmt)
		return &c

	default:
		panic("ast: CloneExpr of unknown expression")
	}
}

// CloneStmt returns a deep copy of s.
func CloneStmt(s Stmt) Stmt {
	switch n := s.(type) {
	case nil:
		return nil

	case *EmptyStmt:
		c := *n
		return &c

	case *DeclareStmt:
		c := *n
		c.Name = cloneName(n.Name)
		c.Type = cloneTypeExpr(n.Type)
		c.Init = CloneExpr(n.Init)
		return &c

	case *BlockStmt:
		return cloneBlock(n)

	case *IfStmt:
		c := *n
		c.Cond = CloneExpr(n.Cond)
		c.Then = cloneBlock(n.Then)
		c.Else = CloneStmt(n.Else)
		return &c

	case *MatchStmt:
		c := *n
		c.Subject = CloneExpr(n.Subject)
		c.Branches = cloneStmts(n.Branches)
		return &c

	case *WhileStmt:
		c := *n
		c.Cond = CloneExpr(n.Cond)
		c.Body = cloneBlock(n.Body)
		return &c

	case *UntilStmt:
		c := *n
		c.Cond = CloneExpr(n.Cond)
		c.Body = cloneBlock(n.Body)
		return &c

	case *LoopStmt:
		c := *n
		c.Body = cloneBlock(n.Body)
		return &c

	case *ForStmt:
		c := *n
		c.Name = cloneName(n.Name)
		c.Iterable = CloneExpr(n.Iterable)
		c.Body = cloneBlock(n.Body)
		return &c

	case *DefStmt:
		c := *n
		c.Trait = cloneName(n.Trait)
		c.Target = cloneName(n.Target)
		if n.Funs != nil {
			c.Funs = make([]*FunStmt, len(n.Funs))
			for i, fun := range n.Funs {
				c.Funs[i] = cloneFun(fun)
			}
		}
		return &c

	case *FunStmt:
		return cloneFun(n)

	case *StructStmt:
		c := *n
		c.Name = cloneName(n.Name)
		c.Fields = cloneParams(n.Fields)
		return &c

	case *EnumStmt:
		c := *n
		c.Name = cloneName(n.Name)
		if n.Variants != nil {
			c.Variants = make([]Variant, len(n.Variants))
			for i, variant := range n.Variants {
				c.Variants[i] = cloneVariant(variant)
			}
		}
		return &c

	case *BreakStmt:
		c := *n
		c.Label = cloneName(n.Label)
		c.Value = CloneExpr(n.Value)
		return &c

	case *ContinueStmt:
		c := *n
		c.Label = cloneName(n.Label)
		return &c

	case *ReturnStmt:
		c := *n
		c.Value = CloneExpr(n.Value)
		return &c

	case *ExpressionStmt:
		c := *n
		c.Expr = CloneExpr(n.Expr)
		return &c

	default:
		panic("ast: CloneStmt of unknown statement")
	}
}

// CloneType copies the expressions embedded in t. The type values themselves
// are immutable structs and are copied by assignment.
func CloneType(t DataType) DataType {
	switch t := t.(type) {
	case RangeType:
		t.Elem = CloneType(t.Elem)
		return t
	case ArrayType:
		t.Elem = CloneType(t.Elem)
		t.Size = CloneExpr(t.Size)
		return t
	case StructType:
		t.Name = cloneName(t.Name)
		return t
	case FunType:
		if t.Params != nil {
			params := make([]DataType, len(t.Params))
			for i, p := range t.Params {
				params[i] = CloneType(p)
			}
			t.Params = params
		}
		t.Return = CloneType(t.Return)
		return t
	case VarargType:
		t.Elem = CloneType(t.Elem)
		return t
	default:
		return t
	}
}

func cloneName(n *NameExpr) *NameExpr {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func cloneNames(names []*NameExpr) []*NameExpr {
	if names == nil {
		return nil
	}
	out := make([]*NameExpr, len(names))
	for i, n := range names {
		out[i] = cloneName(n)
	}
	return out
}

func cloneTypeExpr(n *TypeExpr) *TypeExpr {
	if n == nil {
		return nil
	}
	c := *n
	c.Type = CloneType(n.Type)
	return &c
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(e)
	}
	return out
}

func cloneStmts(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(s)
	}
	return out
}

func cloneBlock(n *BlockStmt) *BlockStmt {
	if n == nil {
		return nil
	}
	c := *n
	c.Stmts = cloneStmts(n.Stmts)
	return &c
}

func cloneParams(params []*Param) []*Param {
	if params == nil {
		return nil
	}
	out := make([]*Param, len(params))
	for i, p := range params {
		c := *p
		c.Name = cloneName(p.Name)
		c.Type = cloneTypeExpr(p.Type)
		out[i] = &c
	}
	return out
}

func cloneFun(n *FunStmt) *FunStmt {
	if n == nil {
		return nil
	}
	c := *n
	c.Name = cloneName(n.Name)
	c.Params = cloneParams(n.Params)
	c.Return = cloneTypeExpr(n.Return)
	c.Body = CloneStmt(n.Body)
	return &c
}

func cloneVariant(v Variant) Variant {
	switch v := v.(type) {
	case *SingleVariant:
		c := *v
		c.Name = cloneName(v.Name)
		return &c
	case *TypedVariant:
		c := *v
		c.Name = cloneName(v.Name)
		if v.Types != nil {
			c.Types = make([]*TypeExpr, len(v.Types))
			for i, t := range v.Types {
				c.Types[i] = cloneTypeExpr(t)
			}
		}
		return &c
	default:
		panic("ast: clone of unknown variant")
	}
}
