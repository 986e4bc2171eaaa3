package holyc

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders an AST as an indented, parenthesized textual form, for the
// -o output of cmd/holycc and for cmd/holycdump's interactive dump REPL.
// It is a debugging aid, not a serialization format: there is no
// corresponding parser for it.
func Dump(n *Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	indent(sb, depth)
	if n == nil {
		sb.WriteString("<nil>\n")
		return
	}

	switch n.Kind {
	case NodeLiteral:
		fmt.Fprintf(sb, "Literal %s %s %q\n", n.Literal.Kind, n.Pos, n.Literal.Value)
	case NodeBinaryOp:
		fmt.Fprintf(sb, "BinaryOp %s %s\n", n.Op.Kind, n.Pos)
		dumpNode(sb, n.Left, depth+1)
		dumpNode(sb, n.Right, depth+1)
	case NodeUnaryOp:
		fmt.Fprintf(sb, "UnaryOp %s %s\n", n.Op.Kind, n.Pos)
		dumpNode(sb, n.Left, depth+1)
	case NodeVarAccess:
		fmt.Fprintf(sb, "VarAccess %s %q\n", n.Pos, n.Ident.Value)
	case NodeArrayAccess:
		fmt.Fprintf(sb, "ArrayAccess %s\n", n.Pos)
		dumpNode(sb, n.Left, depth+1)
		dumpNode(sb, n.Right, depth+1)
	case NodeMemberAccess:
		fmt.Fprintf(sb, "MemberAccess %s %s %q\n", n.Pos, n.Op.Kind, n.Ident.Value)
		dumpNode(sb, n.Left, depth+1)
	case NodeCall:
		fmt.Fprintf(sb, "Call %s\n", n.Pos)
		dumpNode(sb, n.Left, depth+1)
		for _, a := range n.Args {
			dumpNode(sb, a, depth+1)
		}
	case NodeVarDecl:
		fmt.Fprintf(sb, "VarDecl %s %q %s\n", n.Pos, n.Ident.Value, dumpType(n.Type))
		if n.Init != nil {
			dumpNode(sb, n.Init, depth+1)
		}
	case NodeFuncDecl:
		fmt.Fprintf(sb, "FuncDecl %s %q %s\n", n.Pos, n.Ident.Value, dumpType(n.Type))
		dumpNode(sb, n.Body, depth+1)
	case NodeIf:
		fmt.Fprintf(sb, "If %s\n", n.Pos)
		for i := range n.Conditions {
			indent(sb, depth+1)
			sb.WriteString("cond:\n")
			dumpNode(sb, n.Conditions[i], depth+2)
			indent(sb, depth+1)
			sb.WriteString("body:\n")
			dumpNode(sb, n.Bodies[i], depth+2)
		}
		if n.Else != nil {
			indent(sb, depth+1)
			sb.WriteString("else:\n")
			dumpNode(sb, n.Else, depth+2)
		}
	case NodeWhile:
		fmt.Fprintf(sb, "While %s\n", n.Pos)
		dumpNode(sb, n.Left, depth+1)
		dumpNode(sb, n.Right, depth+1)
	case NodeFor:
		fmt.Fprintf(sb, "For %s\n", n.Pos)
		dumpNode(sb, n.ForInit, depth+1)
		dumpNode(sb, n.ForCond, depth+1)
		dumpNode(sb, n.ForStep, depth+1)
		dumpNode(sb, n.ForBody, depth+1)
	case NodeSwitch:
		fmt.Fprintf(sb, "Switch %s\n", n.Pos)
		dumpNode(sb, n.Left, depth+1)
		for i := range n.Cases {
			indent(sb, depth+1)
			sb.WriteString("case:\n")
			dumpNode(sb, n.Cases[i], depth+2)
			dumpNode(sb, n.Bodies[i], depth+2)
		}
		if n.Default != nil {
			indent(sb, depth+1)
			sb.WriteString("default:\n")
			dumpNode(sb, n.Default, depth+2)
		}
	case NodeTry:
		fmt.Fprintf(sb, "Try %s\n", n.Pos)
		dumpNode(sb, n.Left, depth+1)
		dumpNode(sb, n.Right, depth+1)
	case NodeClass, NodeUnion:
		kind := "Class"
		if n.Kind == NodeUnion {
			kind = "Union"
		}
		fmt.Fprintf(sb, "%s %s %q\n", kind, n.Pos, n.Ident.Value)
		for _, f := range n.Fields {
			dumpNode(sb, f, depth+1)
		}
	case NodeGoto:
		fmt.Fprintf(sb, "Goto %s %q\n", n.Pos, n.Ident.Value)
	case NodeLabel:
		fmt.Fprintf(sb, "Label %s %q\n", n.Pos, n.Ident.Value)
	case NodeBreak:
		fmt.Fprintf(sb, "Break %s\n", n.Pos)
	case NodeCompound:
		fmt.Fprintf(sb, "Compound %s\n", n.Pos)
		for _, s := range n.Stmts {
			dumpNode(sb, s, depth+1)
		}
	case NodeEmpty:
		fmt.Fprintf(sb, "Empty %s\n", n.Pos)
	default:
		fmt.Fprintf(sb, "Node(kind=%d) %s\n", n.Kind, n.Pos)
	}
}

func dumpType(t *TypeDescriptor) string {
	if t == nil {
		return "<no type>"
	}
	if t.IsFunction() {
		params := make([]string, len(t.Parameters))
		for i, p := range t.Parameters {
			params[i] = dumpType(p.Type)
		}
		variadic := ""
		if t.IsVararg() {
			variadic = ", ..."
		}
		return fmt.Sprintf("func(%s%s) %s", strings.Join(params, ", "), variadic, dumpType(t.ReturnType))
	}

	var sb strings.Builder
	sb.WriteString(t.Base)
	sb.WriteString(strings.Repeat("*", t.PointerDepth))
	for _, d := range t.ArrayDims {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(']')
	}
	return sb.String()
}
