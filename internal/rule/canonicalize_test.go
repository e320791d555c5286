package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sesuncedu/swrlapi-go/internal/argument"
	"github.com/sesuncedu/swrlapi-go/internal/atom"
	"github.com/sesuncedu/swrlapi-go/internal/entity"
)

func TestCanonicalizeMixedBody(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	person := entity.NewIdentifier("Person")
	hasAge := entity.NewIdentifier("hasAge")
	add := atom.BuiltInAtom{
		Name: "swrlb:add",
		Arguments: []argument.BuiltInArgument{
			f.NewVariable("z"),
			f.NewVariable("x"),
			f.NewVariable("y"),
		},
	}
	classAtom := atom.ClassAtom{ClassID: person, Arg: f.NewVariable("x")}
	objProp := atom.ObjectPropertyAtom{PropertyID: hasAge, Arg1: f.NewVariable("x"), Arg2: f.NewVariable("y")}

	r := Rule{
		Name: "r1",
		Body: []atom.Atom{add, classAtom, objProp},
	}

	canonical := Canonicalize(r)
	require.Len(canonical.Body, 3)

	gotClass, ok := canonical.Body[0].(atom.ClassAtom)
	require.True(ok)
	require.Equal(person, gotClass.ClassID)

	gotObjProp, ok := canonical.Body[1].(atom.ObjectPropertyAtom)
	require.True(ok)
	require.Equal(hasAge, gotObjProp.PropertyID)

	gotBuiltIn, ok := canonical.Body[2].(atom.BuiltInAtom)
	require.True(ok)
	require.Equal("swrlb:add", gotBuiltIn.Name)
	require.True(gotBuiltIn.Arguments[0].IsUnbound(), "?z must be flagged unbound")
	require.False(gotBuiltIn.Arguments[1].IsUnbound(), "?x is defined by the class atom")
	require.False(gotBuiltIn.Arguments[2].IsUnbound(), "?y is defined by the object property atom")
}

func TestCanonicalizeOrderInvariant(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	builtin1 := atom.BuiltInAtom{Name: "swrlb:add", Arguments: []argument.BuiltInArgument{f.NewVariable("a")}}
	other := atom.ObjectPropertyAtom{PropertyID: entity.NewIdentifier("p"), Arg1: f.NewVariable("a"), Arg2: f.NewVariable("b")}
	class := atom.ClassAtom{ClassID: entity.NewIdentifier("C"), Arg: f.NewVariable("a")}

	r := Rule{Name: "r2", Body: []atom.Atom{builtin1, other, class}}
	canonical := Canonicalize(r)

	seenNonBuiltIn, seenBuiltIn, seenOther := false, false, false
	classSeenBeforeOther := true
	for _, a := range canonical.Body {
		if a.IsClassAtom() {
			if seenOther {
				classSeenBeforeOther = false
			}
		}
		if !a.IsClassAtom() && !a.IsBuiltIn() {
			seenOther = true
		}
		if a.IsBuiltIn() {
			seenBuiltIn = true
		} else {
			seenNonBuiltIn = true
		}
		if seenBuiltIn && !a.IsBuiltIn() {
			t.Fatalf("non-built-in atom appears after a built-in atom: %v", canonical.Body)
		}
	}
	require.True(seenNonBuiltIn)
	require.True(seenBuiltIn)
	require.True(classSeenBeforeOther)
}

func TestUnboundUniquenessAcrossBuiltIns(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	// Two built-ins both first-use ?z: only the leftmost should be flagged.
	first := atom.BuiltInAtom{Name: "swrlb:multiply", Arguments: []argument.BuiltInArgument{f.NewVariable("z"), f.NewVariable("a")}}
	second := atom.BuiltInAtom{Name: "swrlb:add", Arguments: []argument.BuiltInArgument{f.NewVariable("z"), f.NewVariable("b")}}
	classA := atom.ClassAtom{ClassID: entity.NewIdentifier("C"), Arg: f.NewVariable("a")}
	classB := atom.ClassAtom{ClassID: entity.NewIdentifier("C"), Arg: f.NewVariable("b")}

	r := Rule{Name: "r3", Body: []atom.Atom{first, second, classA, classB}}
	canonical := Canonicalize(r)

	var builtInAtoms []atom.BuiltInAtom
	for _, a := range canonical.Body {
		if b, ok := a.(atom.BuiltInAtom); ok {
			builtInAtoms = append(builtInAtoms, b)
		}
	}
	require.Len(builtInAtoms, 2)
	// original order preserved among built-ins
	require.Equal("swrlb:multiply", builtInAtoms[0].Name)
	require.Equal("swrlb:add", builtInAtoms[1].Name)
	require.True(builtInAtoms[0].Arguments[0].IsUnbound())
	require.False(builtInAtoms[1].Arguments[0].IsUnbound())
}

func TestIsQuery(t *testing.T) {
	require := require.New(t)
	f := argument.NewFactory()

	classAtom := atom.ClassAtom{ClassID: entity.NewIdentifier("Person"), Arg: f.NewVariable("x")}
	selectBuiltIn := atom.BuiltInAtom{Name: "sqwrl:select", Arguments: []argument.BuiltInArgument{f.NewVariable("x")}}

	query := Rule{Name: "q1", Body: []atom.Atom{classAtom}, Head: []atom.Atom{selectBuiltIn}}
	require.True(IsQuery(query))

	plainRule := Rule{Name: "r1", Body: []atom.Atom{classAtom}, Head: []atom.Atom{classAtom}}
	require.False(IsQuery(plainRule))
}
