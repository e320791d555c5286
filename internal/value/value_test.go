package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompareTo(t *testing.T) {
	tests := []struct {
		name        string
		a, b        Value
		expectedCmp int
	}{
		{"int equal", NewInt(4), NewInt(4), 0},
		{"int less", NewInt(-4), NewInt(5), -1},
		{"int greater", NewLong(6), NewByte(5), 1},
		{"double less", NewDouble(-12.2), NewDouble(13.3), -1},
		{"mixed numeric", NewInt(2), NewDouble(2.5), -1},
		{"string less", NewString("apple"), NewString("banana"), -1},
		{"string equal", NewString("same"), NewString("same"), 0},
		{"boolean less", NewBoolean(false), NewBoolean(true), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			cmp, err := tt.a.CompareTo(tt.b)
			require.NoError(err)
			require.Equal(tt.expectedCmp, cmp)
		})
	}
}

func TestCompareToIncompatibleKinds(t *testing.T) {
	require := require.New(t)
	_, err := NewString("x").CompareTo(NewInt(1))
	require.Error(err)
	require.True(ErrLiteralType.Is(err))
}

func TestIntegerWidenBeyondDoubleMantissa(t *testing.T) {
	require := require.New(t)
	a := NewLong(1<<62 + 3)
	b := NewLong(1<<62 + 5)
	cmp, err := a.CompareTo(b)
	require.NoError(err)
	require.Equal(-1, cmp)
}

func TestIsNumeric(t *testing.T) {
	require := require.New(t)
	require.True(NewInt(1).IsNumeric())
	require.True(NewDouble(1).IsNumeric())
	require.False(NewString("s").IsNumeric())
	require.False(NewBoolean(true).IsNumeric())
}

func TestTypedProjectionFailsForIncompatibleDatatype(t *testing.T) {
	require := require.New(t)
	_, err := NewString("hi").AsInt()
	require.Error(err)
	require.True(ErrLiteralType.Is(err))
}

func TestFromLexicalForm(t *testing.T) {
	require := require.New(t)

	v, err := FromLexicalForm(Int, "42")
	require.NoError(err)
	i, err := v.AsInt()
	require.NoError(err)
	require.Equal(int64(42), i)

	v, err = FromLexicalForm(Double, "3.14")
	require.NoError(err)
	d, err := v.AsDouble()
	require.NoError(err)
	require.InDelta(3.14, d, 0.0001)

	v, err = FromLexicalForm(Boolean, "true")
	require.NoError(err)
	b, err := v.AsBool()
	require.NoError(err)
	require.True(b)

	_, err = FromLexicalForm(Int, "not-a-number")
	require.Error(err)
	require.True(ErrLiteralType.Is(err))
}

func TestQuoted(t *testing.T) {
	require := require.New(t)
	require.Equal(`"hello"`, NewString("hello").Quoted())
	require.Equal("42", NewInt(42).Quoted())
}

func TestDateTimeCompare(t *testing.T) {
	require := require.New(t)
	t1 := NewDateTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	t2 := NewDateTime(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	cmp, err := t1.CompareTo(t2)
	require.NoError(err)
	require.Equal(-1, cmp)
}
