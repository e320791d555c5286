// Copyright 2024 The swrlapi-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolver

import (
	"github.com/sesuncedu/swrlapi-go/internal/value"
)

// DatatypeFactory parses a lexical form against a declared datatype by
// delegating to value.FromLexicalForm, where the cast-based coercion of
// §"DOMAIN STACK" lives, so the literal factory below can stay a thin
// wrapper.
type DatatypeFactory struct{}

// NewDatatypeFactory returns a new DatatypeFactory.
func NewDatatypeFactory() *DatatypeFactory { return &DatatypeFactory{} }

// Parse builds a value.Value from a lexical form and a declared datatype.
func (d *DatatypeFactory) Parse(datatype value.Datatype, lexicalForm string) (value.Value, error) {
	return value.FromLexicalForm(datatype, lexicalForm)
}

// LiteralFactory constructs Literal values, delegating datatype-specific
// parsing to a DatatypeFactory (§4.7: "the literal factory delegates
// datatype construction to a datatype factory").
type LiteralFactory struct {
	datatypes *DatatypeFactory
}

// NewLiteralFactory returns a LiteralFactory backed by datatypes.
func NewLiteralFactory(datatypes *DatatypeFactory) *LiteralFactory {
	if datatypes == nil {
		datatypes = NewDatatypeFactory()
	}
	return &LiteralFactory{datatypes: datatypes}
}

// NewLiteral parses lexicalForm against datatype and returns the resulting
// value.Value.
func (l *LiteralFactory) NewLiteral(datatype value.Datatype, lexicalForm string) (value.Value, error) {
	return l.datatypes.Parse(datatype, lexicalForm)
}
