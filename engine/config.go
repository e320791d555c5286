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

package engine

// Config holds the session-scoped settings of an Engine. Its fields carry
// yaml tags so callers can load it from YAML.
type Config struct {
	// ActiveQueryName, if non-empty, names the query that
	// ImportSQWRLQueryAndOWLKnowledge activates by default.
	ActiveQueryName string `yaml:"activeQueryName"`
	// StrictAxiomDeclarations, when true, makes Reset's ontology processing
	// fail with ontology.ErrUndeclaredEntity the first time it would
	// otherwise have silently synthesized a missing declaration axiom for
	// an entity used in an asserted axiom or rule.
	StrictAxiomDeclarations bool `yaml:"strictAxiomDeclarations"`
	// MaxInferredAxioms caps how many axioms WriteInferredKnowledge will
	// write back in one call; zero means unlimited.
	MaxInferredAxioms int `yaml:"maxInferredAxioms"`
}

// DefaultConfig returns the zero-value Config: no active query, lenient
// declarations, unlimited inferred-axiom writeback.
func DefaultConfig() Config {
	return Config{}
}
