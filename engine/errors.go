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

import errors "gopkg.in/src-d/go-errors.v1"

// ErrInvalidQueryName is raised when an operation names an unknown SQWRL
// query.
var ErrInvalidQueryName = errors.NewKind("invalid query name: %s")

// ErrInvalidRuleName is raised when an operation names an unknown rule.
var ErrInvalidRuleName = errors.NewKind("invalid rule name: %s")

// ErrTargetEngine is raised when the target reasoner fails.
var ErrTargetEngine = errors.NewKind("target engine failed: %s")

// ErrRuleEngine wraps any failure surfaced by the orchestrator itself,
// including wrapped target-engine, built-in, and SQWRL errors.
var ErrRuleEngine = errors.NewKind("rule engine failed: %s")
