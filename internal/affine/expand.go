// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package affine

import (
	"fillmore-labs.com/taskguard/diag"
	"fillmore-labs.com/taskguard/kir"
)

// ExpandOffset synthesizes the dependency index terms for an [Ancestor]
// classification. Chunks of the owning loop advance by its step, so a literal
// displacement k is widened to whole steps: with div = ceil(|k|/|step|) the
// far term displaces by step*div, and when k is not a multiple of the step a
// second term one step nearer covers the preceding chunk boundary. A bare
// variable access stays a single undisplaced term.
//
// The owning loop's step must be a nonzero integer literal; otherwise the
// expansion is rejected with [diag.NonLiteralStepUnsupported].
func ExpandOffset(a *kir.Arena, cls Class) ([]kir.IndexTerm, error) {
	if cls.Kind != Ancestor {
		panic(diag.Faultf("expanding %s classification of node %d", cls.Kind, cls.Expr))
	}

	if cls.Offset == 0 && !cls.Reversed {
		return []kir.IndexTerm{kir.OffsetIndex(cls.Var, 0)}, nil
	}

	stepNode := a.LoopStep(cls.Loop)

	step, ok := a.LitInt(stepNode)
	if !ok || step == 0 {
		return nil, diag.Reject(diag.NonLiteralStepUnsupported, stepNode.Index(),
			a.SymbolName(a.LoopVar(cls.Loop)),
			"enclosing loop step must be a nonzero integer literal")
	}

	if step < 0 {
		step = -step
	}

	k, sign := cls.Offset, int64(1)
	if cls.Reversed {
		// The reversed form subtracts the variable from the literal; the
		// synthesized displacements keep that shape with positive literals.
		if k < 0 {
			k = -k
		}
	} else if k < 0 {
		k, sign = -k, -1
	}

	div := (k + step - 1) / step
	mod := k % step

	terms := []kir.IndexTerm{expanded(cls, sign*step*div)}
	if mod != 0 {
		terms = append(terms, expanded(cls, sign*step*(div-1)))
	}

	return terms, nil
}

func expanded(cls Class, delta int64) kir.IndexTerm {
	if cls.Reversed && delta != 0 {
		return kir.ReversedIndex(cls.Var, delta)
	}

	return kir.OffsetIndex(cls.Var, delta)
}
