// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package kir

import "fillmore-labs.com/taskguard/diag"

// SymbolID is a stable handle for an entity declared in an [Arena].
type SymbolID int32

// InvalidSymbol is the handle of no entity.
const InvalidSymbol SymbolID = -1

// Valid reports whether the handle refers to a declared entity.
func (s SymbolID) Valid() bool {
	return s >= 0
}

// SymbolKind discriminates the declared shape of an entity.
type SymbolKind uint8

//go:generate go tool stringer -type SymbolKind -linecomment
const (
	// SymbolScalar is a rank-zero entity.
	SymbolScalar SymbolKind = iota // scalar
	// SymbolArray is an entity with one index position per dimension.
	SymbolArray // array
	// SymbolStructure is an entity accessed through component paths.
	SymbolStructure // structure
)

// Symbol describes a named kernel entity.
type Symbol struct {
	// Name is the source-level spelling.
	Name string

	// Kind is the declared shape.
	Kind SymbolKind

	// Rank is the number of dimensions, zero unless Kind is [SymbolArray].
	Rank int
}

// Declare adds an entity to the arena's symbol table and returns its handle.
// Redeclaring a name is a fault, as is a rank inconsistent with the kind.
func (a *Arena) Declare(name string, kind SymbolKind, rank int) SymbolID {
	switch {
	case name == "":
		panic(diag.Faultf("declaring an unnamed %s entity", kind))

	case kind == SymbolArray && rank < 1:
		panic(diag.Faultf("array %s declared with rank %d", name, rank))

	case kind != SymbolArray && rank != 0:
		panic(diag.Faultf("%s %s declared with rank %d", kind, name, rank))
	}

	if _, ok := a.byName[name]; ok {
		panic(diag.Faultf("entity %s declared twice", name))
	}

	id := SymbolID(len(a.symbols))
	a.symbols = append(a.symbols, Symbol{Name: name, Kind: kind, Rank: rank})

	if a.byName == nil {
		a.byName = make(map[string]SymbolID)
	}
	a.byName[name] = id

	return id
}

// Symbol returns the entity for a handle.
func (a *Arena) Symbol(id SymbolID) Symbol {
	if !id.Valid() || int(id) >= len(a.symbols) {
		panic(diag.Faultf("symbol handle %d outside table of %d entities", id, len(a.symbols)))
	}

	return a.symbols[id]
}

// SymbolName returns the source-level spelling for a handle.
func (a *Arena) SymbolName(id SymbolID) string {
	return a.Symbol(id).Name
}

// Lookup resolves a name to its handle.
func (a *Arena) Lookup(name string) (SymbolID, bool) {
	id, ok := a.byName[name]

	return id, ok
}
