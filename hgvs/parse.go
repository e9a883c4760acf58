// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package hgvs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"znkr.io/algebra"
)

var (
	// ErrUnsupported is returned for expressions that can't be parsed without a reference
	// sequence or use constructs outside of the supported subset.
	ErrUnsupported = errors.New("unsupported")

	// ErrMismatch is returned if a sequence in an expression doesn't match the reference.
	ErrMismatch = errors.New("not found in reference")
)

// SyntaxError describes a malformed expression.
type SyntaxError struct {
	Msg string
	// Offset is the 1-based position of the error in the expression, 0 if the expression ended
	// unexpectedly.
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Offset == 0 {
		return e.Msg
	}
	return e.Msg + " at " + strconv.Itoa(e.Offset)
}

const nucleotides = "ACGT"

// Parse parses a simple genomic HGVS expression without a reference sequence. Duplications,
// inversions and NCBI style repeats without an explicit sequence return an error wrapping
// [ErrUnsupported].
//
// The supported subset consists of deletions, insertions, substitutions, deletion/insertions,
// repeats, duplications and inversions in a genomic coordinate system. An optional reference ID
// followed by a colon and the "g." prefix are skipped. The result is a sorted allele without
// empty variants.
func Parse(expr string) ([]algebra.Variant, error) {
	p := &parser{expr: expr}
	return p.parse()
}

// ParseWithReference is like [Parse], but it uses reference to fill in and check sequences.
func ParseWithReference(expr, reference string) ([]algebra.Variant, error) {
	p := &parser{expr: expr, reference: reference, hasReference: true}
	return p.parse()
}

type parser struct {
	expr         string
	pos          int
	reference    string
	hasReference bool
}

func (p *parser) unexpectedEnd() error {
	return &SyntaxError{Msg: "unexpected end of expression"}
}

func (p *parser) match(word string) error {
	if p.pos > len(p.expr)-len(word) {
		return p.unexpectedEnd()
	}
	if p.expr[p.pos:p.pos+len(word)] != word {
		return &SyntaxError{Msg: fmt.Sprintf("expected '%s'", word), Offset: p.pos + 1}
	}
	p.pos += len(word)
	return nil
}

func (p *parser) matchOptional(word string) bool {
	return p.match(word) == nil
}

func (p *parser) matchPlus(pred func(byte) bool, label string) (string, error) {
	if p.pos >= len(p.expr) {
		return "", p.unexpectedEnd()
	}
	if !pred(p.expr[p.pos]) {
		return "", &SyntaxError{Msg: "expected " + label, Offset: p.pos + 1}
	}
	start := p.pos
	p.pos++
	for p.pos < len(p.expr) && pred(p.expr[p.pos]) {
		p.pos++
	}
	return p.expr[start:p.pos], nil
}

func (p *parser) matchNumber() (int, error) {
	s, err := p.matchPlus(func(ch byte) bool { return '0' <= ch && ch <= '9' }, "digit")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SyntaxError{Msg: "number out of range", Offset: p.pos - len(s) + 1}
	}
	return n, nil
}

func (p *parser) matchSequence() (string, error) {
	return p.matchPlus(func(ch byte) bool { return strings.IndexByte(nucleotides, ch) >= 0 }, "nucleotide")
}

// matchOptionalSequence returns the empty string without consuming anything if there is no
// sequence at the current position.
func (p *parser) matchOptionalSequence() string {
	s, err := p.matchSequence()
	if err != nil {
		return ""
	}
	return s
}

// matchRepeated matches a sequence with an optional repeat count, e.g. "CAT[2]".
func (p *parser) matchRepeated() (string, error) {
	seq, err := p.matchSequence()
	if err != nil {
		return "", err
	}
	if !p.matchOptional("[") {
		return seq, nil
	}
	n, err := p.matchNumber()
	if err != nil {
		return "", err
	}
	if err := p.match("]"); err != nil {
		return "", err
	}
	return strings.Repeat(seq, n), nil
}

// matchInserted matches an inserted sequence, either a single (repeated) sequence or a compound
// like "[CAT[2];C]".
func (p *parser) matchInserted() (string, error) {
	if !p.matchOptional("[") {
		return p.matchRepeated()
	}
	var sb strings.Builder
	for {
		seq, err := p.matchRepeated()
		if err != nil {
			return "", err
		}
		sb.WriteString(seq)
		if !p.matchOptional(";") {
			break
		}
	}
	if err := p.match("]"); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// matchLocation returns a half-open, zero-based interval.
func (p *parser) matchLocation() (start, end int, err error) {
	start, err = p.matchNumber()
	if err != nil {
		return 0, 0, err
	}
	end = start
	if p.matchOptional("_") {
		if end, err = p.matchNumber(); err != nil {
			return 0, 0, err
		}
	}
	return start - 1, end, nil
}

// slice returns the reference in [start, end) or false if the interval is out of range.
func (p *parser) slice(start, end int) (string, bool) {
	if start < 0 || start > end || end > len(p.reference) {
		return "", false
	}
	return p.reference[start:end], true
}

func (p *parser) checkReference(seq string, start, end int) error {
	if !p.hasReference {
		return nil
	}
	if ref, ok := p.slice(start, end); !ok || ref != seq {
		return fmt.Errorf("%w: '%s' at %d", ErrMismatch, seq, start)
	}
	return nil
}

// referenceRange returns the reference in [start, end) for constructs that take their sequence
// from the reference.
func (p *parser) referenceRange(start, end int) (string, error) {
	if _, err := algebra.NewVariant(start, end, ""); err != nil {
		return "", err
	}
	ref, ok := p.slice(start, end)
	if !ok {
		return "", fmt.Errorf("%w: %d_%d in reference", algebra.ErrInvalidInterval, start+1, end)
	}
	return ref, nil
}

func (p *parser) parseVariant() (algebra.Variant, error) {
	start, end, err := p.matchLocation()
	if err != nil {
		return algebra.Variant{}, err
	}
	ctx := p.pos

	switch {
	case p.matchOptional("dup"):
		seq := p.matchOptionalSequence()
		switch {
		case seq == "" && !p.hasReference:
			return algebra.Variant{}, fmt.Errorf("%w: duplication without reference context at %d", ErrUnsupported, ctx+1)
		case seq == "":
			if seq, err = p.referenceRange(start, end); err != nil {
				return algebra.Variant{}, err
			}
		case len(seq) != end-start:
			return algebra.Variant{}, &SyntaxError{Msg: "inconsistent duplicated length", Offset: p.pos}
		default:
			if err := p.checkReference(seq, start, end); err != nil {
				return algebra.Variant{}, err
			}
		}
		return algebra.NewVariant(start, end, seq+seq)

	case p.matchOptional("inv"):
		seq := p.matchOptionalSequence()
		switch {
		case seq == "" && !p.hasReference:
			return algebra.Variant{}, fmt.Errorf("%w: inversion without reference context at %d", ErrUnsupported, ctx+1)
		case seq == "":
			ref, err := p.referenceRange(start, end)
			if err != nil {
				return algebra.Variant{}, err
			}
			seq = algebra.ReverseComplement(ref)
		case len(seq) != end-start:
			return algebra.Variant{}, &SyntaxError{Msg: "inconsistent inversion length", Offset: ctx + 1}
		default:
			if err := p.checkReference(algebra.ReverseComplement(seq), start, end); err != nil {
				return algebra.Variant{}, err
			}
		}
		return algebra.NewVariant(start, end, seq)

	case p.matchOptional("del"):
		if start == end {
			return algebra.Variant{}, &SyntaxError{Msg: "invalid range", Offset: ctx}
		}
		if seq := p.matchOptionalSequence(); seq != "" {
			if len(seq) != end-start {
				return algebra.Variant{}, &SyntaxError{Msg: "inconsistent deleted length", Offset: p.pos}
			}
			if err := p.checkReference(seq, start, end); err != nil {
				return algebra.Variant{}, err
			}
		}
		inserted := ""
		if p.matchOptional("ins") {
			if inserted, err = p.matchInserted(); err != nil {
				return algebra.Variant{}, err
			}
		}
		return algebra.NewVariant(start, end, inserted)

	case p.matchOptional("ins"):
		if end-start != 2 {
			return algebra.Variant{}, &SyntaxError{Msg: "invalid inserted range", Offset: p.pos}
		}
		inserted, err := p.matchInserted()
		if err != nil {
			return algebra.Variant{}, err
		}
		return algebra.NewVariant(start+1, start+1, inserted)
	}

	seq := p.matchOptionalSequence()
	switch {
	case p.matchOptional(">"):
		if seq != "" {
			if len(seq) != end-start {
				return algebra.Variant{}, &SyntaxError{Msg: "inconsistent deletion length", Offset: ctx + 1}
			}
			if err := p.checkReference(seq, start, end); err != nil {
				return algebra.Variant{}, err
			}
		}
		inserted, err := p.matchSequence()
		if err != nil {
			return algebra.Variant{}, err
		}
		return algebra.NewVariant(start, end, inserted)

	case p.matchOptional("="):
		return algebra.Variant{}, nil

	case p.matchOptional("["):
		n, err := p.matchNumber()
		if err != nil {
			return algebra.Variant{}, err
		}
		if err := p.match("]"); err != nil {
			return algebra.Variant{}, err
		}
		if seq == "" {
			return algebra.Variant{}, &SyntaxError{Msg: "expected nucleotide", Offset: ctx + 1}
		}
		if end-start != 1 {
			return algebra.NewVariant(start, end, strings.Repeat(seq, n))
		}

		// NCBI style, the location is the first position of the repeated unit.
		if !p.hasReference {
			return algebra.Variant{}, fmt.Errorf("%w: NCBI style repeat without reference context at %d", ErrUnsupported, ctx+1)
		}
		found := 0
		for {
			unit, ok := p.slice(start+found*len(seq), start+(found+1)*len(seq))
			if !ok || unit != seq {
				break
			}
			found++
		}
		if found == 0 {
			return algebra.Variant{}, fmt.Errorf("%w: '%s' at %d", ErrMismatch, seq, start)
		}
		return algebra.NewVariant(start, start+found*len(seq), strings.Repeat(seq, n))
	}

	return algebra.Variant{}, fmt.Errorf("%w: unsupported variant at %d", ErrUnsupported, ctx+1)
}

func (p *parser) end() error {
	if p.pos != len(p.expr) {
		return &SyntaxError{Msg: "expected end of expression", Offset: p.pos + 1}
	}
	return nil
}

func (p *parser) parse() ([]algebra.Variant, error) {
	p.pos = strings.IndexByte(p.expr, ':') + 1
	p.matchOptional("g.")

	if p.matchOptional("=") {
		return nil, p.end()
	}

	var variants []algebra.Variant
	add := func() error {
		v, err := p.parseVariant()
		if err != nil {
			return err
		}
		if !v.IsEmpty() {
			variants = append(variants, v)
		}
		return nil
	}

	if p.matchOptional("[") {
		if err := add(); err != nil {
			return nil, err
		}
		for p.matchOptional(";") {
			if err := add(); err != nil {
				return nil, err
			}
		}
		if err := p.match("]"); err != nil {
			return nil, err
		}
	} else if err := add(); err != nil {
		return nil, err
	}

	if err := p.end(); err != nil {
		return nil, err
	}
	if err := algebra.Sort(variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// ParseSPDI parses an expression in SPDI format: "id:position:deletion:insertion". The deletion
// is either a length or the deleted sequence.
func ParseSPDI(expr string) (algebra.Variant, error) {
	fields := strings.Split(expr, ":")
	if len(fields) != 4 {
		return algebra.Variant{}, &SyntaxError{Msg: fmt.Sprintf("expected 4 fields, got %d", len(fields))}
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return algebra.Variant{}, &SyntaxError{Msg: "invalid position " + strconv.Quote(fields[1])}
	}
	length, err := strconv.Atoi(fields[2])
	if err != nil {
		length = len(fields[2])
	}
	return algebra.NewVariant(start, start+length, fields[3])
}
