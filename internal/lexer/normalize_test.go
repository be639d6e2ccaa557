package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lam-lang/checklam/internal/token"
	"golang.org/x/text/unicode/norm"
)

func TestBOMStripping(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"with_bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'e', 'l', 'l', 'o'}, []byte("hello")},
		{"without_bom", []byte("hello"), []byte("hello")},
		{"empty_with_bom", []byte{0xEF, 0xBB, 0xBF}, []byte{}},
		{"empty_without_bom", []byte{}, []byte{}},
		{"partial_bom", []byte{0xEF, 0xBB, 'h', 'i'}, []byte{0xEF, 0xBB, 'h', 'i'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNFCNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_nfc", "café", "café"},
		{"nfd_to_nfc", "café", "café"},
		{"ascii_unchanged", "hello world", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(Normalize([]byte(tt.input)))
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
			if !norm.NFC.IsNormalString(result) {
				t.Errorf("result is not in NFC form")
			}
		})
	}
}

func TestBOMAndNFC(t *testing.T) {
	input := append(append([]byte{}, bomUTF8...), []byte("café")...)
	expected := "café"

	result := string(Normalize(input))
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"hello", "café", "café", "﻿hello"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := Normalize([]byte(input))
			second := Normalize(first)
			if !bytes.Equal(first, second) {
				t.Errorf("Normalize is not idempotent: first=%q, second=%q", first, second)
			}
		})
	}
}

// TestCanaryDeterministicParsing verifies lexically equivalent source
// produces the same token kinds regardless of line-ending/Unicode form.
func TestCanaryDeterministicParsing(t *testing.T) {
	variants := []struct {
		name  string
		input string
	}{
		{"lf_nfc", "let café = 42"},
		{"crlf_nfc", "let café = 42\n"},
		{"lf_nfd", "let café = 42"},
		{"bom_lf_nfc", "﻿let café = 42"},
	}
	variants[1].input = strings.ReplaceAll(variants[1].input, "\n", "\r\n")

	var kindSeqs [][]token.Kind
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			normalized := Normalize([]byte(v.input))
			l := New(string(normalized), "test.lam")
			var kinds []token.Kind
			for {
				tok := l.NextToken()
				kinds = append(kinds, tok.Kind)
				if tok.Kind == token.EOF {
					break
				}
			}
			kindSeqs = append(kindSeqs, kinds)
		})
	}

	baseline := kindSeqs[0]
	for i, kinds := range kindSeqs[1:] {
		if len(kinds) != len(baseline) {
			t.Fatalf("variant %d token count mismatch: %d vs %d", i+1, len(kinds), len(baseline))
		}
		for j := range kinds {
			if kinds[j] != baseline[j] {
				t.Errorf("variant %d token %d kind mismatch: %v vs %v", i+1, j, kinds[j], baseline[j])
			}
		}
	}
}

func TestNormalizeDeterminism(t *testing.T) {
	input := []byte("﻿café")

	var results [][]byte
	for i := 0; i < 10; i++ {
		results = append(results, Normalize(input))
	}
	baseline := results[0]
	for i, result := range results[1:] {
		if !bytes.Equal(result, baseline) {
			t.Errorf("iteration %d produced different output", i+1)
		}
	}
}
