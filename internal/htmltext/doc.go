// Package htmltext normalizes text fragments extracted from tournament
// site markup: HTML entity decoding and whitespace collapsing.
//
// Both functions are pure and perform no I/O. They exist because the
// source pages mix literal text, character references and inconsistent
// whitespace freely, and every downstream consumer (match names, player
// names, league keys) needs one canonical spelling.
package htmltext
