package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const body33 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456"

var validKey = Prefix + body33

func labeled(key string) string { return Label + ": " + key }

func TestPatternIsBuiltFromConstants(t *testing.T) {
	assert.Equal(t, `密钥: (AIzaSy[A-Za-z0-9_-]{33})`, Pattern())
	assert.Len(t, validKey, 39)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty input", in: "", want: []string{}},
		{name: "no label", in: "key " + validKey, want: []string{}},
		{name: "single key", in: "config\n" + labeled(validKey) + "\n", want: []string{validKey}},
		{name: "one short", in: labeled(Prefix + body33[:32]), want: []string{}},
		{name: "one long keeps first 33", in: labeled(validKey + "Z"), want: []string{validKey}},
		{name: "period after body", in: labeled(validKey) + ".", want: []string{validKey}},
		{name: "space inside body", in: labeled(Prefix + body33[:20] + " " + body33[20:]), want: []string{}},
		{name: "underscore and hyphen allowed", in: labeled(Prefix + strings.Repeat("_-", 16) + "a"), want: []string{Prefix + strings.Repeat("_-", 16) + "a"}},
		{name: "prefix is case sensitive", in: labeled("aizasy" + body33), want: []string{}},
		{name: "label needs colon and space", in: Label + ":" + validKey, want: []string{}},
		{name: "label with two spaces", in: Label + ":  " + validKey, want: []string{}},
		{name: "non-ascii in body", in: labeled(Prefix + "é" + body33[1:]), want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_OrderAndDuplicates(t *testing.T) {
	a := Prefix + strings.Repeat("a", 33)
	b := Prefix + strings.Repeat("b", 33)
	in := labeled(b) + " noise " + labeled(a) + "\n" + labeled(b) + "\n"
	assert.Equal(t, []string{b, a, b}, Extract(in))
}

func TestExtract_Idempotent(t *testing.T) {
	in := labeled(validKey) + "\n" + labeled(validKey+"x")
	first := Extract(in)
	second := Extract(in)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestExtract_TwoLabeledKeys(t *testing.T) {
	in := labeled(validKey) + "\n" + labeled(validKey) + "\n"
	assert.Equal(t, []string{validKey, validKey}, Extract(in))
}

func TestFind_Positions(t *testing.T) {
	data := []byte("first line\n  " + labeled(validKey) + "\nxx " + labeled(validKey) + "\n")
	fs := Find("notes.txt", data)
	require.Len(t, fs, 2)

	assert.Equal(t, "notes.txt", fs[0].Path)
	assert.Equal(t, 2, fs[0].Line)
	// two spaces, two label runes, colon, space
	assert.Equal(t, 7, fs[0].Column)
	assert.Equal(t, validKey, fs[0].Key)
	assert.Equal(t, RuleID, fs[0].Rule)
	assert.Equal(t, validKey, string(data[fs[0].Offset:fs[0].Offset+len(validKey)]))

	assert.Equal(t, 3, fs[1].Line)
	assert.Equal(t, 8, fs[1].Column)
}

func TestFind_AgreesWithExtract(t *testing.T) {
	in := "x " + labeled(validKey) + labeled(Prefix+strings.Repeat("9", 33)) + "\n" + labeled(validKey)
	var keys []string
	for _, f := range Find("", []byte(in)) {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, Extract(in), keys)
}
