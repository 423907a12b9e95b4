// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const johnHurtHimself = `(ROOT (S (NP (NNP John)) (VP (VBD hurt) (NP (PRP himself))) (. .)))`

func TestParse(t *testing.T) {
	tr, err := Parse(johnHurtHimself)
	require.NoError(t, err)

	assert.Equal(t, "ROOT", tr.Label())
	assert.Equal(t, []string{"John", "hurt", "himself", "."}, tr.Leaves())
	assert.Equal(t, johnHurtHimself, tr.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "   "},
		{name: "unbalanced", input: "(S (NP (NN dog))"},
		{name: "trailing tokens", input: "(NP (NN dog)) extra"},
		{name: "bare word", input: "dog"},
		{name: "childless node", input: "(S (NP))"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestParseUnlabelledRoot(t *testing.T) {
	tr, err := Parse(`( (S (NP (DT The) (NN dog)) (VP (VBD barked))) )`)
	require.NoError(t, err)
	assert.Equal(t, "S", tr.Label())
}

func TestSubtreesPreOrder(t *testing.T) {
	tr, err := Parse(johnHurtHimself)
	require.NoError(t, err)

	var labels []string
	for _, s := range tr.Subtrees() {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"ROOT", "S", "NP", "NNP", "VP", "VBD", "NP", "PRP", "."}, labels)
}

func TestPreterminals(t *testing.T) {
	tr, err := Parse(`(NP (NP (DT the) (NN man)) (PP (IN from) (NP (NNP France))))`)
	require.NoError(t, err)

	got := tr.Preterminals()
	want := []Tagged{
		{Word: "the", Tag: "DT"},
		{Word: "man", Tag: "NN"},
		{Word: "from", Tag: "IN"},
		{Word: "France", Tag: "NNP"},
	}
	assert.Equal(t, want, got)
}

func TestContainsUsesIdentity(t *testing.T) {
	a := Leaf("NN", "dog")
	b := Leaf("NN", "dog")
	np := New("NP", Leaf("DT", "the"), a)

	assert.True(t, np.Contains(a))
	assert.True(t, np.Contains(np))
	assert.False(t, np.Contains(b), "structurally equal node from another tree")
}

func TestParseAll(t *testing.T) {
	input := strings.Join([]string{
		"(ROOT",
		"  (S (NP (NNP Mary)) (VP (VBD left))))",
		"(ROOT (S (NP (PRP She)) (VP (VBD returned))))",
	}, "\n")

	trees, err := ParseAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, []string{"Mary", "left"}, trees[0].Leaves())
	assert.Equal(t, []string{"She", "returned"}, trees[1].Leaves())
}

func TestParseAllReportsTreeNumber(t *testing.T) {
	_, err := ParseAll(strings.NewReader("(S (NN a)) (S (NN b)"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree 2")
}
