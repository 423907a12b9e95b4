// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coref-engine/pkg/types"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// writeRecords encodes v as YAML or JSON.
func writeRecords(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml or json", format)
	}
}

// mentionLabel renders a mention as "s2:1 The woman".
func mentionLabel(m types.MentionRecord) string {
	return fmt.Sprintf("s%d:%d %s", m.Sentence, m.Index, truncate(m.Text, 28))
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func writePairTable(w io.Writer, res types.Result) {
	if len(res.Pairs) == 0 {
		fmt.Fprintln(w, "No coreference pairs found.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-36s  %-5s  %s\n", "Mention", "Antecedent", "Local", "Strategies")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, p := range res.Pairs {
		fmt.Fprintf(w, "%-36s  %-36s  %-5t  %s\n",
			mentionLabel(p.Mention), mentionLabel(p.Antecedent), p.Local, strings.Join(p.Strategies, ","))
	}
	fmt.Fprintf(w, "\n%d pairs, %d mentions, %d sentences\n", len(res.Pairs), len(res.Mentions), len(res.Sentences))
}

func writeMentionTable(w io.Writer, res types.Result) {
	if len(res.Mentions) == 0 {
		fmt.Fprintln(w, "No mentions found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-4s  %-40s  %s\n", "Sent", "Idx", "Text", "Nouns")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, m := range res.Mentions {
		fmt.Fprintf(w, "%-4d  %-4d  %-40s  %s\n",
			m.Sentence, m.Index, truncate(m.Text, 40), strings.Join(m.Nouns, ","))
	}
	fmt.Fprintf(w, "\n%d mentions\n", len(res.Mentions))
}
