// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package syntax

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/coref-engine/internal/container"
	"github.com/pdiddy/coref-engine/internal/tree"
)

// ContainerParser pipes each sentence through a parser image (for example a
// Stanford lexicalized parser wrapped to read stdin and print one bracketed
// tree) under docker or podman.
type ContainerParser struct {
	runtime container.Runtime
	image   string
	args    []string
}

// NewContainerParser verifies that image exists in the runtime before
// returning a parser.
func NewContainerParser(rt container.Runtime, image string, args ...string) (*ContainerParser, error) {
	if image == "" {
		return nil, fmt.Errorf("container parser: no image configured")
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("parser image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerParser{runtime: rt, image: image, args: args}, nil
}

// Parse runs one container per sentence and reads the first tree printed.
func (p *ContainerParser) Parse(ctx context.Context, sentence string) (*tree.Tree, error) {
	var out bytes.Buffer
	if err := p.runtime.Run(ctx, p.image, p.args, strings.NewReader(sentence+"\n"), &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.String()) == "" {
		return nil, ErrNoParse
	}

	trees, err := tree.ParseAll(&out)
	if err != nil {
		return nil, fmt.Errorf("reading %s output: %w", p.image, err)
	}
	if len(trees) == 0 {
		return nil, ErrNoParse
	}
	return trees[0], nil
}
