package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/lioia/corpus-pagerank/pkg/graph"
	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/pkg/errors"
)

// Formats accepted by Render.
var Formats = map[string]graphviz.Format{
	"dot": graphviz.XDOT,
	"svg": graphviz.SVG,
	"png": graphviz.PNG,
}

// Render draws the corpus link graph, labelling every page with its rank.
func Render(c *graph.Corpus, ranks pagerank.Ranks, format string, w io.Writer) (err error) {
	f, ok := Formats[format]
	if !ok {
		return errors.Errorf("unsupported format %q", format)
	}

	g := graphviz.New()
	defer g.Close()
	cg, err := g.Graph()
	if err != nil {
		return errors.Wrap(err, "could not create graph")
	}
	defer func() {
		if cerr := cg.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	pages := c.Pages()
	nodes := make(map[string]*cgraph.Node, len(pages))
	for _, page := range pages {
		node, err := cg.CreateNode(page)
		if err != nil {
			return errors.Wrapf(err, "could not create node %s", page)
		}
		nodes[page] = node.SetLabel(fmt.Sprintf("%s\n%.4f", page, ranks[page]))
	}
	for _, page := range pages {
		links, _ := c.Links(page)
		for _, target := range links {
			if _, err := cg.CreateEdge(page+"->"+target, nodes[page], nodes[target]); err != nil {
				return errors.Wrapf(err, "could not link %s to %s", page, target)
			}
		}
	}

	if err := g.Render(cg, f, w); err != nil {
		return errors.Wrap(err, "could not render graph")
	}
	return nil
}
