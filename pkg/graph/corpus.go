package graph

import (
	"sort"
)

// Corpus maps every page to the pages it links to. Link targets are always
// pages of the same corpus and a page never links to itself.
// A Corpus is read-only once built.
type Corpus struct {
	pages []string
	links map[string]map[string]struct{}
}

// NewCorpus builds a Corpus from raw outbound links. Self-links, duplicated
// links and links to pages that are not keys of `links` are dropped.
func NewCorpus(links map[string][]string) *Corpus {
	c := &Corpus{
		pages: make([]string, 0, len(links)),
		links: make(map[string]map[string]struct{}, len(links)),
	}
	for page := range links {
		c.pages = append(c.pages, page)
		c.links[page] = make(map[string]struct{})
	}
	sort.Strings(c.pages)

	// Only keep links to other pages in the corpus
	for page, targets := range links {
		for _, target := range targets {
			if target == page {
				continue
			}
			if _, ok := c.links[target]; !ok {
				continue
			}
			c.links[page][target] = struct{}{}
		}
	}
	return c
}

// Len returns the number of pages.
func (c *Corpus) Len() int {
	return len(c.pages)
}

// Pages returns every page identifier in lexicographic order.
func (c *Corpus) Pages() []string {
	pages := make([]string, len(c.pages))
	copy(pages, c.pages)
	return pages
}

func (c *Corpus) Has(page string) bool {
	_, ok := c.links[page]
	return ok
}

// Links returns the sorted outbound links of page; ok is false when page is
// not part of the corpus.
func (c *Corpus) Links(page string) (links []string, ok bool) {
	targets, ok := c.links[page]
	if !ok {
		return nil, false
	}
	links = make([]string, 0, len(targets))
	for target := range targets {
		links = append(links, target)
	}
	sort.Strings(links)
	return links, true
}

// LinksTo reports whether page has an outbound link to target.
func (c *Corpus) LinksTo(page, target string) bool {
	_, ok := c.links[page][target]
	return ok
}

func (c *Corpus) OutDegree(page string) int {
	return len(c.links[page])
}

// Map exports the corpus as plain outbound link lists.
func (c *Corpus) Map() map[string][]string {
	m := make(map[string][]string, len(c.pages))
	for _, page := range c.pages {
		m[page], _ = c.Links(page)
	}
	return m
}
