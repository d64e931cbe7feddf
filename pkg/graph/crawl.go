package graph

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// Crawl parses every HTML page in directory and returns the corpus of links
// between them. The file name is the page identifier.
func Crawl(directory string) (*Corpus, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read corpus directory %s", directory)
	}
	links := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		pageLinks, err := extractLinks(filepath.Join(directory, entry.Name()))
		if err != nil {
			return nil, err
		}
		links[entry.Name()] = pageLinks
	}
	return NewCorpus(links), nil
}

func extractLinks(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open page %s", path)
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse page %s", path)
	}
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		links = append(links, href)
	})
	return links, nil
}
