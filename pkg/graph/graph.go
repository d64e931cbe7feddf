package graph

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// LoadResource loads a corpus from a directory of HTML pages, from a local
// edge-list file or from an edge-list served over HTTP.
func LoadResource(resource string) (*Corpus, error) {
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://") {
		resp, err := http.Get(resource)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load network file at %s", resource)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("could not load network file at %s: %s", resource, resp.Status)
		}
		bytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "could not load body from request")
		}
		return LoadEdgeList(bytes)
	}

	info, err := os.Stat(resource)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read corpus at %s", resource)
	}
	if info.IsDir() {
		return Crawl(resource)
	}
	bytes, err := os.ReadFile(resource)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read corpus at %s", resource)
	}
	return LoadEdgeList(bytes)
}

// LoadEdgeList parses one `from to` (or `from,to`) link per line.
// A page that only appears as a link target is still part of the corpus.
func LoadEdgeList(contents []byte) (*Corpus, error) {
	links := make(map[string][]string)
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for i, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		// Comment line -> no new link to add
		if skip {
			continue
		}
		if _, ok := links[to]; !ok {
			links[to] = nil
		}
		links[from] = append(links[from], to)
	}
	return NewCorpus(links), nil
}

func convertLine(line string) (string, string, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return "", "", true, nil
	}
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) != 2 {
		return "", "", false, errors.Errorf("expected FromNode and ToNode, got %q", line)
	}
	return tokens[0], tokens[1], false, nil
}
