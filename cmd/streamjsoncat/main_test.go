package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type cliSuite struct {
	suite.Suite

	dir string
}

func (s *cliSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *cliSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *cliSuite) run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *cliSuite) TestEventsPrintsPrefixedStream() {
	path := s.writeFile("doc.json", `{"a":1}`)

	out, err := s.run("events", path)
	s.Require().NoError(err)
	s.Contains(out, "start_map")
	s.Contains(out, "a\tnumber\t1")
	s.Contains(out, "end_map")
}

func (s *cliSuite) TestEventsWithPrefixPrintsSelectedItems() {
	path := s.writeFile("doc.json", `{"docs":[{"n":1},{"n":2}]}`)

	out, err := s.run("events", "--prefix", "docs.item", path)
	s.Require().NoError(err)
	s.Equal("{\"n\": 1}\n{\"n\": 2}\n", out)
}

func (s *cliSuite) TestScanCountsItemsAcrossFiles() {
	a := s.writeFile("a.json", `[1,2,3]`)
	b := s.writeFile("b.json", `[1]`)

	out, err := s.run("scan", a, b)
	s.Require().NoError(err)
	s.Contains(out, a+"\t3\n")
	s.Contains(out, b+"\t1\n")
}

func (s *cliSuite) TestEventsRejectsMissingFile() {
	_, err := s.run("events", filepath.Join(s.dir, "missing.json"))
	s.Error(err)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(cliSuite))
}
