// Package matchers holds gomock matchers for the strings handed to cli.Ui.
package matchers

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"
)

var _ gomock.Matcher = &StartsWith{}

// StartsWith matches values whose string form has the given prefix
type StartsWith struct {
	Value string
}

func (s *StartsWith) String() string {
	return fmt.Sprintf("start with %s", s.Value)
}

func (s *StartsWith) Matches(x interface{}) bool {
	str := fmt.Sprintf("%v", x)
	return strings.HasPrefix(str, s.Value)
}

var _ gomock.Matcher = &Contains{}

// Contains matches values whose string form contains Value
type Contains struct {
	Value string
}

func (c *Contains) String() string {
	return fmt.Sprintf("contain %s", c.Value)
}

func (c *Contains) Matches(x interface{}) bool {
	return strings.Contains(fmt.Sprintf("%v", x), c.Value)
}
