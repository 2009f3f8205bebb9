package advancement

import (
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/character"
)

// Named is implemented by nodes that contribute a segment to report paths.
type Named interface {
	NodeName() string
}

// NodeReport is the outcome of one node's own step.
type NodeReport struct {
	Path   string
	Status Status
	Err    error
}

// Inspect applies every node's own step to a copy of base in the same order
// ApplyAll would and reports each node's status. base is not modified.
//
// Nodes whose own step fails have their children omitted, as in ApplyAll.
// A node without a name is identified by its index among its siblings; an
// unnamed root is "root".
func Inspect(root Advancement, base *character.Character) []NodeReport {
	c := base.Clone()
	var reports []NodeReport
	var walk func(a Advancement, path string)
	walk = func(a Advancement, path string) {
		done, err := a.ApplySelf(c)
		reports = append(reports, NodeReport{Path: path, Status: StatusOf(done, err), Err: err})
		if err != nil {
			return
		}
		i := 0
		a.ForEach(func(child Advancement) {
			walk(child, path+"/"+segment(child, i))
			i++
		})
	}
	rootName := "root"
	if n, ok := root.(Named); ok && n.NodeName() != "" {
		rootName = n.NodeName()
	}
	walk(root, rootName)
	return reports
}

func segment(a Advancement, index int) string {
	if n, ok := a.(Named); ok {
		if name := n.NodeName(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%d", index)
}
