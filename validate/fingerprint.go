package validate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/flowport/flowport/model"
	"github.com/flowport/flowport/transform"
	"github.com/spaolacci/murmur3"
)

// Fingerprint hashes a graph's structural content plus the target platform:
// sorted node ids, sorted edges, platform, node count. Two graphs with the
// same fingerprint validate identically, which makes it a safe cache key for
// redundant invocations inside a caller's debounce window.
func Fingerprint(graph *model.WorkflowGraph, target transform.Format) string {
	ids := make([]string, 0, len(graph.Nodes))
	for _, node := range graph.Nodes {
		ids = append(ids, node.Id)
	}
	sort.Strings(ids)
	edges := make([]string, 0, len(graph.Connections))
	for _, conn := range graph.Connections {
		edges = append(edges, conn.Source+">"+conn.Target)
	}
	sort.Strings(edges)

	var b strings.Builder
	b.WriteString(strings.Join(ids, ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(edges, ","))
	b.WriteByte('|')
	b.WriteString(string(target))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(graph.Nodes)))
	return strconv.FormatUint(murmur3.Sum64([]byte(b.String())), 16)
}
