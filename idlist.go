package cubitutil

import (
	"strconv"
	"strings"
)

// IDList formats entity ids as the space-separated token list Cubit commands
// expect, e.g. IDList([]int{1, 2, 3}) == "1 2 3". An empty slice yields "".
func IDList(ids []int) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
