package snowflake

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenStringID 后端记录的 id 都是字符串
func GenStringID() string {
	return strconv.FormatInt(GenID(), 10)
}
