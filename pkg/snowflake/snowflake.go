package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenString 事件消息 key
func GenString() string {
	return node.Generate().String()
}
