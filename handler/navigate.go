package handler

import (
	"Tripnote/config"
	"Tripnote/pkg/router"

	"github.com/urfave/cli/v2"
)

// Navigate 模拟页面跳转，受保护页面会被守卫改写
type Navigate struct {
	Router  *router.Router
	Config  *config.Guard
	Console *Console
}

func (n *Navigate) Commands() []*cli.Command {
	return []*cli.Command{
		{Name: "open", Usage: "打开页面", ArgsUsage: "<path>", Action: n.Open},
		{Name: "back", Usage: "返回上一页", Action: n.Back},
	}
}

func (n *Navigate) Open(c *cli.Context) error {
	path, err := requireArg(c, 0, "页面路径")
	if err != nil {
		return n.Console.Alert(err)
	}
	n.Router.Push(router.Parse(path))
	n.printCurrent()
	return nil
}

func (n *Navigate) Back(c *cli.Context) error {
	if !n.Router.Back() {
		n.Console.Println("已经是第一页")
	}
	n.printCurrent()
	return nil
}

func (n *Navigate) printCurrent() {
	cur := n.Router.Current()
	n.Console.Printf("当前页面: %s\n", cur)
	if redirect := cur.Param("redirect"); redirect != "" && cur.Segment() == n.Config.AuthSegment {
		n.Console.Printf("需要登录后访问 %s: tripnote login --redirect %s\n", redirect, redirect)
	}
}
