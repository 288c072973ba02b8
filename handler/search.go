package handler

import (
	"strings"

	"Tripnote/service"

	"github.com/urfave/cli/v2"
)

type Search struct {
	SearchService service.ISearchService
	Console       *Console
}

func (s *Search) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "search",
			Usage:     "搜索笔记和用户",
			ArgsUsage: "<keyword>",
			Action:    s.Search,
		},
		{
			Name:  "history",
			Usage: "搜索历史",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "clear", Usage: "清空搜索历史"},
			},
			Action: s.History,
		},
	}
}

func (s *Search) Search(c *cli.Context) error {
	keyword := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if keyword == "" {
		return s.History(c)
	}

	items, err := s.SearchService.Search(c.Context, keyword)
	if err != nil {
		return s.Console.Alert(err)
	}
	if len(items) == 0 {
		s.Console.Println("没有找到相关内容")
		return nil
	}
	for _, item := range items {
		s.Console.Printf("[%s] %s %s  @%s\n", item.Type, item.ID, item.Title, item.Author.Nickname)
	}
	return nil
}

func (s *Search) History(c *cli.Context) error {
	if c.Bool("clear") {
		if err := s.SearchService.ClearHistory(c.Context); err != nil {
			return s.Console.Alert(err)
		}
		s.Console.Println("搜索历史已清空")
		return nil
	}

	items, err := s.SearchService.History(c.Context)
	if err != nil {
		return s.Console.Alert(err)
	}
	if len(items) == 0 {
		s.Console.Println("暂无搜索历史")
		return nil
	}
	s.Console.Println("最近搜索:")
	for _, kw := range items {
		s.Console.Printf("  %s\n", kw)
	}
	return nil
}
