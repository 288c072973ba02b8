package handler

import (
	"Tripnote/service"

	"github.com/urfave/cli/v2"
)

type Feed struct {
	FeedService service.IFeedService
	Console     *Console
}

func (f *Feed) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "feed",
			Usage: "首页笔记流",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "cursor", Usage: "从上次返回的游标继续"},
				&cli.IntFlag{Name: "pages", Value: 1, Usage: "连续加载的页数"},
			},
			Action: f.List,
		},
	}
}

func (f *Feed) List(c *cli.Context) error {
	pager := f.FeedService.NewPager()
	if cursor := c.String("cursor"); cursor != "" {
		pager.Seek(cursor)
	}

	pages := max(c.Int("pages"), 1)
	for i := 0; i < pages && pager.HasMore(); i++ {
		notes, err := pager.Next(c.Context)
		if err != nil {
			return f.Console.Alert(err)
		}
		for _, card := range f.FeedService.Enrich(c.Context, notes) {
			f.Console.Printf("[%s] %s  @%s\n", card.Note.ID, card.Note.Title, card.Author.Nickname)
		}
	}

	if pager.Loaded() == 0 {
		f.Console.Println("暂无笔记")
	}
	if pager.HasMore() {
		f.Console.Printf("下一页: tripnote feed --cursor %s\n", pager.Cursor())
	} else {
		f.Console.Println("没有更多了")
	}
	return nil
}
