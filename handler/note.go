package handler

import (
	"strings"

	"Tripnote/service"

	"github.com/urfave/cli/v2"
)

type Note struct {
	NoteService service.INoteService
	Console     *Console
}

func (n *Note) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "note",
			Usage:     "笔记详情",
			ArgsUsage: "<note-id>",
			Action:    n.Detail,
		},
		{
			Name:      "comment",
			Usage:     "发表评论",
			ArgsUsage: "<note-id> <content>",
			Action:    n.Comment,
		},
	}
}

func (n *Note) Detail(c *cli.Context) error {
	id, err := requireArg(c, 0, "笔记 id")
	if err != nil {
		return n.Console.Alert(err)
	}

	detail, err := n.NoteService.Detail(c.Context, id)
	if err != nil {
		return n.Console.Alert(err)
	}

	note := detail.Note
	n.Console.Printf("%s\n", note.Title)
	author := "未知作者"
	if detail.Author != nil {
		author = detail.Author.DisplayName()
	}
	if detail.IsFollowing {
		n.Console.Printf("@%s · 已关注\n", author)
	} else {
		n.Console.Printf("@%s\n", author)
	}
	if note.CreatedAt != "" {
		n.Console.Printf("发布于 %s\n", note.CreatedAt)
	}
	n.Console.Printf("\n%s\n\n", note.Content)
	for _, img := range note.Image {
		n.Console.Printf("图片: %s\n", img)
	}
	if note.HasVideo() {
		n.Console.Printf("视频: %s\n", note.Video)
	}

	n.Console.Printf("共 %d 条评论\n", len(note.Comments))
	for _, cm := range note.Comments {
		name := cm.UserID
		if u, ok := detail.CommentUsers[cm.UserID]; ok && u != nil {
			name = u.DisplayName()
		}
		n.Console.Printf("  %s: %s\n", name, cm.Content)
	}
	return nil
}

func (n *Note) Comment(c *cli.Context) error {
	id, err := requireArg(c, 0, "笔记 id")
	if err != nil {
		return n.Console.Alert(err)
	}
	content := strings.Join(c.Args().Tail(), " ")

	comment, err := n.NoteService.AddComment(c.Context, id, content)
	if err != nil {
		return n.Console.Alert(err)
	}
	n.Console.Printf("评论成功 (%s)\n", comment.ID)
	return nil
}
