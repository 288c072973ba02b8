package service

import (
	"context"
	"strings"

	"Tripnote/models"
	"Tripnote/pkg/api"
	"Tripnote/pkg/apperr"
	"Tripnote/pkg/log"
	"Tripnote/types"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	Detail(ctx context.Context, noteID string) (*types.NoteDetail, error)
	AddComment(ctx context.Context, noteID, content string) (*models.Comment, error)
}

type NoteService struct {
	Notes   api.INoteClient
	Users   api.IUserDirectory
	Session ISessionStore
	Follow  IFollowService
	Loader  *UserLoader
}

// Detail 只有笔记本身查询失败才返回错误，作者、关注状态、评论人都是尽力而为
func (s *NoteService) Detail(ctx context.Context, noteID string) (*types.NoteDetail, error) {
	note, err := s.Notes.GetNoteDetail(ctx, noteID)
	if err != nil {
		return nil, err
	}

	detail := &types.NoteDetail{
		Note:         note,
		CommentUsers: map[string]*models.User{},
	}
	cur := s.Session.Current()

	var wg conc.WaitGroup
	wg.Go(func() {
		author, err := s.Users.GetUser(ctx, note.UserID)
		if err != nil {
			log.L.Warn("load note author", zap.String("note_id", note.ID), zap.String("user_id", note.UserID), zap.Error(err))
			return
		}
		detail.Author = author
	})
	if cur != nil && cur.ID != note.UserID {
		wg.Go(func() {
			following, err := s.Follow.IsFollowing(ctx, cur.ID, note.UserID)
			if err != nil {
				log.L.Warn("check following", zap.String("user_id", cur.ID), zap.Error(err))
				return
			}
			detail.IsFollowing = following
		})
	}
	if len(note.Comments) > 0 {
		wg.Go(func() {
			ids := make([]string, 0, len(note.Comments))
			for _, c := range note.Comments {
				ids = append(ids, c.UserID)
			}
			detail.CommentUsers = s.Loader.Users(ctx, ids)
		})
	}
	wg.Wait()

	return detail, nil
}

func (s *NoteService) AddComment(ctx context.Context, noteID, content string) (*models.Comment, error) {
	cur := s.Session.Current()
	if cur == nil {
		return nil, apperr.Validation("请先登录")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("评论内容不能为空")
	}
	return s.Notes.AddComment(ctx, &types.AddCommentRequest{
		NoteID:  noteID,
		UserID:  cur.ID,
		Content: content,
	})
}
