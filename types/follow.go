package types

// FollowRequest 关注/取消关注请求体
type FollowRequest struct {
	UserID       string `json:"userId" binding:"required"`
	TargetUserID string `json:"targetUserId" binding:"required"`
}

type FollowResponse struct {
	Success bool `json:"success"`
}

// FollowStatusRequest 查询关注状态
type FollowStatusRequest struct {
	UserID   string `form:"userId" binding:"required"`
	FollowID string `form:"followId" binding:"required"`
}

type FollowStatusResponse struct {
	IsFollowing bool `json:"isFollowing"`
}
