package types

const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

type ToggleLikeRequest struct {
	Action string `json:"action" binding:"required,oneof=like unlike"`
}

type LikeStatus struct {
	Count   int64 `json:"count"`
	IsLiked bool  `json:"isLiked"`
}

// 点赞切换结果信息
const (
	LikeResultAdded        = "added"
	LikeResultRemoved      = "removed"
	LikeResultAlreadyLiked = "already liked"
	LikeResultNotLiked     = "not liked"
)

type ToggleLikeResponse struct {
	LikeStatus
	Message string `json:"-"`
}
