package dto

// CreateMatchRequest - тело лайка. from_user берется из сессии.
type CreateMatchRequest struct {
	ToUser uint64 `json:"to_user" validate:"required"`
}

// MatchResponse - стандартное представление созданного ребра
type MatchResponse struct {
	FromUser uint64 `json:"from_user"`
	ToUser   uint64 `json:"to_user"`
}

// MutualMatchResponse - отличимый ответ при образовании пары
type MutualMatchResponse struct {
	Match string `json:"match"`
}

// LikesCountResponse - счетчик полученных лайков
type LikesCountResponse struct {
	Count int64 `json:"count"`
}

// CreateMatchResult - результат сервиса: либо обычное ребро, либо пара.
type CreateMatchResult struct {
	Edge    MatchResponse
	Mutual  bool
	Partner string // email второго участника, заполняется при Mutual
}
