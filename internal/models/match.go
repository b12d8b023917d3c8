package models

// Match - направленный лайк from_user -> to_user.
// Пара (FromUserID, ToUserID) уникальна: повторный лайк отклоняется.
// Взаимность не хранится, а вычисляется по наличию обратного ребра;
// колонка Matched остается в схеме, но всегда записывается как false.
type Match struct {
	BaseModel
	FromUserID uint64 `gorm:"not null;uniqueIndex:idx_match_from_to,priority:1;index:idx_match_to_from,priority:2"`
	ToUserID   uint64 `gorm:"not null;uniqueIndex:idx_match_from_to,priority:2;index:idx_match_to_from,priority:1"`
	Matched    bool   `gorm:"not null;default:false"`

	FromUser *User `gorm:"foreignKey:FromUserID"`
	ToUser   *User `gorm:"foreignKey:ToUserID"`
}
