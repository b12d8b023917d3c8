package models

// Gender - пол пользователя
type Gender string

const (
	GenderMen   Gender = "M"
	GenderWomen Gender = "W"
)

// ValidGender проверяет, входит ли значение в допустимый набор
func ValidGender(g Gender) bool {
	switch g {
	case GenderMen, GenderWomen:
		return true
	default:
		return false
	}
}

// DefaultAvatarPath - аватар, который получает пользователь без загруженного фото
const DefaultAvatarPath = "default/default_avatar.png"

type User struct {
	BaseModel
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FirstName    string `gorm:"size:30;not null"`
	LastName     string `gorm:"size:30;not null"`
	Gender       Gender `gorm:"type:varchar(1);not null"`
	Avatar       string `gorm:"size:255;not null;default:'default/default_avatar.png'"`

	// Последнее известное местоположение. Отсутствует, пока пользователь
	// не передал координаты (check-in при листинге).
	Longitude *float64
	Latitude  *float64

	IsActive bool `gorm:"default:true"`
	IsAdmin  bool `gorm:"default:false"`

	// Relations: исходящие и входящие лайки
	MatchesFrom []Match `gorm:"foreignKey:FromUserID"`
	MatchesTo   []Match `gorm:"foreignKey:ToUserID"`
}

// HasLocation сообщает, задано ли у пользователя местоположение.
func (u *User) HasLocation() bool {
	return u.Longitude != nil && u.Latitude != nil
}
