package contextkeys

// Ключи gin-контекста, разделяемые между middleware и хендлерами.
// Используем константы, чтобы избежать опечаток в строковых ключах.
const (
	// CurrentUserKey - аутентифицированный *models.User, кладется
	// auth-middleware после проверки токена
	CurrentUserKey = "currentUser"

	// ClaimsKey - разобранные JWT-claims текущего запроса
	ClaimsKey = "authClaims"
)
