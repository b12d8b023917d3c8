// @title           matchly API
// @version         1.0
// @description     API знакомств: регистрация, листинг по близости, взаимные лайки (документация Swagger).
// @contact.name    Matchly
// @contact.email   support@matchly.app
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access-токен в формате "Bearer {token}"

package main

import (
	"matchly_backend/internal/app"

	_ "matchly_backend/docs"
)

func main() {
	app.Run()
}
