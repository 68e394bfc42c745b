// Package docs provides generated OpenAPI documentation.
//
// draftdeck API
//
//	@title			draftdeck API
//	@version		1.0
//	@description	Social post drafting API for generating, reviewing, and publishing posts.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/draftdeck/draftdeck
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/draftdeck/serve.go -o ./swagger --parseDependency --parseInternal
