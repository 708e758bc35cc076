// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/admin/cache/{date}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"admin"
				],
				"summary": "Purge a cached date",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "YYYY-MM-DD or MM-DD",
						"name": "date",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PurgeCacheResponseDTO"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/birthdays": {
			"get": {
				"tags": [
					"birthdays"
				],
				"summary": "Famous birthdays for a date",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "YYYY-MM-DD or MM-DD",
						"name": "date",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "refresh",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "no_images",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.BirthdaysResponseDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/styles": {
			"get": {
				"tags": [
					"birthdays"
				],
				"summary": "Card themes and fonts",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.StylesResponseDTO"
						}
					}
				}
			}
		},
		"/posts": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Assemble a birthday post",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePostRequestDTO"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.PostDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/posts/card": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Render a birthday card as HTML",
				"consumes": [
					"application/json"
				],
				"produces": [
					"text/html"
				],
				"parameters": [
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePostRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/posts/card.png": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Export a birthday card as PNG",
				"consumes": [
					"application/json"
				],
				"produces": [
					"image/png"
				],
				"parameters": [
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePostRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/avatars": {
			"get": {
				"tags": [
					"avatars"
				],
				"summary": "Placeholder avatar",
				"produces": [
					"image/png"
				],
				"parameters": [
					{
						"type": "string",
						"name": "name",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "list | card | friend",
						"name": "variant",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/share": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "Share links for a friend's card",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "name",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"name": "url",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ShareDTO"
						}
					}
				}
			}
		},
		"/sessions": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Start a session",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}": {
			"get": {
				"tags": [
					"sessions"
				],
				"summary": "Session snapshot",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/date": {
			"put": {
				"tags": [
					"sessions"
				],
				"summary": "Select a date",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SetDateRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"409": {
						"description": "Superseded by a newer request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/retry": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Retry the lookup for the current date",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/selection": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Toggle a celebrity in the selection",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ToggleSelectionRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/friend": {
			"put": {
				"tags": [
					"sessions"
				],
				"summary": "Set the friend's name and photo",
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/dto.FriendDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/style": {
			"put": {
				"tags": [
					"sessions"
				],
				"summary": "Choose theme and font",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SetStyleRequestDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/post": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Generate the birthday post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SessionDTO"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/post/card": {
			"get": {
				"tags": [
					"sessions"
				],
				"summary": "Card HTML of the generated post",
				"produces": [
					"text/html"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		},
		"/sessions/{id}/post/card.png": {
			"get": {
				"tags": [
					"sessions"
				],
				"summary": "Card PNG of the generated post",
				"produces": [
					"image/png"
				],
				"parameters": [
					{
						"type": "string",
						"description": "session id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponseDTO"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.PurgeCacheResponseDTO": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"purged": {
					"type": "boolean"
				}
			}
		},
		"dto.ErrorResponseDTO": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.CelebrityDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				},
				"placeholder": {
					"type": "string"
				}
			}
		},
		"dto.ImageStageDTO": {
			"type": "object",
			"properties": {
				"provider": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"dto.ImageReportDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"stages": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ImageStageDTO"
					}
				}
			}
		},
		"dto.BirthdaysResponseDTO": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"display_date": {
					"type": "string"
				},
				"celebrities": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CelebrityDTO"
					}
				},
				"images": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ImageReportDTO"
					}
				},
				"cached": {
					"type": "boolean"
				},
				"fetched_at": {
					"type": "string"
				}
			}
		},
		"dto.ThemeDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"gradient_stops": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"text_color": {
					"type": "string"
				},
				"accent_color": {
					"type": "string"
				},
				"name_color": {
					"type": "string"
				}
			}
		},
		"dto.FontDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"family": {
					"type": "string"
				}
			}
		},
		"dto.StylesResponseDTO": {
			"type": "object",
			"properties": {
				"themes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ThemeDTO"
					}
				},
				"fonts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.FontDTO"
					}
				},
				"default_theme": {
					"type": "string"
				},
				"default_font": {
					"type": "string"
				}
			}
		},
		"dto.FriendDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"photo": {
					"type": "string"
				}
			}
		},
		"dto.CelebrityInputDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CreatePostRequestDTO": {
			"type": "object",
			"properties": {
				"friend": {
					"$ref": "#/definitions/dto.FriendDTO"
				},
				"date": {
					"type": "string"
				},
				"celebrities": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CelebrityInputDTO"
					}
				},
				"selection": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"theme": {
					"type": "string"
				},
				"font": {
					"type": "string"
				}
			}
		},
		"dto.ShareDTO": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				},
				"twitter": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"instagram": {
					"type": "string"
				},
				"download_filename": {
					"type": "string"
				}
			}
		},
		"dto.PostDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"friend": {
					"$ref": "#/definitions/dto.FriendDTO"
				},
				"celebrities": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CelebrityDTO"
					}
				},
				"date": {
					"type": "string"
				},
				"date_line": {
					"type": "string"
				},
				"theme": {
					"type": "string"
				},
				"font": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"share": {
					"$ref": "#/definitions/dto.ShareDTO"
				}
			}
		},
		"dto.SessionDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"generation": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"celebrities": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CelebrityDTO"
					}
				},
				"selection": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"friend": {
					"$ref": "#/definitions/dto.FriendDTO"
				},
				"theme": {
					"type": "string"
				},
				"font": {
					"type": "string"
				},
				"can_generate": {
					"type": "boolean"
				},
				"post": {
					"$ref": "#/definitions/dto.PostDTO"
				},
				"error": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"dto.SetDateRequestDTO": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				}
			},
			"required": [
				"date"
			]
		},
		"dto.ToggleSelectionRequestDTO": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.SetStyleRequestDTO": {
			"type": "object",
			"properties": {
				"theme": {
					"type": "string"
				},
				"font": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/api/v1",
	Schemes:		  []string{},
	Title:			"Birthday Twins API",
	Description:	  "Famous people who share a friend's birthday, turned into a shareable card",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
