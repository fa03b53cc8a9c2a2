// Package docs holds the Swagger spec served at /swagger. It is maintained by
// hand alongside the @-annotations on the handlers.
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
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in an admin",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"description": "Body",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.LoginInput"
						}
					}
				]
			}
		},
		"/auth/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"auth"
				],
				"summary": "Get the signed-in account",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/accounts": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"accounts"
				],
				"summary": "List accounts",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Username contains",
						"name": "q",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 0,
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 16,
						"description": "Items per page",
						"name": "size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"tags": [
					"accounts"
				],
				"summary": "Create an account",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Account",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.AccountInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"409": {
						"description": "Username already exists",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		},
		"/games": {
			"get": {
				"tags": [
					"games"
				],
				"summary": "List games",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"default": 0,
						"description": "Page index",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"default": 16,
						"description": "Page size",
						"name": "size",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Matches any game name, case-insensitive",
						"name": "keyword",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Category code",
						"name": "category",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"games"
				],
				"summary": "Create a game",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Category code",
						"name": "category",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Cover image",
						"name": "image",
						"in": "formData"
					},
					{
						"type": "string",
						"description": "Language code of the first name",
						"name": "gameNames[0].language",
						"in": "formData"
					},
					{
						"type": "string",
						"description": "Text of the first name",
						"name": "gameNames[0].value",
						"in": "formData"
					},
					{
						"type": "boolean",
						"description": "Whether the first name is the default",
						"name": "gameNames[0].defaultName",
						"in": "formData"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			},
			"delete": {
				"tags": [
					"games"
				],
				"summary": "Delete several games",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"description": "Game IDs",
						"name": "ids",
						"in": "body",
						"required": true,
						"schema": {
							"type": "array",
							"items": {
								"type": "integer"
							}
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/games/{id}": {
			"get": {
				"tags": [
					"games"
				],
				"summary": "Get a game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"games"
				],
				"summary": "Update a game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Category code",
						"name": "category",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Cover image",
						"name": "image",
						"in": "formData"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"multipart/form-data"
				]
			},
			"delete": {
				"tags": [
					"games"
				],
				"summary": "Delete a game",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/games/{id}/names": {
			"post": {
				"tags": [
					"game-names"
				],
				"summary": "Add a name to a game",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Body",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.GameNameInput"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/games/{id}/names/{nameId}": {
			"put": {
				"tags": [
					"game-names"
				],
				"summary": "Update a game name",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Name ID",
						"name": "nameId",
						"in": "path",
						"required": true
					},
					{
						"description": "Body",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.GameNameUpdateInput"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"game-names"
				],
				"summary": "Delete a game name",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Game ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Name ID",
						"name": "nameId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "List categories",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"categories"
				],
				"summary": "Create a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"description": "Body",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CategoryInput"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				]
			}
		},
		"/categories/{code}": {
			"put": {
				"tags": [
					"categories"
				],
				"summary": "Rename a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Category code",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"description": "Body",
						"name": "input",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CategoryInput"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"categories"
				],
				"summary": "Delete a category",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					},
					"403": {
						"description": "Admin access required",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Category code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/languages": {
			"get": {
				"tags": [
					"languages"
				],
				"summary": "List languages",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.Envelope"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.Envelope": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer",
					"example": 200
				},
				"message": {
					"type": "string",
					"example": "OK"
				},
				"data": {}
			}
		},
		"handler.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer",
					"example": 404
				},
				"message": {
					"type": "string",
					"example": "Game not found"
				}
			}
		},
		"handler.LoginInput": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string",
					"example": "admin"
				},
				"password": {
					"type": "string",
					"example": "password123"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.GameNameInput": {
			"type": "object",
			"properties": {
				"language": {
					"type": "string",
					"example": "en"
				},
				"value": {
					"type": "string",
					"example": "Hollow Knight"
				},
				"defaultName": {
					"type": "boolean",
					"example": true
				}
			},
			"required": [
				"language",
				"value"
			]
		},
		"handler.GameNameUpdateInput": {
			"type": "object",
			"properties": {
				"language": {
					"type": "string",
					"example": "en"
				},
				"value": {
					"type": "string",
					"example": "Hollow Knight"
				},
				"defaultName": {
					"type": "boolean",
					"example": false
				}
			},
			"required": [
				"value"
			]
		},
		"handler.AccountInput": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string",
					"example": "editor"
				},
				"password": {
					"type": "string",
					"minLength": 8,
					"example": "password123"
				},
				"role": {
					"type": "string",
					"enum": [
						"admin",
						"viewer"
					],
					"example": "viewer"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"handler.CategoryInput": {
			"type": "object",
			"properties": {
				"displayName": {
					"type": "string",
					"example": "Action RPG"
				}
			},
			"required": [
				"displayName"
			]
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
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Game Catalog API",
	Description:      "Catalog of games, their multilingual names and categories.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
