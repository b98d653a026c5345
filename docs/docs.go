// Package docs содержит описание API в формате Swagger для /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/packages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Packages"],
                "summary": "Список пакетов",
                "responses": {
                    "200": {"description": "Список пакетов", "schema": {"type": "object"}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/packages/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Packages"],
                "summary": "Получить пакет",
                "parameters": [
                    {"type": "string", "description": "Имя пакета", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Пакет", "schema": {"type": "object"}},
                    "404": {"description": "Пакет не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/packages/{name}/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Packages"],
                "summary": "Рассчитать цену пакета",
                "parameters": [
                    {"type": "string", "description": "Имя пакета", "name": "name", "in": "path", "required": true},
                    {"description": "Значения формы", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Расчёт цены", "schema": {"type": "object"}},
                    "400": {"description": "Некорректный JSON", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Пакет не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/packages/{name}/customize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Packages"],
                "summary": "Действие формы настройки",
                "parameters": [
                    {"type": "string", "description": "Имя пакета", "name": "name", "in": "path", "required": true},
                    {"description": "Форма и действие", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Изменение формы", "schema": {"type": "object"}},
                    "400": {"description": "Некорректное действие", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/packages/{name}/cache": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Packages"],
                "summary": "Сбросить кеш пакета",
                "parameters": [
                    {"type": "string", "description": "Имя пакета", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Кеш сброшен", "schema": {"type": "object"}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/pledges": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Pledges"],
                "summary": "Оформить пледж",
                "parameters": [
                    {"description": "Пакет, значения формы и email", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Пледж оформлен", "schema": {"type": "object"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/pledges/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Pledges"],
                "summary": "Получить пледж",
                "parameters": [
                    {"type": "string", "description": "ID пледжа", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Пледж", "schema": {"type": "object"}},
                    "404": {"description": "Пледж не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid request body"},
                "status": {"type": "string", "example": "Error"}
            }
        }
    }
}`

// SwaggerInfo содержит экспортируемую информацию Swagger.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Pledge Customizer API",
	Description:      "API для настройки пакетов пледжа, расчёта цены и оформления пледжей",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
