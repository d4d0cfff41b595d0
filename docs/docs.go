// Package docs registers the swagger specification for the widget API.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Register new user",
                "parameters": [
                    {
                        "description": "Register Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RegisterRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "User login",
                "parameters": [
                    {
                        "description": "Login Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "User logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/widget/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Widget"],
                "summary": "Get widget state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Add product",
                "parameters": [
                    {
                        "description": "Product",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.AddProductRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/products/{id}/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Toggle product selection",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Selection",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.ToggleSelectionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/catalog/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Refresh catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Get cart",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Clear cart",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Add to cart",
                "parameters": [
                    {
                        "description": "Cart Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.AddToCartRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/cart/checkout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Checkout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        }
    },
    "definitions": {
        "models.RegisterRequest": {
            "type": "object",
            "required": ["email", "username", "password"],
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.AddProductRequest": {
            "type": "object",
            "required": ["name", "category", "price"],
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "models.ToggleSelectionRequest": {
            "type": "object",
            "properties": {
                "selected": {"type": "boolean"}
            }
        },
        "models.AddToCartRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {
                "product_id": {"type": "string"}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shopping Widget API",
	Description:      "Storefront widget: catalog, cart and session against the remote shop service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
