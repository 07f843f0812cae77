// Package docs 注册Swagger文档,供/swagger/*any使用
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
        "/api/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书列表",
                "parameters": [
                    {"type": "string", "description": "分类(精确匹配)", "name": "category", "in": "query"},
                    {"type": "string", "description": "只有true生效", "name": "featured", "in": "query"},
                    {"type": "string", "description": "书名/作者/分类关键词", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Book"}}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "创建图书",
                "parameters": [
                    {"description": "图书信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Book"}},
                    "400": {"description": "Missing required fields", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/books/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书详情",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Book"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "更新图书",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "图书信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Book"}},
                    "400": {"description": "All fields are required (including image and description)", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "删除图书",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/admin/login": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["管理员"],
                "summary": "管理员登录",
                "parameters": [
                    {"description": "登录信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Email and password required", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/admin/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["管理员"],
                "summary": "登录记录",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Session"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/cart/{cartId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["购物车"],
                "summary": "查看购物车",
                "parameters": [{"type": "string", "name": "cartId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Cart"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["购物车"],
                "summary": "清空购物车",
                "parameters": [{"type": "string", "name": "cartId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Message"}}}
            }
        },
        "/api/cart/{cartId}/items": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["购物车"],
                "summary": "加入购物车",
                "parameters": [
                    {"type": "string", "name": "cartId", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Cart"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/cart/{cartId}/items/{bookId}": {
            "put": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["购物车"],
                "summary": "修改购物车数量",
                "parameters": [
                    {"type": "string", "name": "cartId", "in": "path", "required": true},
                    {"type": "integer", "name": "bookId", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CartItemRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Cart"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["购物车"],
                "summary": "移除购物车中的图书",
                "parameters": [
                    {"type": "string", "name": "cartId", "in": "path", "required": true},
                    {"type": "integer", "name": "bookId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Cart"}}}
            }
        },
        "/api/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["订单"],
                "summary": "订单列表",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Order"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["订单"],
                "summary": "下单",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Order"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["订单"],
                "summary": "订单详情",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["订单"],
                "summary": "修改订单状态",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object", "properties": {"status": {"type": "string", "example": "paid"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "400": {"description": "Order status does not allow this transition", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"error": {"type": "string"}}},
        "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "Book": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "description": {"type": "string", "x-nullable": true},
                "coverImage": {"type": "string", "x-nullable": true},
                "featured": {"type": "boolean"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "BookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "Dune"},
                "author": {"type": "string", "example": "Frank Herbert"},
                "price": {"type": "number", "example": 12.5},
                "category": {"type": "string", "example": "Fiction"},
                "description": {"type": "string"},
                "coverImage": {"type": "string"},
                "featured": {"type": "boolean"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "admin@bookstore.com"},
                "password": {"type": "string", "example": "admin123"}
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "admin": {
                    "type": "object",
                    "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}
                }
            }
        },
        "Session": {
            "type": "object",
            "properties": {
                "adminId": {"type": "integer"},
                "email": {"type": "string"},
                "loginAt": {"type": "string", "format": "date-time"},
                "ip": {"type": "string"}
            }
        },
        "CartItemRequest": {
            "type": "object",
            "properties": {"bookId": {"type": "integer"}, "quantity": {"type": "integer", "example": 1}}
        },
        "Cart": {
            "type": "object",
            "properties": {
                "cartId": {"type": "string"},
                "items": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "bookId": {"type": "integer"},
                            "title": {"type": "string"},
                            "price": {"type": "number"},
                            "quantity": {"type": "integer"},
                            "subtotal": {"type": "number"}
                        }
                    }
                },
                "total": {"type": "number"}
            }
        },
        "OrderRequest": {
            "type": "object",
            "properties": {
                "customerName": {"type": "string"},
                "customerEmail": {"type": "string"},
                "shippingAddress": {"type": "string"},
                "cartId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/CartItemRequest"}}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "orderNo": {"type": "string"},
                "customerName": {"type": "string"},
                "customerEmail": {"type": "string"},
                "shippingAddress": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "paid", "shipped", "completed", "cancelled"]},
                "total": {"type": "number"},
                "items": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "bookId": {"type": "integer"},
                            "title": {"type": "string"},
                            "price": {"type": "number"},
                            "quantity": {"type": "integer"}
                        }
                    }
                },
                "createdAt": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo 文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bookstore API",
	Description:      "图书目录、购物车、下单与管理员接口",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
