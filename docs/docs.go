// Package docs holds the Swagger document served under /swagger.
// Keep it in step with the godoc annotations on the HTTP handlers.
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
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/auth/login": {
            "post": {
                "description": "Exchanges credentials for a session token and loads history",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AUTH"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Login",
                        "name": "Login",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["AUTH"],
                "summary": "Log out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/auth/signup": {
            "post": {
                "description": "Registers an account and logs into it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["AUTH"],
                "summary": "Sign up",
                "parameters": [
                    {
                        "description": "Signup",
                        "name": "Signup",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CredentialsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/history": {
            "get": {
                "description": "Re-fetches the history of the logged in user",
                "produces": ["application/json"],
                "tags": ["HISTORY"],
                "summary": "Get history",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["HISTORY"],
                "summary": "Clear history",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/history/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["HISTORY"],
                "summary": "Delete history item",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "history item id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/session": {
            "get": {
                "description": "Current session state; the token itself is never exposed",
                "produces": ["application/json"],
                "tags": ["SESSION"],
                "summary": "Get session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/transform/{kind}": {
            "post": {
                "description": "Runs one transformation; the outcome is recorded in the session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TRANSFORM"],
                "summary": "Transform text",
                "parameters": [
                    {
                        "type": "string",
                        "description": "clean, slug, camel, snake, title or spell",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transform",
                        "name": "Transform",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.TransformRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/http.SessionResponse"}
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/v1/transforms": {
            "get": {
                "description": "Supported transformation kinds with their labels",
                "produces": ["application/json"],
                "tags": ["TRANSFORM"],
                "summary": "List transformations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/http.ResponseBody"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {"$ref": "#/definitions/http.TransformKindResponse"}
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.CredentialsRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string", "maxLength": 256},
                "username": {"type": "string", "maxLength": 150}
            }
        },
        "http.HistoryItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "label": {"type": "string"},
                "original_text": {"type": "string"},
                "result_text": {"type": "string"},
                "timestamp": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "http.ResponseBody": {
            "type": "object",
            "properties": {
                "data": {},
                "status": {"$ref": "#/definitions/http.Status"}
            }
        },
        "http.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "error": {"type": "string"},
                "history": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/http.HistoryItemResponse"}
                },
                "history_loading": {"type": "boolean"},
                "loading": {"type": "string"},
                "result": {"type": "string"}
            }
        },
        "http.Status": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {
                    "type": "array",
                    "items": {"type": "string"}
                }
            }
        },
        "http.TransformKindResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "kind": {"type": "string"},
                "label": {"type": "string"}
            }
        },
        "http.TransformRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "maxLength": 100000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:9089",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Textkit session client API",
	Description:      "Session and request orchestration for the text transformation service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
